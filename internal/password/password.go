package password

import "unicode/utf8"

// MinLength is the number of characters a password needs before its
// character-class coverage is considered at all.
const MinLength = 8

// Checks holds the five character-class predicates for a password.
type Checks struct {
	MinLength bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digit     bool `json:"number"`
	Special   bool `json:"special"`
}

// Evaluate computes the checks for pwd from scratch.
func Evaluate(pwd string) Checks {
	c := Checks{MinLength: utf8.RuneCountInString(pwd) >= MinLength}
	for _, r := range pwd {
		switch {
		case r >= 'A' && r <= 'Z':
			c.Uppercase = true
		case r >= 'a' && r <= 'z':
			c.Lowercase = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Special = true
		}
	}
	return c
}

func (c Checks) all() [5]bool {
	return [5]bool{c.MinLength, c.Uppercase, c.Lowercase, c.Digit, c.Special}
}

// Passed returns how many of the five checks hold.
func (c Checks) Passed() int {
	n := 0
	for _, ok := range c.all() {
		if ok {
			n++
		}
	}
	return n
}

// Score returns the share of passed checks as a percentage in [0,100].
func (c Checks) Score() float64 {
	checks := c.all()
	return float64(c.Passed()) / float64(len(checks)) * 100
}

// Score is shorthand for Evaluate(pwd).Score().
func Score(pwd string) float64 {
	return Evaluate(pwd).Score()
}
