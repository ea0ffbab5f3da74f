package password

import "unicode/utf8"

// Level is the ordinal strength classification shown to the user.
type Level int

const (
	Empty Level = iota
	TooShort
	Weak
	Fair
	Strong
	VeryStrong
)

// LevelFor classifies a password given its score. Length is checked before
// the score: a short password stays TooShort even when every class is present.
func LevelFor(pwd string, score float64) Level {
	n := utf8.RuneCountInString(pwd)
	switch {
	case n == 0:
		return Empty
	case n < MinLength:
		return TooShort
	case score < 40:
		return Weak
	case score < 70:
		return Fair
	case score < 80:
		return Strong
	default:
		return VeryStrong
	}
}

var levelText = map[Level]string{
	Empty:      "Enter a password",
	TooShort:   "Too short (min 8 characters)",
	Weak:       "Weak",
	Fair:       "Fair",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

// Text returns the strength caption for a level.
func Text(l Level) string {
	if s, ok := levelText[l]; ok {
		return s
	}
	return levelText[Empty]
}

func (l Level) String() string {
	return Text(l)
}

// Tone is the colour of the strength caption. It follows the raw score, not
// the level, so a short password with several classes reads yellow or green.
func Tone(score float64) string {
	switch {
	case score <= 0:
		return "muted"
	case score < 40:
		return "red"
	case score < 70:
		return "yellow"
	default:
		return "green"
	}
}
