package signup

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jobtrack/jobtrack-go/internal/password"
)

// notSpace excludes the same characters isSpace reports, plus '@'.
const notSpace = `[^\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}@]`

var emailRe = regexp.MustCompile(`^` + notSpace + `+@` + notSpace + `+\.` + notSpace + `+$`)

// isSpace matches browser whitespace: ASCII spaces, the Zs category, the
// line and paragraph separators and the byte order mark. It differs from
// unicode.IsSpace, which accepts U+0085 and rejects U+FEFF.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func blank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// Input is the snapshot of the four form fields taken at submit time.
type Input struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Result is the outcome of a validation. The zero value is valid.
type Result struct {
	Message string
}

// Valid reports whether every rule passed.
func (r Result) Valid() bool {
	return r.Message == ""
}

// Err returns an *InputError for a failed result and nil otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &InputError{Message: r.Message}
}

type rule struct {
	failed  func(in Input, c password.Checks) bool
	message string
}

// rules are evaluated in order; only the first failure is reported.
var rules = []rule{
	{func(in Input, _ password.Checks) bool { return blank(in.Name) }, "Please enter your name"},
	{func(in Input, _ password.Checks) bool { return blank(in.Email) }, "Please enter your email"},
	{func(in Input, _ password.Checks) bool { return !emailRe.MatchString(in.Email) }, "Please enter a valid email address"},
	{func(_ Input, c password.Checks) bool { return !c.MinLength }, "Password must be at least 8 characters long"},
	{func(_ Input, c password.Checks) bool { return !c.Uppercase }, "Password must contain at least one uppercase letter"},
	{func(_ Input, c password.Checks) bool { return !c.Lowercase }, "Password must contain at least one lowercase letter"},
	{func(_ Input, c password.Checks) bool { return !c.Digit }, "Password must contain at least one number"},
	{func(_ Input, c password.Checks) bool { return !c.Special }, "Password must contain at least one special character"},
	{func(in Input, _ password.Checks) bool { return in.Password != in.ConfirmPassword }, "Passwords do not match"},
}

// Validate checks a registration submission and reports the first failing rule.
func Validate(name, email, pwd, confirm string) Result {
	return ValidateInput(Input{Name: name, Email: email, Password: pwd, ConfirmPassword: confirm})
}

// ValidateInput is Validate over an Input snapshot.
func ValidateInput(in Input) Result {
	c := password.Evaluate(in.Password)
	for _, r := range rules {
		if r.failed(in, c) {
			return Result{Message: r.message}
		}
	}
	return Result{}
}

// MatchState drives the hint shown under the confirmation field.
type MatchState int

const (
	MatchUnknown MatchState = iota
	MatchMismatch
	MatchOK
)

// PasswordsMatch reports the confirmation hint. Nothing is shown until the
// confirmation has content, and a match is only confirmed once the password
// is long enough to be accepted.
func PasswordsMatch(pwd, confirm string) MatchState {
	switch {
	case confirm == "":
		return MatchUnknown
	case pwd != confirm:
		return MatchMismatch
	case password.Evaluate(pwd).MinLength:
		return MatchOK
	default:
		return MatchUnknown
	}
}
