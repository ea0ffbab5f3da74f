package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jobtrack/jobtrack-go/internal/password"
)

// Account is what the backend needs to create a user.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is returned by the backend after a successful sign up.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Creator creates accounts. A *BackendError return carries a message meant
// for the user; any other error is treated as unexpected.
type Creator interface {
	CreateAccount(ctx context.Context, acct Account) (Session, error)
}

// Field identifies one of the form inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPassword
	FieldConfirmPassword
)

// Outcome is the result of a successful submission.
type Outcome struct {
	Session    Session
	RememberMe bool
}

// Form holds the state of a sign up form between events.
type Form struct {
	creator Creator
	logger  *slog.Logger

	mu         sync.Mutex
	input      Input
	rememberMe bool
	strength   password.Report
	errMsg     string
	submitting bool
}

// NewForm creates an empty form that submits through creator.
func NewForm(creator Creator, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	return &Form{
		creator:  creator,
		logger:   logger,
		strength: password.Analyze(""),
	}
}

// Set records a change to one field. Password changes recompute the
// strength report before returning.
func (f *Form) Set(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.input.Name = value
	case FieldEmail:
		f.input.Email = value
	case FieldPassword:
		f.input.Password = value
		f.strength = password.Analyze(value)
	case FieldConfirmPassword:
		f.input.ConfirmPassword = value
	}
}

// SetRememberMe records the remember-me checkbox.
func (f *Form) SetRememberMe(v bool) {
	f.mu.Lock()
	f.rememberMe = v
	f.mu.Unlock()
}

// Input returns the current field values.
func (f *Form) Input() Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Strength returns the report for the current password.
func (f *Form) Strength() password.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.strength
}

// Match returns the confirmation hint for the current fields.
func (f *Form) Match() MatchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return PasswordsMatch(f.input.Password, f.input.ConfirmPassword)
}

// Error returns the message currently displayed on the form, if any.
func (f *Form) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Submitting reports whether a backend call is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the form and, if it passes, creates the account.
// Only one submission may be in flight at a time.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return Outcome{}, ErrSubmitInProgress
	}

	in := f.input
	if res := ValidateInput(in); !res.Valid() {
		f.errMsg = res.Message
		f.mu.Unlock()
		return Outcome{}, res.Err()
	}

	f.errMsg = ""
	f.submitting = true
	rememberMe := f.rememberMe
	f.mu.Unlock()

	session, err := f.create(ctx, Account{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		var backendErr *BackendError
		if !errors.As(err, &backendErr) {
			f.logger.Error("sign up failed", "email", in.Email, "error", err)
			err = &UnexpectedError{Err: err}
		}
		f.errMsg = UserMessage(err)
		return Outcome{}, err
	}

	return Outcome{Session: session, RememberMe: rememberMe}, nil
}

// create calls the backend, turning a panic into an error so Submit always
// gets to clear the submitting flag.
func (f *Form) create(ctx context.Context, acct Account) (session Session, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("account creation panicked: %v", rec)
		}
	}()
	return f.creator.CreateAccount(ctx, acct)
}
