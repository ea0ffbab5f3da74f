package signup

import "errors"

const (
	fallbackBackendMessage    = "Failed to sign up. Please try again."
	fallbackUnexpectedMessage = "An unexpected error occurred. Please try again."
)

// ErrSubmitInProgress is returned when Submit is called while an earlier
// submission is still waiting on the backend.
var ErrSubmitInProgress = errors.New("sign up already in progress")

// InputError is a failed validation rule. No backend call was made.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// BackendError is a failure reported by the account-creation backend.
// Message is shown to the user as is.
type BackendError struct {
	Message string
	Status  int
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fallbackBackendMessage
	}
	return e.Message
}

// UnexpectedError wraps anything else that went wrong while creating the account.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fallbackUnexpectedMessage
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text the form should display for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Error()
	}
	if errors.Is(err, ErrSubmitInProgress) {
		return ""
	}
	return fallbackUnexpectedMessage
}
