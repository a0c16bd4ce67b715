package booking

import "fmt"

// ErrorCode classifies a rejected or failed submission for the HTTP layer.
type ErrorCode string

const (
	CodeValidation    ErrorCode = "validation_error"
	CodeSpamRejected  ErrorCode = "spam_rejected"
	CodeCaptchaFailed ErrorCode = "captcha_failed"
	CodeSlotConflict  ErrorCode = "slot_conflict"
	CodeUpstream      ErrorCode = "upstream_error"
)

// Error carries a taxonomy code, a message safe to show the caller, and
// optionally the underlying cause.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func wrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}
