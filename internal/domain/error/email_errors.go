// Package error defines domain-specific errors for the budget planner.
package error

import "errors"

// Email domain errors.
var (
	// ErrMissingRecipient is returned when an email is requested without a recipient address.
	ErrMissingRecipient = errors.New("missing recipient email")

	// ErrInvalidRecipient is returned when the recipient address cannot be parsed.
	ErrInvalidRecipient = errors.New("invalid recipient email")

	// ErrEmailQueueFailed is returned when an email fails to be queued.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrInvalidTemplate is returned when an unknown email template is referenced.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrEmailJobNotFound is returned when an email job is not found.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed  EmailErrorCode = "EMAIL-010001"
	ErrCodeEmailJobNotFound  EmailErrorCode = "EMAIL-010002"
	ErrCodeMissingRecipient  EmailErrorCode = "EMAIL-010003"
	ErrCodeEmailInvalidInput EmailErrorCode = "EMAIL-010004"

	// Send errors (02XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	// Template errors (03XXXX)
	ErrCodeInvalidTemplate EmailErrorCode = "EMAIL-030001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
