// Package error defines domain-specific errors for the budget planner.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrTransactionNotFound is returned when no active transaction has the given ID.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionKind is returned when the kind is neither expense nor income.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidMonth is returned when a month outside 1-12 is requested.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidMonthKey is returned when a month-key is not YYYY-MM.
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrPersistenceFailed is returned when the state store could not be read or written.
	ErrPersistenceFailed = errors.New("state persistence failed")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionKind LedgerErrorCode = "LED-010001"
	ErrCodeInvalidMonth           LedgerErrorCode = "LED-010002"
	ErrCodeInvalidMonthKey        LedgerErrorCode = "LED-010003"
	ErrCodeInvalidRequestBody     LedgerErrorCode = "LED-010004"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound LedgerErrorCode = "LED-020001"

	// Storage errors (03XXXX)
	ErrCodePersistenceFailed LedgerErrorCode = "LED-030001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewPersistenceError wraps a state store failure.
func NewPersistenceError(message string, err error) *LedgerError {
	return NewLedgerError(ErrCodePersistenceFailed, message, errors.Join(ErrPersistenceFailed, err))
}
