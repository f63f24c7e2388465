// Package shared holds the domain primitives every CRM context builds
// on: base entity identity, domain errors and the loose Record shape.
package shared

// DomainError is an error with a stable wire code. The HTTP layer maps
// the code to a status; the message is safe to show to the caller.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a domain error with the given code
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Sentinel errors shared across the CRM contexts
var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "Record not found")
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
