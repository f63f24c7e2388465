// Package address defines the normalized address produced by the
// postal-code lookup and the typed failures it can surface.
package address

import "context"

// PostalCodeLength is the digit count of a complete postal code
const PostalCodeLength = 8

// Address is one normalized lookup result. Components are upper-cased
// by the adapter before it hands them over.
type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
}

// LookupErrorKind classifies resolver failures
type LookupErrorKind string

const (
	LookupNotFound LookupErrorKind = "not_found"
	LookupTimeout  LookupErrorKind = "timeout"
	LookupNetwork  LookupErrorKind = "network"
)

// LookupError is a typed resolver failure. It is surfaced as an inline
// hint on the postal-code field and never blocks a submit.
type LookupError struct {
	Kind    LookupErrorKind
	Message string
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "address lookup failed: " + string(e.Kind)
}

// NewLookupError creates a typed lookup failure
func NewLookupError(kind LookupErrorKind, message string) *LookupError {
	return &LookupError{Kind: kind, Message: message}
}

// Lookup resolves a complete, cleaned postal code into an address. The
// network adapter implementing it maps its failures onto LookupError.
type Lookup interface {
	Resolve(ctx context.Context, postalCode string) (*Address, error)
}
