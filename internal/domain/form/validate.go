package form

import (
	"fmt"
	"regexp"
	"time"

	"github.com/crm/backend/internal/domain/taxid"
)

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	periodPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)
)

// ValidationResult aggregates one validation pass. A fresh result is
// produced on every pass and never mutated afterwards.
type ValidationResult struct {
	Errors map[string]string `json:"errors"`
	// FirstInvalid is the name of the first failing field in schema
	// declaration order; the screen focuses it deterministically.
	FirstInvalid string `json:"first_invalid,omitempty"`
	IsValid      bool   `json:"is_valid"`
}

// FeedbackSink receives the failure cue when a submission is rejected.
// Screens plug in a platform implementation (audio, focus highlight);
// the engine itself only ever talks to the interface.
type FeedbackSink interface {
	InvalidSubmission(firstInvalid string)
}

// NopFeedback discards all cues
type NopFeedback struct{}

// InvalidSubmission implements FeedbackSink
func (NopFeedback) InvalidSubmission(string) {}

// Validate runs required-ness and format rules over every schema field,
// collecting all errors rather than stopping at the first.
func Validate(schema *Schema, state *State) ValidationResult {
	result := ValidationResult{
		Errors:  make(map[string]string),
		IsValid: true,
	}
	for _, field := range schema.Fields() {
		value := state.Value(field.Name)
		message := validateField(field, value)
		if message == "" {
			continue
		}
		result.Errors[field.Name] = message
		if result.FirstInvalid == "" {
			result.FirstInvalid = field.Name
		}
		result.IsValid = false
	}
	return result
}

func validateField(field Field, value string) string {
	label := field.Label
	if label == "" {
		label = field.Name
	}
	if value == "" {
		if field.Required {
			return fmt.Sprintf("%s is required", label)
		}
		return ""
	}
	switch field.Format {
	case FormatTaxID:
		if !taxid.Validate(value) {
			return fmt.Sprintf("%s is not a valid tax ID", label)
		}
	case FormatEmail:
		if !emailPattern.MatchString(value) {
			return fmt.Sprintf("%s is not a valid email address", label)
		}
	case FormatPhone:
		if n := len(digitsOnly(value)); n != 10 && n != 11 {
			return fmt.Sprintf("%s must have 10 or 11 digits", label)
		}
	case FormatPostalCode:
		if len(digitsOnly(value)) != 8 {
			return fmt.Sprintf("%s must have 8 digits", label)
		}
	case FormatDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Sprintf("%s is not a valid date", label)
		}
	case FormatPeriod:
		if !periodPattern.MatchString(value) {
			return fmt.Sprintf("%s must use the MM/YYYY format", label)
		}
	}
	return ""
}
