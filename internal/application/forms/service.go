// Package forms orchestrates the entry-form flows shared by the CRM
// screens: change cascades, derived recomputation, validation, and the
// duplicate-gated submit.
package forms

import (
	"github.com/crm/backend/internal/domain/address"
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/form"
	"github.com/crm/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service wires the form engine to the CRM repositories
type Service struct {
	clients     crm.ClientRepository
	prospects   crm.ProspectRepository
	commissions crm.CommissionRepository
	visits      crm.VisitRepository
	feedback    form.FeedbackSink
	logger      *zap.Logger
}

// NewService creates the form service
func NewService(
	clients crm.ClientRepository,
	prospects crm.ProspectRepository,
	commissions crm.CommissionRepository,
	visits crm.VisitRepository,
	feedback form.FeedbackSink,
	logger *zap.Logger,
) *Service {
	if feedback == nil {
		feedback = form.NopFeedback{}
	}
	return &Service{
		clients:     clients,
		prospects:   prospects,
		commissions: commissions,
		visits:      visits,
		feedback:    feedback,
		logger:      logger,
	}
}

// Schema resolves a form schema by name
func (s *Service) Schema(name string) (*form.Schema, error) {
	schema, ok := crm.SchemaByName(name)
	if !ok {
		return nil, shared.NewDomainError("UNKNOWN_SCHEMA", "No form schema named "+name)
	}
	return schema, nil
}

// ApplyChange handles one field change within a single event tick: the
// cascade fires first, then every derived field recomputes, and the
// combined partial update is applied to the state before returning. The
// screen never observes a partially cascaded form.
func (s *Service) ApplyChange(schemaName, changedField string, newValue any, state *form.State) (form.Update, error) {
	schema, err := s.Schema(schemaName)
	if err != nil {
		return nil, err
	}
	combined := make(form.Update)
	cascade := form.ApplyCascade(schema, changedField, newValue, state)
	state.Apply(cascade)
	for field, value := range cascade {
		combined[field] = value
	}
	derived := form.ComputeDerived(schema, state)
	state.Apply(derived)
	for field, value := range derived {
		combined[field] = value
	}
	return combined, nil
}

// ApplyResolvedAddress feeds a successful postal-code resolution back
// into the form as the address cascade. Fields the user already typed
// are left alone.
func (s *Service) ApplyResolvedAddress(schemaName string, resolved *address.Address, state *form.State) (form.Update, error) {
	if resolved == nil {
		return form.Update{}, nil
	}
	record := shared.Record{
		"street":       resolved.Street,
		"neighborhood": resolved.Neighborhood,
		"city":         resolved.City,
		"state":        resolved.State,
	}
	return s.ApplyChange(schemaName, crm.PostalCodeField, record, state)
}

// Validate runs the full validation pass and, on failure, fires the
// feedback cue with the first invalid field in declaration order.
func (s *Service) Validate(schemaName string, state *form.State) (form.ValidationResult, error) {
	schema, err := s.Schema(schemaName)
	if err != nil {
		return form.ValidationResult{}, err
	}
	result := form.Validate(schema, state)
	if !result.IsValid {
		s.feedback.InvalidSubmission(result.FirstInvalid)
	}
	return result, nil
}

// FormatField applies the field's display mask to raw input
func (s *Service) FormatField(schemaName, fieldName, raw string) (string, error) {
	schema, err := s.Schema(schemaName)
	if err != nil {
		return "", err
	}
	field, ok := schema.Field(fieldName)
	if !ok {
		return "", shared.NewDomainError("UNKNOWN_FIELD", "No field named "+fieldName)
	}
	return form.FormatValue(field.Format, raw), nil
}
