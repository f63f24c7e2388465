package forms

import (
	"context"
	"time"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/form"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/taxid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitStatus classifies the outcome of a submit attempt
type SubmitStatus string

const (
	// SubmitSaved means the record was persisted
	SubmitSaved SubmitStatus = "saved"
	// SubmitInvalid means validation failed and nothing was persisted
	SubmitInvalid SubmitStatus = "invalid"
	// SubmitDuplicate means a record with the same natural key exists;
	// the save is paused until the user confirms or cancels
	SubmitDuplicate SubmitStatus = "duplicate"
)

// PendingSave is the payload snapshotted at validation time. A
// confirmed save persists exactly this snapshot, so edits made while
// the conflict dialog was open never leak into the record.
type PendingSave struct {
	Schema   string            `json:"schema"`
	RecordID uuid.UUID         `json:"record_id"`
	Values   map[string]string `json:"values"`
}

// SubmitResult reports one submit attempt
type SubmitResult struct {
	Status     SubmitStatus          `json:"status"`
	Validation form.ValidationResult `json:"validation"`
	// Conflict carries the identifying fields of the record occupying
	// the natural key, when one was found
	Conflict shared.Record `json:"conflict,omitempty"`
	Pending  *PendingSave  `json:"pending,omitempty"`
	RecordID uuid.UUID     `json:"record_id,omitempty"`
}

// Submit validates the form, gates the save on the duplicate check and
// persists when clear. Pass uuid.Nil as recordID when creating; when
// editing, the record's own id is excluded from the duplicate check.
//
// A transport failure of the duplicate check itself is logged and does
// not block the save: a frozen workflow is worse than a duplicate the
// user can still merge later. A failure of the save is returned.
func (s *Service) Submit(ctx context.Context, schemaName string, state *form.State, recordID uuid.UUID) (*SubmitResult, error) {
	validation, err := s.Validate(schemaName, state)
	if err != nil {
		return nil, err
	}
	if !validation.IsValid {
		return &SubmitResult{Status: SubmitInvalid, Validation: validation}, nil
	}

	pending := &PendingSave{
		Schema:   schemaName,
		RecordID: recordID,
		Values:   state.Snapshot(),
	}

	duplicate, conflict, err := s.lookupDuplicate(ctx, pending)
	if err != nil {
		s.logger.Warn("duplicate check failed; proceeding with save",
			zap.String("schema", schemaName),
			zap.Error(err))
		duplicate = false
	}
	if duplicate {
		return &SubmitResult{
			Status:     SubmitDuplicate,
			Validation: validation,
			Conflict:   conflict,
			Pending:    pending,
		}, nil
	}

	id, err := s.save(ctx, pending)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Status: SubmitSaved, Validation: validation, RecordID: id}, nil
}

// ConfirmSave persists a pending payload after the user explicitly
// chose to save anyway. The snapshot is reused as-is, never recomputed.
func (s *Service) ConfirmSave(ctx context.Context, pending *PendingSave) (uuid.UUID, error) {
	if pending == nil {
		return uuid.Nil, shared.ErrInvalidInput
	}
	return s.save(ctx, pending)
}

// CheckDuplicate answers whether a record with the given natural key
// already exists, excluding excludeID when editing. Transport failures
// are returned to the caller.
func (s *Service) CheckDuplicate(ctx context.Context, schemaName string, values map[string]string, excludeID uuid.UUID) (bool, error) {
	duplicate, _, err := s.lookupDuplicate(ctx, &PendingSave{
		Schema:   schemaName,
		RecordID: excludeID,
		Values:   values,
	})
	return duplicate, err
}

func (s *Service) lookupDuplicate(ctx context.Context, pending *PendingSave) (bool, shared.Record, error) {
	switch pending.Schema {
	case crm.SchemaCommission:
		clientID, err := uuid.Parse(pending.Values["client_id"])
		if err != nil {
			return false, nil, nil
		}
		key := crm.NaturalKey{ClientID: clientID, Period: pending.Values["period"]}
		exists, err := s.commissions.ExistsByKey(ctx, key, pending.RecordID)
		if err != nil || !exists {
			return false, nil, err
		}
		var conflict shared.Record
		if occupant, err := s.commissions.FindByKey(ctx, key); err == nil {
			conflict = occupant.AsRecord()
		}
		return true, conflict, nil
	case crm.SchemaClient:
		cleaned := taxid.Clean(pending.Values["tax_id"])
		if cleaned == "" {
			return false, nil, nil
		}
		exists, err := s.clients.ExistsByTaxID(ctx, cleaned, pending.RecordID)
		return exists, nil, err
	default:
		return false, nil, nil
	}
}

func (s *Service) save(ctx context.Context, pending *PendingSave) (uuid.UUID, error) {
	switch pending.Schema {
	case crm.SchemaCommission:
		return s.saveCommission(ctx, pending)
	case crm.SchemaClient:
		return s.saveClient(ctx, pending)
	case crm.SchemaProspect:
		return s.saveProspect(ctx, pending)
	case crm.SchemaVisit:
		return s.saveVisit(ctx, pending)
	default:
		return uuid.Nil, shared.NewDomainError("UNKNOWN_SCHEMA", "No form schema named "+pending.Schema)
	}
}

func (s *Service) saveCommission(ctx context.Context, pending *PendingSave) (uuid.UUID, error) {
	values := pending.Values
	clientID, err := uuid.Parse(values["client_id"])
	if err != nil {
		return uuid.Nil, shared.NewDomainError("INVALID_CLIENT", "Commission requires a client")
	}
	value := form.ParseAmount(values["contract_value"])
	rate := form.ParseAmount(values["commission_rate"])

	if pending.RecordID != uuid.Nil {
		commission, err := s.commissions.FindByID(ctx, pending.RecordID)
		if err != nil {
			return uuid.Nil, err
		}
		commission.ClientID = clientID
		commission.Period = values["period"]
		commission.Vendor = values["vendor"]
		if err := commission.SetTerms(value, rate); err != nil {
			return uuid.Nil, err
		}
		return commission.ID, s.commissions.Save(ctx, commission)
	}

	commission, err := crm.NewCommission(clientID, values["period"], value, rate)
	if err != nil {
		return uuid.Nil, err
	}
	commission.Vendor = values["vendor"]
	return commission.ID, s.commissions.Save(ctx, commission)
}

func (s *Service) saveClient(ctx context.Context, pending *PendingSave) (uuid.UUID, error) {
	values := pending.Values
	var client *crm.Client
	if pending.RecordID != uuid.Nil {
		existing, err := s.clients.FindByID(ctx, pending.RecordID)
		if err != nil {
			return uuid.Nil, err
		}
		client = existing
		client.Name = values["name"]
		client.TaxID = taxid.Clean(values["tax_id"])
	} else {
		created, err := crm.NewClient(values["name"], values["tax_id"])
		if err != nil {
			return uuid.Nil, err
		}
		client = created
	}
	if prospectID, err := uuid.Parse(values["prospect_id"]); err == nil {
		client.LinkProspect(prospectID)
	}
	client.Vendor = values["vendor"]
	client.ContactName = values["contact"]
	client.Phone = values["phone"]
	client.Email = values["email"]
	client.Street = values["street"]
	client.Neighborhood = values["neighborhood"]
	client.City = values["city"]
	client.State = values["state"]
	client.PostalCode = values[crm.PostalCodeField]
	client.Competitor = values["competitor"]
	if err := client.SetContract(
		form.ParseAmount(values["contract_value"]),
		form.ParseAmount(values["commission_rate"]),
	); err != nil {
		return uuid.Nil, err
	}
	return client.ID, s.clients.Save(ctx, client)
}

func (s *Service) saveProspect(ctx context.Context, pending *PendingSave) (uuid.UUID, error) {
	values := pending.Values
	var prospect *crm.Prospect
	if pending.RecordID != uuid.Nil {
		existing, err := s.prospects.FindByID(ctx, pending.RecordID)
		if err != nil {
			return uuid.Nil, err
		}
		prospect = existing
		prospect.Name = values["name"]
		prospect.Touch()
	} else {
		created, err := crm.NewProspect(values["name"])
		if err != nil {
			return uuid.Nil, err
		}
		prospect = created
	}
	prospect.ContactName = values["contact"]
	prospect.Phone = values["phone"]
	prospect.Email = values["email"]
	prospect.Street = values["street"]
	prospect.Neighborhood = values["neighborhood"]
	prospect.City = values["city"]
	prospect.State = values["state"]
	prospect.PostalCode = values[crm.PostalCodeField]
	prospect.Competitor = values["competitor"]
	prospect.Notes = values["notes"]
	return prospect.ID, s.prospects.Save(ctx, prospect)
}

func (s *Service) saveVisit(ctx context.Context, pending *PendingSave) (uuid.UUID, error) {
	values := pending.Values
	prospectID, err := uuid.Parse(values["prospect_id"])
	if err != nil {
		return uuid.Nil, shared.NewDomainError("INVALID_PROSPECT", "Visit requires a prospect")
	}
	date, err := time.Parse("2006-01-02", values["date"])
	if err != nil {
		return uuid.Nil, shared.NewDomainError("INVALID_DATE", "Visit date must use the YYYY-MM-DD format")
	}

	var visit *crm.Visit
	if pending.RecordID != uuid.Nil {
		existing, findErr := s.visits.FindByID(ctx, pending.RecordID)
		if findErr != nil {
			return uuid.Nil, findErr
		}
		visit = existing
		visit.ProspectID = prospectID
		visit.Date = date
		visit.Touch()
	} else {
		created, newErr := crm.NewVisit(prospectID, date)
		if newErr != nil {
			return uuid.Nil, newErr
		}
		visit = created
	}
	if outcome := values["outcome"]; outcome != "" {
		visit.Outcome = crm.VisitOutcome(outcome)
	}
	visit.Notes = values["notes"]
	return visit.ID, s.visits.Save(ctx, visit)
}
