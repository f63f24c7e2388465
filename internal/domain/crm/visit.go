package crm

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VisitOutcome classifies how a prospect visit ended
type VisitOutcome string

const (
	VisitOutcomeScheduled VisitOutcome = "scheduled"
	VisitOutcomeDone      VisitOutcome = "done"
	VisitOutcomeNoShow    VisitOutcome = "no_show"
)

// Visit is one field visit to a prospect
type Visit struct {
	shared.BaseEntity
	ProspectID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Prospect   *Prospect    `gorm:"foreignKey:ProspectID"`
	Date       time.Time    `gorm:"not null;index"`
	Outcome    VisitOutcome `gorm:"type:varchar(20);not null;default:'scheduled'"`
	Notes      string       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Visit) TableName() string {
	return "visits"
}

// NewVisit schedules a visit to a prospect
func NewVisit(prospectID uuid.UUID, date time.Time) (*Visit, error) {
	if prospectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROSPECT", "Visit requires a prospect")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Visit requires a date")
	}
	return &Visit{
		BaseEntity: shared.NewBaseEntity(),
		ProspectID: prospectID,
		Date:       date,
		Outcome:    VisitOutcomeScheduled,
	}, nil
}

// Complete marks the visit as done
func (v *Visit) Complete(notes string) error {
	if v.Outcome == VisitOutcomeDone {
		return shared.ErrInvalidState
	}
	v.Outcome = VisitOutcomeDone
	v.Notes = notes
	v.Touch()
	return nil
}

// AsRecord renders the visit row the list screens filter and sort
func (v *Visit) AsRecord() shared.Record {
	record := shared.Record{
		"id":      v.ID.String(),
		"date":    v.Date.Format("2006-01-02"),
		"outcome": string(v.Outcome),
		"notes":   v.Notes,
	}
	if v.Prospect != nil {
		record["prospect"] = v.Prospect.AsRecord()
	}
	return record
}
