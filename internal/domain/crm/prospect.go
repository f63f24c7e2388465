package crm

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
)

// Prospect is a potential client being worked by the sales team
type Prospect struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(200);not null;index"`
	ContactName  string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(20)"`
	Email        string `gorm:"type:varchar(200)"`
	Street       string `gorm:"type:varchar(200)"`
	Neighborhood string `gorm:"type:varchar(100)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(2)"`
	PostalCode   string `gorm:"type:varchar(9)"`
	Competitor   string `gorm:"type:varchar(100)"`
	Notes        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Prospect) TableName() string {
	return "prospects"
}

// NewProspect creates a prospect with the minimum required fields
func NewProspect(name string) (*Prospect, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Prospect name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Prospect name cannot exceed 200 characters")
	}
	return &Prospect{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// AsRecord renders the prospect in the denormalized shape the form
// cascade engine consumes.
func (p *Prospect) AsRecord() shared.Record {
	return shared.Record{
		"id":           p.ID.String(),
		"name":         p.Name,
		"contact":      p.ContactName,
		"phone":        p.Phone,
		"email":        p.Email,
		"street":       p.Street,
		"neighborhood": p.Neighborhood,
		"city":         p.City,
		"state":        p.State,
		"postal_code":  p.PostalCode,
		"competitor":   p.Competitor,
	}
}
