// Package crm holds the client, prospect, commission and visit
// aggregates plus the form schemas the entry screens share.
package crm

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/taxid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is a converted prospect with an active contract
type Client struct {
	shared.BaseEntity
	Name           string          `gorm:"type:varchar(200);not null;index"`
	TaxID          string          `gorm:"type:varchar(18);not null;index"`
	ProspectID     *uuid.UUID      `gorm:"type:uuid;index"`
	Prospect       *Prospect       `gorm:"foreignKey:ProspectID"`
	Vendor         string          `gorm:"type:varchar(100)"`
	ContactName    string          `gorm:"type:varchar(100)"`
	Phone          string          `gorm:"type:varchar(20)"`
	Email          string          `gorm:"type:varchar(200)"`
	Street         string          `gorm:"type:varchar(200)"`
	Neighborhood   string          `gorm:"type:varchar(100)"`
	City           string          `gorm:"type:varchar(100)"`
	State          string          `gorm:"type:varchar(2)"`
	PostalCode     string          `gorm:"type:varchar(9)"`
	Competitor     string          `gorm:"type:varchar(100)"`
	ContractValue  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a client with validated required fields
func NewClient(name, taxID string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	if !taxid.Validate(taxID) {
		return nil, shared.NewDomainError("INVALID_TAX_ID", "Client tax ID failed checksum validation")
	}
	return &Client{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		TaxID:          taxid.Clean(taxID),
		ContractValue:  decimal.Zero,
		CommissionRate: decimal.Zero,
	}, nil
}

// LinkProspect records which prospect this client was converted from
func (c *Client) LinkProspect(prospectID uuid.UUID) {
	c.ProspectID = &prospectID
	c.Touch()
}

// SetContract sets the contract value and commission rate
func (c *Client) SetContract(value, rate decimal.Decimal) error {
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_CONTRACT_VALUE", "Contract value cannot be negative")
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_RATE", "Commission rate must be between 0 and 100")
	}
	c.ContractValue = value
	c.CommissionRate = rate
	c.Touch()
	return nil
}

// AsRecord renders the client in the denormalized shape the commission
// form picker consumes.
func (c *Client) AsRecord() shared.Record {
	return shared.Record{
		"id":              c.ID.String(),
		"name":            c.Name,
		"tax_id":          c.TaxID,
		"vendor":          c.Vendor,
		"contract_value":  c.ContractValue.StringFixed(2),
		"commission_rate": c.CommissionRate.StringFixed(2),
	}
}
