package crm

import (
	"regexp"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var billingPeriodPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

// Commission is one billing-period commission entry for a client. The
// pair (client, period) is its natural key: the duplicate detector
// refuses a second entry for the same client and period unless the user
// explicitly confirms.
type Commission struct {
	shared.BaseEntity
	ClientID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_commission_client_period,priority:1"`
	Client   *Client         `gorm:"foreignKey:ClientID"`
	Period   string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_commission_client_period,priority:2"`
	Vendor   string          `gorm:"type:varchar(100)"`
	Value    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Rate     decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Commission) TableName() string {
	return "commissions"
}

// NewCommission creates a commission entry; the amount is always
// derived from value and rate, never supplied.
func NewCommission(clientID uuid.UUID, period string, value, rate decimal.Decimal) (*Commission, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Commission requires a client")
	}
	if !billingPeriodPattern.MatchString(period) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Billing period must use the MM/YYYY format")
	}
	if value.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Contract value cannot be negative")
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_RATE", "Commission rate must be between 0 and 100")
	}
	c := &Commission{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		Period:     period,
		Value:      value,
		Rate:       rate,
	}
	c.recompute()
	return c, nil
}

// SetTerms updates value and rate, recomputing the amount
func (c *Commission) SetTerms(value, rate decimal.Decimal) error {
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Contract value cannot be negative")
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_RATE", "Commission rate must be between 0 and 100")
	}
	c.Value = value
	c.Rate = rate
	c.recompute()
	c.Touch()
	return nil
}

func (c *Commission) recompute() {
	c.Amount = c.Value.Mul(c.Rate).Div(decimal.NewFromInt(100)).Round(2)
}

// NaturalKey identifies a commission by business meaning rather than
// surrogate id.
type NaturalKey struct {
	ClientID uuid.UUID
	Period   string
}

// Key returns the commission's natural key
func (c *Commission) Key() NaturalKey {
	return NaturalKey{ClientID: c.ClientID, Period: c.Period}
}

// AsRecord renders the commission row the list screens filter and sort
func (c *Commission) AsRecord() shared.Record {
	record := shared.Record{
		"id":     c.ID.String(),
		"period": c.Period,
		"vendor": c.Vendor,
		"value":  c.Value.StringFixed(2),
		"rate":   c.Rate.StringFixed(2),
		"amount": c.Amount.StringFixed(2),
	}
	if c.Client != nil {
		record["client"] = c.Client.AsRecord()
	}
	return record
}
