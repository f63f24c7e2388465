package crm

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommission(t *testing.T) {
	clientID := uuid.New()

	t.Run("derives the amount from value and rate", func(t *testing.T) {
		c, err := NewCommission(clientID, "01/2025",
			decimal.NewFromInt(1000), decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Equal(t, "100.00", c.Amount.StringFixed(2))
		assert.Equal(t, NaturalKey{ClientID: clientID, Period: "01/2025"}, c.Key())
	})

	t.Run("rejects a missing client", func(t *testing.T) {
		_, err := NewCommission(uuid.Nil, "01/2025", decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects malformed periods", func(t *testing.T) {
		for _, period := range []string{"13/2025", "1/2025", "2025-01", ""} {
			_, err := NewCommission(clientID, period, decimal.Zero, decimal.Zero)
			assert.Error(t, err, period)
		}
	})

	t.Run("rejects rates above one hundred", func(t *testing.T) {
		_, err := NewCommission(clientID, "01/2025",
			decimal.NewFromInt(1000), decimal.NewFromInt(101))
		assert.Error(t, err)
	})
}

func TestCommissionSetTerms(t *testing.T) {
	clientID := uuid.New()
	c, err := NewCommission(clientID, "02/2025",
		decimal.NewFromInt(1000), decimal.NewFromInt(10))
	require.NoError(t, err)

	require.NoError(t, c.SetTerms(decimal.NewFromInt(2000), decimal.NewFromFloat(7.5)))

	assert.Equal(t, "150.00", c.Amount.StringFixed(2))
}

func TestNewClient(t *testing.T) {
	t.Run("validates the tax ID checksum", func(t *testing.T) {
		_, err := NewClient("Acme", "11111111111")
		assert.Error(t, err)

		client, err := NewClient("Acme", "529.982.247-25")
		require.NoError(t, err)
		assert.Equal(t, "52998224725", client.TaxID)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := NewClient("  ", "52998224725")
		assert.Error(t, err)
	})
}

func TestSchemas(t *testing.T) {
	t.Run("every named schema is registered", func(t *testing.T) {
		for _, name := range SchemaNames() {
			schema, ok := SchemaByName(name)
			require.True(t, ok, name)
			assert.Equal(t, name, schema.Name)
		}
	})

	t.Run("unknown schema is reported", func(t *testing.T) {
		_, ok := SchemaByName("invoice")
		assert.False(t, ok)
	})

	t.Run("commission amount is derived and read-only", func(t *testing.T) {
		schema, ok := SchemaByName(SchemaCommission)
		require.True(t, ok)
		field, ok := schema.Field("commission_amount")
		require.True(t, ok)
		assert.True(t, field.ReadOnly)
		require.Len(t, schema.Derived(), 1)
	})

	t.Run("address cascade is present wherever an address block is", func(t *testing.T) {
		for _, name := range []string{SchemaClient, SchemaProspect} {
			schema, _ := SchemaByName(name)
			found := false
			for _, rule := range schema.Cascades() {
				if rule.Trigger == PostalCodeField {
					found = true
				}
			}
			assert.True(t, found, name)
		}
	})
}
