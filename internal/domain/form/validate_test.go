package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientSchema(t *testing.T) *Schema {
	t.Helper()
	schema, err := NewSchema("client", []Field{
		{Name: "name", Label: "Name", Required: true},
		{Name: "tax_id", Label: "Tax ID", Required: true, Format: FormatTaxID},
		{Name: "email", Label: "Email", Format: FormatEmail},
		{Name: "phone", Label: "Phone", Format: FormatPhone},
		{Name: "postal_code", Label: "Postal code", Format: FormatPostalCode},
		{Name: "vigency", Label: "Billing period", Format: FormatPeriod},
		{Name: "visit_date", Label: "Visit date", Format: FormatDate},
	})
	require.NoError(t, err)
	return schema
}

func TestValidate(t *testing.T) {
	t.Run("valid state passes", func(t *testing.T) {
		schema := clientSchema(t)
		state := NewStateFromValues(true, map[string]string{
			"name":        "Acme",
			"tax_id":      "529.982.247-25",
			"email":       "sales@acme.com.br",
			"phone":       "(11) 93456-7890",
			"postal_code": "01310-930",
			"vigency":     "01/2025",
			"visit_date":  "2025-01-15",
		})

		result := Validate(schema, state)

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.FirstInvalid)
	})

	t.Run("collects every error instead of failing fast", func(t *testing.T) {
		schema := clientSchema(t)
		state := NewStateFromValues(true, map[string]string{
			"tax_id": "111.111.111-11",
			"email":  "not-an-email",
		})

		result := Validate(schema, state)

		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 3)
		assert.Contains(t, result.Errors, "name")
		assert.Contains(t, result.Errors, "tax_id")
		assert.Contains(t, result.Errors, "email")
	})

	t.Run("first invalid follows declaration order", func(t *testing.T) {
		schema := clientSchema(t)
		state := NewStateFromValues(true, map[string]string{
			"name":  "Acme",
			"email": "broken",
		})

		result := Validate(schema, state)

		assert.Equal(t, "tax_id", result.FirstInvalid)
	})

	t.Run("optional empty fields are skipped", func(t *testing.T) {
		schema := clientSchema(t)
		state := NewStateFromValues(true, map[string]string{
			"name":   "Acme",
			"tax_id": "52998224725",
		})

		result := Validate(schema, state)

		assert.True(t, result.IsValid)
	})

	t.Run("format checks", func(t *testing.T) {
		schema := clientSchema(t)
		cases := []struct {
			field string
			value string
		}{
			{"phone", "123"},
			{"postal_code", "0131"},
			{"vigency", "13/2025"},
			{"vigency", "2025-01"},
			{"visit_date", "15/01/2025"},
		}
		for _, tc := range cases {
			state := NewStateFromValues(true, map[string]string{
				"name":   "Acme",
				"tax_id": "52998224725",
				tc.field: tc.value,
			})
			result := Validate(schema, state)
			assert.Contains(t, result.Errors, tc.field, "value %q", tc.value)
		}
	})

	t.Run("each pass returns a fresh result", func(t *testing.T) {
		schema := clientSchema(t)
		state := NewState(true)

		first := Validate(schema, state)
		state.Set("name", "Acme")
		state.Set("tax_id", "52998224725")
		second := Validate(schema, state)

		assert.False(t, first.IsValid)
		assert.True(t, second.IsValid)
		assert.Contains(t, first.Errors, "name")
		assert.NotContains(t, second.Errors, "name")
	})
}
