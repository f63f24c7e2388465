package taxid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePersonID(t *testing.T) {
	t.Run("accepts valid person IDs", func(t *testing.T) {
		assert.True(t, ValidatePersonID("52998224725"))
		assert.True(t, ValidatePersonID("11144477735"))
	})

	t.Run("accepts masked input", func(t *testing.T) {
		assert.True(t, ValidatePersonID("529.982.247-25"))
	})

	t.Run("rejects flipped check digits", func(t *testing.T) {
		assert.False(t, ValidatePersonID("52998224735"))
		assert.False(t, ValidatePersonID("52998224724"))
	})

	t.Run("rejects repeated-digit sequences", func(t *testing.T) {
		for _, id := range []string{"00000000000", "11111111111", "99999999999"} {
			assert.False(t, ValidatePersonID(id), id)
		}
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		assert.False(t, ValidatePersonID(""))
		assert.False(t, ValidatePersonID("5299822472"))
		assert.False(t, ValidatePersonID("529982247250"))
	})
}

func TestValidateCompanyID(t *testing.T) {
	t.Run("accepts valid company IDs", func(t *testing.T) {
		assert.True(t, ValidateCompanyID("11222333000181"))
		assert.True(t, ValidateCompanyID("11.222.333/0001-81"))
	})

	t.Run("rejects flipped check digits", func(t *testing.T) {
		assert.False(t, ValidateCompanyID("11222333000191"))
		assert.False(t, ValidateCompanyID("11222333000182"))
	})

	t.Run("is sensitive to leading digit changes", func(t *testing.T) {
		assert.False(t, ValidateCompanyID("21222333000181"))
		assert.False(t, ValidateCompanyID("11222334000181"))
	})

	t.Run("rejects repeated-digit sequences", func(t *testing.T) {
		assert.False(t, ValidateCompanyID("00000000000000"))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		assert.False(t, ValidateCompanyID("1122233300018"))
	})
}

func TestValidate(t *testing.T) {
	t.Run("dispatches by cleaned length", func(t *testing.T) {
		assert.True(t, Validate("529.982.247-25"))
		assert.True(t, Validate("11.222.333/0001-81"))
	})

	t.Run("rejects lengths that match no scheme", func(t *testing.T) {
		assert.False(t, Validate("123"))
		assert.False(t, Validate("529982247251234"))
		assert.False(t, Validate(""))
	})
}

func TestClean(t *testing.T) {
	assert.Equal(t, "52998224725", Clean("529.982.247-25"))
	assert.Equal(t, "", Clean("abc-/."))
}
