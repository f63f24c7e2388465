package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	t.Run("treats digits as cents", func(t *testing.T) {
		assert.Equal(t, "0,01", FormatAmount("1"))
		assert.Equal(t, "1,00", FormatAmount("100"))
		assert.Equal(t, "1.000,00", FormatAmount("100000"))
		assert.Equal(t, "12.345,67", FormatAmount("1234567"))
	})

	t.Run("strips existing mask characters", func(t *testing.T) {
		assert.Equal(t, "1.000,00", FormatAmount("1.000,00"))
		assert.Equal(t, "1.000,00", FormatAmount("R$ 1000,00"))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Equal(t, "", FormatAmount(""))
		assert.Equal(t, "", FormatAmount("abc"))
	})
}

func TestFormatPhoneNumber(t *testing.T) {
	t.Run("ten digits", func(t *testing.T) {
		assert.Equal(t, "(11) 3456-7890", FormatPhoneNumber("1134567890"))
	})

	t.Run("eleven digits", func(t *testing.T) {
		assert.Equal(t, "(11) 93456-7890", FormatPhoneNumber("11934567890"))
	})

	t.Run("other lengths pass through as digits", func(t *testing.T) {
		assert.Equal(t, "12345", FormatPhoneNumber("123-45"))
	})
}

func TestFormatPostal(t *testing.T) {
	assert.Equal(t, "01310", FormatPostal("01310"))
	assert.Equal(t, "01310-9", FormatPostal("013109"))
	assert.Equal(t, "01310-930", FormatPostal("01310930"))
	assert.Equal(t, "01310-930", FormatPostal("01310-930999"))
}

func TestFormatTaxIDNumber(t *testing.T) {
	t.Run("person pattern up to eleven digits", func(t *testing.T) {
		assert.Equal(t, "529.982.247-25", FormatTaxIDNumber("52998224725"))
		assert.Equal(t, "529.982", FormatTaxIDNumber("529982"))
	})

	t.Run("company pattern beyond eleven digits", func(t *testing.T) {
		assert.Equal(t, "11.222.333/0001-81", FormatTaxIDNumber("11222333000181"))
	})
}

func TestFormatValueIdempotence(t *testing.T) {
	cases := []struct {
		format FieldFormat
		input  string
	}{
		{FormatCurrency, "1234567"},
		{FormatPercent, "1050"},
		{FormatPhone, "11934567890"},
		{FormatPhone, "1134567890"},
		{FormatPostalCode, "01310930"},
		{FormatTaxID, "52998224725"},
		{FormatTaxID, "11222333000181"},
	}
	for _, tc := range cases {
		once := FormatValue(tc.format, tc.input)
		twice := FormatValue(tc.format, once)
		assert.Equal(t, once, twice, "format %s input %s", tc.format, tc.input)
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("locale-formatted values", func(t *testing.T) {
		assert.True(t, ParseAmount("1.234,56").Equal(ParseAmount("1234,56")))
		assert.Equal(t, "1000", ParseAmount("1.000,00").Truncate(0).String())
	})

	t.Run("blank and garbage yield zero", func(t *testing.T) {
		assert.True(t, ParseAmount("").IsZero())
		assert.True(t, ParseAmount("n/a").IsZero())
	})
}
