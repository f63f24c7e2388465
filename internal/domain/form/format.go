package form

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders numbers with the grouping and decimal separators the
// hosted forms have always used (1.234,56).
var printer = message.NewPrinter(language.BrazilianPortuguese)

// FieldFormat identifies the display mask applied to a field
type FieldFormat string

const (
	FormatNone       FieldFormat = ""
	FormatCurrency   FieldFormat = "currency"
	FormatPercent    FieldFormat = "percent"
	FormatPhone      FieldFormat = "phone"
	FormatPostalCode FieldFormat = "postal_code"
	FormatTaxID      FieldFormat = "tax_id"
	FormatDate       FieldFormat = "date"
	FormatPeriod     FieldFormat = "period"
	FormatEmail      FieldFormat = "email"
)

// FormatValue applies the formatter for the given format kind. Formats
// without a mask return the input unchanged. Every formatter is
// idempotent: FormatValue(f, FormatValue(f, x)) == FormatValue(f, x).
func FormatValue(format FieldFormat, raw string) string {
	switch format {
	case FormatCurrency, FormatPercent:
		return formatAmount(raw)
	case FormatPhone:
		return FormatPhoneNumber(raw)
	case FormatPostalCode:
		return FormatPostal(raw)
	case FormatTaxID:
		return FormatTaxIDNumber(raw)
	default:
		return raw
	}
}

// formatAmount strips non-digits, interprets the value as cents and
// renders it with exactly two fraction digits and locale grouping.
func formatAmount(raw string) string {
	digits := digitsOnly(raw)
	if digits == "" {
		return ""
	}
	cents, err := decimal.NewFromString(digits)
	if err != nil {
		return ""
	}
	amount := cents.Div(decimal.NewFromInt(100))
	value, _ := amount.Float64()
	return printer.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatAmount renders a raw digit string as a currency amount
func FormatAmount(raw string) string {
	return formatAmount(raw)
}

// FormatDecimal renders an already-parsed decimal with two fraction
// digits and locale grouping.
func FormatDecimal(d decimal.Decimal) string {
	value, _ := d.Float64()
	return printer.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPhoneNumber masks 10-digit numbers as (DD) DDDD-DDDD and
// 11-digit numbers as (DD) DDDDD-DDDD. Other lengths pass through as
// bare digits; prefixes are never inferred.
func FormatPhoneNumber(raw string) string {
	digits := digitsOnly(raw)
	switch len(digits) {
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	default:
		return digits
	}
}

// FormatPostal inserts the postal-code separator after the fifth digit
// once the input is long enough.
func FormatPostal(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > 8 {
		digits = digits[:8]
	}
	if len(digits) <= 5 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}

// FormatTaxIDNumber masks up to 11 digits with the person-ID pattern
// (XXX.XXX.XXX-XX) and longer input with the company-ID pattern
// (XX.XXX.XXX/XXXX-XX). Partial input is masked as far as it goes.
func FormatTaxIDNumber(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > 14 {
		digits = digits[:14]
	}
	if len(digits) <= 11 {
		return applyMask(digits, "XXX.XXX.XXX-XX")
	}
	return applyMask(digits, "XX.XXX.XXX/XXXX-XX")
}

// applyMask fills X placeholders left to right, stopping at the last
// consumed digit so partial input never ends in a separator.
func applyMask(digits, mask string) string {
	var b strings.Builder
	pos := 0
	for i := 0; i < len(mask) && pos < len(digits); i++ {
		if mask[i] == 'X' {
			b.WriteByte(digits[pos])
			pos++
		} else {
			b.WriteByte(mask[i])
		}
	}
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount parses a locale-formatted amount ("1.234,56") into a
// decimal. Grouping dots are dropped and the comma becomes the decimal
// point. Blank or unparseable input yields zero, matching how the forms
// treat missing operands.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
