// Package taxid validates the check digits of national tax
// identification numbers: the 11-digit person registry number and the
// 14-digit company registry number, both built on modulus-11 schemes.
package taxid

import "strings"

const (
	// PersonIDLength is the digit count of a person registry number
	PersonIDLength = 11
	// CompanyIDLength is the digit count of a company registry number
	CompanyIDLength = 14
)

// Clean strips everything but decimal digits from the input
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate dispatches on the cleaned length: 11 digits validate as a
// person ID, 14 as a company ID, anything else is invalid.
func Validate(s string) bool {
	switch digits := Clean(s); len(digits) {
	case PersonIDLength:
		return validatePersonDigits(digits)
	case CompanyIDLength:
		return validateCompanyDigits(digits)
	default:
		return false
	}
}

// ValidatePersonID verifies the two check digits of an 11-digit person
// registry number. Sequences of one repeated digit pass the arithmetic
// but are reserved as invalid.
func ValidatePersonID(s string) bool {
	digits := Clean(s)
	if len(digits) != PersonIDLength {
		return false
	}
	return validatePersonDigits(digits)
}

// ValidateCompanyID verifies the two check digits of a 14-digit company
// registry number.
func ValidateCompanyID(s string) bool {
	digits := Clean(s)
	if len(digits) != CompanyIDLength {
		return false
	}
	return validateCompanyDigits(digits)
}

func validatePersonDigits(digits string) bool {
	if allSame(digits) {
		return false
	}
	// First check digit: weights 10 down to 2 over the 9 leading digits.
	// Second: weights 11 down to 2 over the 10 leading digits.
	first := personCheckDigit(digits[:9], 10)
	second := personCheckDigit(digits[:10], 11)
	return int(digits[9]-'0') == first && int(digits[10]-'0') == second
}

func personCheckDigit(prefix string, startWeight int) int {
	sum := 0
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (startWeight - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func validateCompanyDigits(digits string) bool {
	if allSame(digits) {
		return false
	}
	first := companyCheckDigit(digits[:12])
	second := companyCheckDigit(digits[:13])
	return int(digits[12]-'0') == first && int(digits[13]-'0') == second
}

// companyCheckDigit applies the 2..9 weight cycle right-to-left over the
// given prefix.
func companyCheckDigit(prefix string) int {
	weight := 2
	sum := 0
	for i := len(prefix) - 1; i >= 0; i-- {
		sum += int(prefix[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
