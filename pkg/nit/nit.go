// Package nit validates Colombian tax registration numbers (NIT) using the
// DIAN weighted modulo-11 check digit.
package nit

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// BaseLength is the number of digits in a canonical NIT base.
const BaseLength = 9

var (
	ErrEmptyInput         = errors.New("nit: input is empty")
	ErrInvalidCharacters  = errors.New("nit: only digits and separators (. - space) are allowed")
	ErrMissingCheckDigit  = errors.New("nit: check digit is required (9 base digits plus DV)")
	ErrCheckDigitMismatch = errors.New("nit: check digit does not match")
	ErrInvalidLength      = errors.New("nit: must be 9 base digits plus 1 check digit")
	ErrInvalidBase        = errors.New("nit: base must be exactly 9 digits")
)

// weights are applied right-to-left, the least significant digit gets 3.
var weights = [...]int{3, 7, 13, 17, 19, 23, 29, 37, 41, 43, 47, 53, 59, 67, 71}

// ValidateAndNormalize checks raw against the check digit algorithm and
// returns the canonical 9-digit base without separators.
func ValidateAndNormalize(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", ErrEmptyInput
	}

	var digits strings.Builder
	for _, r := range candidate {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '.' || r == '-' || unicode.IsSpace(r):
		default:
			return "", ErrInvalidCharacters
		}
	}

	d := digits.String()
	switch len(d) {
	case BaseLength + 1:
		base, dv := d[:BaseLength], int(d[BaseLength]-'0')
		if dv != checkDigit(base) {
			return "", ErrCheckDigitMismatch
		}
		return base, nil
	case BaseLength:
		return "", ErrMissingCheckDigit
	default:
		return "", ErrInvalidLength
	}
}

// ComputeCheckDigit returns the DV for a 9-digit base.
func ComputeCheckDigit(base string) (int, error) {
	if len(base) != BaseLength || !allDigits(base) {
		return 0, ErrInvalidBase
	}
	return checkDigit(base), nil
}

// Split validates raw and returns the canonical base along with its DV.
func Split(raw string) (string, int, error) {
	base, err := ValidateAndNormalize(raw)
	if err != nil {
		return "", 0, err
	}
	return base, checkDigit(base), nil
}

// Format renders base and dv either as "BBBBBBBBB-D" or "BBBBBBBBBD".
func Format(base string, dv int, withDash bool) string {
	if withDash {
		return fmt.Sprintf("%s-%d", base, dv)
	}
	return fmt.Sprintf("%s%d", base, dv)
}

// Generate returns a random 9-digit base that does not start with zero.
func Generate(rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(BaseLength)
	b.WriteByte(byte('1' + rng.Intn(9)))
	for i := 1; i < BaseLength; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}

// checkDigit assumes base holds only ASCII digits and is no longer than the
// weight table.
func checkDigit(base string) int {
	total := 0
	for i := 0; i < len(base); i++ {
		digit := int(base[len(base)-1-i] - '0')
		total += digit * weights[i]
	}
	remainder := total % 11
	if remainder == 0 || remainder == 1 {
		return remainder
	}
	return 11 - remainder
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
