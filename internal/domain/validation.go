package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	// TaxIDLength is the number of digits of a contractor RUC
	TaxIDLength = 11
	// CurrencyCodeLength is the number of letters of an ISO currency code
	CurrencyCodeLength = 3
)

// ValidateTaxID checks that a contractor tax id is exactly 11 digits
func ValidateTaxID(taxID string) error {
	if taxID == "" {
		return NewValidationError("ruc", "is required")
	}
	for _, r := range taxID {
		if r < '0' || r > '9' {
			return NewValidationError("ruc", "must contain only digits")
		}
	}
	if len(taxID) != TaxIDLength {
		return NewValidationError("ruc", fmt.Sprintf("must have exactly %d digits", TaxIDLength))
	}
	return nil
}

// NormalizeCurrencyCode upper-cases a currency code and checks it is exactly 3 letters
func NormalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != CurrencyCodeLength {
		return "", NewValidationError("code", fmt.Sprintf("must have exactly %d letters", CurrencyCodeLength))
	}
	for _, r := range code {
		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			return "", NewValidationError("code", "must contain only letters")
		}
	}
	return code, nil
}

// ParseDate parses a YYYY-MM-DD calendar date into UTC midnight
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// TruncateDate drops the time of day, keeping the calendar date of t in its own location
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats a calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
