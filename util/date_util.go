package util

import (
	"fmt"
	"strings"
	"time"
)

var (
	expiryDateLayout = "02-Jan-2006"
	expiryCodeLayout = "02Jan06"
)

// FormatExpiryDate renders an expiry as DD-MMM-YYYY for responses.
func FormatExpiryDate(t time.Time) string {
	return t.Format(expiryDateLayout)
}

// ParseExpiryCode validates a DDMMMYY expiry code like 28OCT25 and
// returns it normalized to upper case.
func ParseExpiryCode(code string) (string, error) {
	clean := strings.ToUpper(strings.TrimSpace(code))
	if len(clean) != 7 {
		return "", fmt.Errorf("expiry code must be DDMMMYY, got %q", code)
	}

	// time.Parse wants the month token in mixed case (02Jan06).
	mixed := clean[:3] + strings.ToLower(clean[3:5]) + clean[5:]
	if _, err := time.Parse(expiryCodeLayout, mixed); err != nil {
		return "", fmt.Errorf("invalid expiry code %q: %w", code, err)
	}
	return clean, nil
}
