package util

import (
	"testing"
	"time"
)

func TestFormatExpiryDate(t *testing.T) {
	d := time.Date(2026, time.November, 28, 15, 30, 0, 0, time.Local)
	if got := FormatExpiryDate(d); got != "28-Nov-2026" {
		t.Fatalf("want 28-Nov-2026, got %s", got)
	}
}

func TestParseExpiryCode(t *testing.T) {
	for input, want := range map[string]string{
		"28OCT26":   "28OCT26",
		"28oct26":   "28OCT26",
		" 05JAN27 ": "05JAN27",
	} {
		got, err := ParseExpiryCode(input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("%q: want %s, got %s", input, want, got)
		}
	}

	for _, input := range []string{"", "28OCT", "32OCT26", "28XXX26", "2OCT26", "28OCT2026"} {
		if _, err := ParseExpiryCode(input); err == nil {
			t.Errorf("%q: want error", input)
		}
	}
}
