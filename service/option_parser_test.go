package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fwwkol/openalgo/config"
	"github.com/fwwkol/openalgo/customerrors"
	"github.com/fwwkol/openalgo/model"
)

func TestParseOptionSymbolIndexCall(t *testing.T) {
	parsed, err := ParseOptionSymbol("NIFTY28NOV2424000CE", "NFO", "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if parsed.Underlying != "NIFTY" {
		t.Fatalf("underlying: want NIFTY, got %s", parsed.Underlying)
	}
	want := time.Date(2024, time.November, 28, 15, 30, 0, 0, time.Local)
	if !parsed.Expiry.Equal(want) {
		t.Fatalf("expiry: want %v, got %v", want, parsed.Expiry)
	}
	if parsed.Strike != 24000.0 {
		t.Fatalf("strike: want 24000, got %f", parsed.Strike)
	}
	if parsed.Side != model.SideCall {
		t.Fatalf("side: want CE, got %s", parsed.Side)
	}
}

func TestParseOptionSymbolDecimalStrike(t *testing.T) {
	parsed, err := ParseOptionSymbol("USDINR28NOV2483.50CE", "CDS", "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Strike != 83.5 {
		t.Fatalf("strike: want 83.5, got %f", parsed.Strike)
	}
	// CDS default clock is 12:30.
	if parsed.Expiry.Hour() != 12 || parsed.Expiry.Minute() != 30 {
		t.Fatalf("expiry clock: want 12:30, got %02d:%02d", parsed.Expiry.Hour(), parsed.Expiry.Minute())
	}
}

func TestParseOptionSymbolExchangeDefaults(t *testing.T) {
	cases := []struct {
		exchange   string
		wantHour   int
		wantMinute int
	}{
		{"MCX", 23, 30},
		{"CDS", 12, 30},
		{"NFO", 15, 30},
		{"BFO", 15, 30},
	}

	for _, tc := range cases {
		parsed, err := ParseOptionSymbol("GOLD28NOV2472000CE", tc.exchange, "")
		if err != nil {
			t.Fatalf("%s: parse failed: %v", tc.exchange, err)
		}
		if parsed.Expiry.Hour() != tc.wantHour || parsed.Expiry.Minute() != tc.wantMinute {
			t.Fatalf("%s: want %02d:%02d, got %02d:%02d",
				tc.exchange, tc.wantHour, tc.wantMinute, parsed.Expiry.Hour(), parsed.Expiry.Minute())
		}
	}
}

func TestParseOptionSymbolCustomExpiryTime(t *testing.T) {
	parsed, err := ParseOptionSymbol("GOLD28NOV2472000CE", "MCX", "19:00")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Expiry.Hour() != 19 || parsed.Expiry.Minute() != 0 {
		t.Fatalf("override ignored: got %02d:%02d", parsed.Expiry.Hour(), parsed.Expiry.Minute())
	}
}

func TestParseOptionSymbolInvalidExpiryTime(t *testing.T) {
	for _, bad := range []string{"25:61", "12", "ab:cd", "24:00", "12:60"} {
		_, err := ParseOptionSymbol("NIFTY28NOV2424000CE", "NFO", bad)
		if !errors.Is(err, customerrors.ErrInvalidExpiryTime) {
			t.Fatalf("expiry_time %q: want ErrInvalidExpiryTime, got %v", bad, err)
		}
	}
}

func TestParseOptionSymbolInvalidTicker(t *testing.T) {
	for _, bad := range []string{"XYZ", "NIFTY28NOV24CE", "28NOV2424000CE", "NIFTY32NOV2424000CE", ""} {
		_, err := ParseOptionSymbol(bad, "NFO", "")
		if !errors.Is(err, customerrors.ErrInvalidOptionSymbol) {
			t.Fatalf("ticker %q: want ErrInvalidOptionSymbol, got %v", bad, err)
		}
	}
}

func TestUnderlyingExchange(t *testing.T) {
	tables := config.DefaultMarketTables()

	cases := []struct {
		base     string
		exchange string
		want     string
	}{
		{"NIFTY", "NFO", "NSE_INDEX"},
		{"BANKNIFTY", "NFO", "NSE_INDEX"},
		{"SENSEX", "BFO", "BSE_INDEX"},
		{"USDINR", "CDS", "CDS"},
		{"GOLD", "MCX", "MCX"},
		{"RELIANCE", "NFO", "NSE"},
		// The option's own exchange forces the segment even for symbols
		// missing from the curated sets.
		{"UNLISTEDCCY", "CDS", "CDS"},
		{"UNLISTEDCOMM", "MCX", "MCX"},
	}

	for _, tc := range cases {
		if got := UnderlyingExchange(tc.base, tc.exchange, tables); got != tc.want {
			t.Fatalf("%s/%s: want %s, got %s", tc.base, tc.exchange, tc.want, got)
		}
	}
}
