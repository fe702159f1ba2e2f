package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fwwkol/openalgo/config"
	"github.com/fwwkol/openalgo/customerrors"
	"github.com/fwwkol/openalgo/model"
)

func newTestOptionSymbolService(quotes QuotesService, repo *fakeSymbolRepo) OptionSymbolService {
	cfgManager := config.NewConfigManager(config.DefaultMarketTables())
	return NewOptionSymbolService(quotes, repo, cfgManager)
}

func TestResolveItmCall(t *testing.T) {
	quotes := &fakeQuotes{ltps: map[string]float64{"NIFTY": 23587.5}}
	repo := &fakeSymbolRepo{records: map[string]*model.SymToken{
		"NFO_NIFTY28OCT2623500CE": {
			Symbol:   "NIFTY28OCT2623500CE",
			Exchange: "NFO",
			LotSize:  25,
			TickSize: 0.05,
		},
	}}
	svc := newTestOptionSymbolService(quotes, repo)

	result, err := svc.Resolve(context.Background(), &model.OptionSymbolRequest{
		Underlying:     "NIFTY28OCT26FUT",
		Exchange:       "NFO",
		StrikeInterval: 50,
		Offset:         "ITM2",
		OptionType:     "CE",
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// LTP 23587.5 rounds to ATM 23600; ITM2 on a call walks two
	// intervals down.
	if result.Symbol != "NIFTY28OCT2623500CE" {
		t.Fatalf("want NIFTY28OCT2623500CE, got %s", result.Symbol)
	}
	if result.Exchange != "NFO" || result.LotSize != 25 || result.TickSize != 0.05 {
		t.Fatalf("symbol master fields not carried over: %+v", result)
	}
	if result.UnderlyingLtp != 23587.5 {
		t.Fatalf("underlying ltp not attached: %+v", result)
	}
}

func TestResolveExpiryFromRequest(t *testing.T) {
	quotes := &fakeQuotes{ltps: map[string]float64{"BANKNIFTY": 51210}}
	repo := &fakeSymbolRepo{records: map[string]*model.SymToken{
		"NFO_BANKNIFTY30DEC2651200PE": {Symbol: "BANKNIFTY30DEC2651200PE", Exchange: "NFO"},
	}}
	svc := newTestOptionSymbolService(quotes, repo)

	result, err := svc.Resolve(context.Background(), &model.OptionSymbolRequest{
		Underlying:     "BANKNIFTY",
		Exchange:       "NFO",
		ExpiryDate:     "30dec26",
		StrikeInterval: 100,
		Offset:         "ATM",
		OptionType:     "PE",
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Symbol != "BANKNIFTY30DEC2651200PE" {
		t.Fatalf("unexpected symbol: %s", result.Symbol)
	}
}

func TestResolveMissingExpiry(t *testing.T) {
	svc := newTestOptionSymbolService(&fakeQuotes{}, &fakeSymbolRepo{})

	_, err := svc.Resolve(context.Background(), &model.OptionSymbolRequest{
		Underlying:     "NIFTY",
		Exchange:       "NFO",
		StrikeInterval: 50,
		Offset:         "ATM",
		OptionType:     "CE",
	})
	if !errors.Is(err, customerrors.ErrExpiryRequired) {
		t.Fatalf("want ErrExpiryRequired, got %v", err)
	}
}

func TestResolveMissingLtp(t *testing.T) {
	svc := newTestOptionSymbolService(&fakeQuotes{}, &fakeSymbolRepo{})

	_, err := svc.Resolve(context.Background(), &model.OptionSymbolRequest{
		Underlying:     "NIFTY28OCT26FUT",
		Exchange:       "NFO",
		StrikeInterval: 50,
		Offset:         "ATM",
		OptionType:     "CE",
	})
	if !errors.Is(err, customerrors.ErrLtpNotAvailable) {
		t.Fatalf("want ErrLtpNotAvailable, got %v", err)
	}
}

func TestResolveUnlistedContract(t *testing.T) {
	quotes := &fakeQuotes{ltps: map[string]float64{"NIFTY": 23600}}
	svc := newTestOptionSymbolService(quotes, &fakeSymbolRepo{})

	_, err := svc.Resolve(context.Background(), &model.OptionSymbolRequest{
		Underlying:     "NIFTY28OCT26FUT",
		Exchange:       "NFO",
		StrikeInterval: 50,
		Offset:         "ATM",
		OptionType:     "CE",
	})
	if !errors.Is(err, customerrors.ErrSymbolNotFound) {
		t.Fatalf("want ErrSymbolNotFound, got %v", err)
	}
}

func TestOffsetStrikeDirections(t *testing.T) {
	cases := []struct {
		offset     string
		optionType string
		want       float64
	}{
		{"ATM", "CE", 23600},
		{"atm", "PE", 23600},
		{"ITM1", "CE", 23550},
		{"ITM3", "CE", 23450},
		{"OTM1", "CE", 23650},
		{"ITM1", "PE", 23650},
		{"OTM1", "PE", 23550},
		{"itm2", "PE", 23700},
		{"OTM50", "CE", 26100},
	}

	for _, tc := range cases {
		got, err := offsetStrike(23600, tc.offset, 50, tc.optionType)
		if err != nil {
			t.Errorf("%s %s: unexpected error %v", tc.offset, tc.optionType, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s %s: want %f, got %f", tc.offset, tc.optionType, tc.want, got)
		}
	}
}

func TestOffsetStrikeRejectsBadOffsets(t *testing.T) {
	for _, offset := range []string{"ITM0", "OTM51", "ITM", "FOO3", ""} {
		if _, err := offsetStrike(23600, offset, 50, "CE"); !errors.Is(err, customerrors.ErrInvalidOffset) {
			t.Errorf("%q: want ErrInvalidOffset, got %v", offset, err)
		}
	}
}

func TestAtmStrikeRounding(t *testing.T) {
	cases := []struct {
		ltp      float64
		interval int
		want     float64
	}{
		{23587.5, 50, 23600},
		{23575, 50, 23600},
		{23574.5, 50, 23550},
		{83.62, 1, 84},
		{51210, 100, 51200},
	}
	for _, tc := range cases {
		if got := atmStrike(tc.ltp, tc.interval); got != tc.want {
			t.Errorf("atmStrike(%f, %d): want %f, got %f", tc.ltp, tc.interval, tc.want, got)
		}
	}
}

func TestConstructOptionSymbolStrikes(t *testing.T) {
	if got := constructOptionSymbol("NIFTY", "28OCT26", 23500, "CE"); got != "NIFTY28OCT2623500CE" {
		t.Fatalf("whole strike: got %s", got)
	}
	if got := constructOptionSymbol("VEDL", "25APR26", 292.5, "PE"); got != "VEDL25APR26292.5PE" {
		t.Fatalf("fractional strike: got %s", got)
	}
}

func TestParseUnderlying(t *testing.T) {
	base, expiry := parseUnderlying("NIFTY28OCT26FUT")
	if base != "NIFTY" || expiry != "28OCT26" {
		t.Fatalf("futures underlying: got %s/%s", base, expiry)
	}

	base, expiry = parseUnderlying("reliance31jan26")
	if base != "RELIANCE" || expiry != "31JAN26" {
		t.Fatalf("case folding: got %s/%s", base, expiry)
	}

	base, expiry = parseUnderlying("NIFTY")
	if base != "NIFTY" || expiry != "" {
		t.Fatalf("bare underlying: got %s/%s", base, expiry)
	}
}

func TestQuoteExchangeMapping(t *testing.T) {
	tables := config.DefaultMarketTables()

	cases := []struct {
		base     string
		exchange string
		want     string
	}{
		{"NIFTY", "NFO", "NSE_INDEX"},
		{"SENSEX", "BFO", "BSE_INDEX"},
		{"RELIANCE", "NFO", "NSE"},
		{"GOLD", "MCX", "MCX"},
		{"USDINR", "CDS", "CDS"},
	}
	for _, tc := range cases {
		if got := quoteExchangeFor(tc.base, tc.exchange, tables); got != tc.want {
			t.Errorf("quoteExchangeFor(%s, %s): want %s, got %s", tc.base, tc.exchange, tc.want, got)
		}
	}

	for quoteEx, want := range map[string]string{
		"NSE_INDEX": "NFO",
		"BSE":       "BFO",
		"MCX":       "MCX",
		"CDS":       "CDS",
	} {
		if got := optionsExchangeFor(quoteEx); got != want {
			t.Errorf("optionsExchangeFor(%s): want %s, got %s", quoteEx, want, got)
		}
	}
}
