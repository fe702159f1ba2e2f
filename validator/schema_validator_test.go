package validator

import (
	"testing"

	"github.com/fwwkol/openalgo/model"

	"github.com/Oudwins/zog"
)

func TestOptionSymbolValidation(t *testing.T) {
	schema := zog.Struct(OptionSymbolShape).TestFunc(OffsetTest)

	good := model.OptionSymbolRequest{
		Underlying:     "NIFTY28OCT26FUT",
		Exchange:       "NFO",
		StrikeInterval: 50,
		Offset:         "itm2",
		OptionType:     "CE",
	}
	if err := schema.Validate(&good); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := good
	bad.Offset = "ITM51"
	if err := schema.Validate(&bad); err == nil {
		t.Fatal("offset outside ITM1-50 accepted")
	}

	bad = good
	bad.OptionType = "XX"
	if err := schema.Validate(&bad); err == nil {
		t.Fatal("option type XX accepted")
	}

	bad = good
	bad.StrikeInterval = 0
	if err := schema.Validate(&bad); err == nil {
		t.Fatal("zero strike interval accepted")
	}
}

func TestGreeksValidation(t *testing.T) {
	schema := zog.Struct(GreeksShape).TestFunc(InterestRateTest)

	req := model.GreeksRequest{Symbol: "NIFTY28NOV2624000CE", Exchange: "NFO"}
	if err := schema.Validate(&req); err != nil {
		t.Fatalf("nil interest rate rejected: %v", err)
	}

	rate := 6.5
	req.InterestRate = &rate
	if err := schema.Validate(&req); err != nil {
		t.Fatalf("valid interest rate rejected: %v", err)
	}

	rate = 150
	if err := schema.Validate(&req); err == nil {
		t.Fatal("interest rate above 100 accepted")
	}

	req.InterestRate = nil
	req.Exchange = "NSE"
	if err := schema.Validate(&req); err == nil {
		t.Fatal("non-options exchange accepted")
	}
}
