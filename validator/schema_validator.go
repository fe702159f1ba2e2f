package validator

import (
	"github.com/fwwkol/openalgo/model"
	"github.com/fwwkol/openalgo/util"

	"github.com/Oudwins/zog"
)

var optionsExchanges = []string{"NFO", "BFO", "CDS", "MCX"}

var QuoteShape = zog.Shape{
	"Symbol":   zog.String().Required(),
	"Exchange": zog.String().Required(),
}

var GreeksShape = zog.Shape{
	"Symbol":   zog.String().Required(),
	"Exchange": zog.String().Required().OneOf(optionsExchanges),
}

var OptionSymbolShape = zog.Shape{
	"Underlying":     zog.String().Required(),
	"Exchange":       zog.String().Required(),
	"StrikeInterval": zog.Int().Required().GT(0),
	"Offset":         zog.String().Required(),
	"OptionType":     zog.String().Required(),
}

// OffsetTest enforces the ATM/ITM1-50/OTM1-50 vocabulary and the CE/PE
// side codes; zog's string schema has no pattern constraint, so these
// live in a test func.
func OffsetTest(dataPtr any, ctx zog.Ctx) bool {
	req, ok := dataPtr.(*model.OptionSymbolRequest)
	if !ok {
		return true
	}

	valid := true
	if _, _, ok := util.ParseOffset(req.Offset); !ok {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "offset",
			Message: "Offset must be ATM, ITM1-ITM50 or OTM1-OTM50",
		})
		valid = false
	}

	side := req.OptionType
	if side != "CE" && side != "PE" && side != "ce" && side != "pe" {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "option_type",
			Message: "Option type must be CE or PE",
		})
		valid = false
	}
	return valid
}

// InterestRateTest bounds the optional annualized rate to 0-100%.
func InterestRateTest(dataPtr any, ctx zog.Ctx) bool {
	req, ok := dataPtr.(*model.GreeksRequest)
	if !ok || req.InterestRate == nil {
		return true
	}

	if *req.InterestRate < 0 || *req.InterestRate > 100 {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "interest_rate",
			Message: "Interest rate must be between 0 and 100",
		})
		return false
	}
	return true
}
