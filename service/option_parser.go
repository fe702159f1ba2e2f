package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwwkol/openalgo/config"
	"github.com/fwwkol/openalgo/customerrors"
	"github.com/fwwkol/openalgo/model"
)

// Composite option tickers: SYMBOL + DD + MMM + YY + STRIKE + CE/PE.
// The strike may carry a decimal point (currency derivatives).
// Examples: NIFTY28NOV2424000CE, USDINR28NOV2483.50CE, GOLD28NOV2472000PE.
var optionSymbolPattern = regexp.MustCompile(`^([A-Z]+)(\d{2})([A-Z]{3})(\d{2})([\d.]+)(CE|PE)$`)

var monthIndex = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// ParseOptionSymbol decodes an option ticker into its parts. The expiry
// clock comes from customExpiryTime ("HH:MM") when given, otherwise from
// the exchange default: MCX 23:30, CDS 12:30, everything else 15:30.
// Pure function of its inputs.
func ParseOptionSymbol(symbol, exchange, customExpiryTime string) (*model.OptionSymbol, error) {
	match := optionSymbolPattern.FindStringSubmatch(strings.ToUpper(symbol))
	if match == nil {
		return nil, fmt.Errorf("%w: %s", customerrors.ErrInvalidOptionSymbol, symbol)
	}

	base, dayStr, monthStr, yearStr, strikeStr, sideStr := match[1], match[2], match[3], match[4], match[5], match[6]

	month, ok := monthIndex[monthStr]
	if !ok {
		return nil, fmt.Errorf("%w: unknown month %s in %s", customerrors.ErrInvalidOptionSymbol, monthStr, symbol)
	}

	strike, err := strconv.ParseFloat(strikeStr, 64)
	if err != nil || strike <= 0 {
		return nil, fmt.Errorf("%w: bad strike %s in %s", customerrors.ErrInvalidOptionSymbol, strikeStr, symbol)
	}

	hour, minute, err := resolveExpiryClock(customExpiryTime, exchange)
	if err != nil {
		return nil, err
	}

	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)

	expiry := time.Date(2000+year, month, day, hour, minute, 0, 0, time.Local)
	if expiry.Day() != day || expiry.Month() != month {
		return nil, fmt.Errorf("%w: impossible date in %s", customerrors.ErrInvalidOptionSymbol, symbol)
	}

	return &model.OptionSymbol{
		Underlying: base,
		Expiry:     expiry,
		Strike:     strike,
		Side:       model.OptionSide(sideStr),
	}, nil
}

func resolveExpiryClock(custom, exchange string) (int, int, error) {
	if custom != "" {
		parts := strings.Split(custom, ":")
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("%w: %q", customerrors.ErrInvalidExpiryTime, custom)
		}
		hour, errH := strconv.Atoi(parts[0])
		minute, errM := strconv.Atoi(parts[1])
		if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q", customerrors.ErrInvalidExpiryTime, custom)
		}
		return hour, minute, nil
	}

	switch exchange {
	case "MCX":
		return 23, 30, nil
	case "CDS":
		return 12, 30, nil
	default:
		return 15, 30, nil
	}
}

// UnderlyingExchange maps an option's underlying to the segment its spot
// price trades on. Membership comes from the curated tables; the
// option's own exchange forces CDS/MCX even for unlisted symbols.
// Pure function, no I/O.
func UnderlyingExchange(baseSymbol, optionsExchange string, tables *config.MarketTables) string {
	switch {
	case tables.IsNseIndex(baseSymbol):
		return "NSE_INDEX"
	case tables.IsBseIndex(baseSymbol):
		return "BSE_INDEX"
	case tables.IsCurrency(baseSymbol) || optionsExchange == "CDS":
		return "CDS"
	case tables.IsCommodity(baseSymbol) || optionsExchange == "MCX":
		return "MCX"
	default:
		return "NSE"
	}
}
