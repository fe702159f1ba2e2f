package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwwkol/openalgo/config"
	"github.com/fwwkol/openalgo/customerrors"
	"github.com/fwwkol/openalgo/model"
	"github.com/fwwkol/openalgo/repository"
	"github.com/fwwkol/openalgo/util"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// Underlyings may embed an expiry: NIFTY28OCT25FUT, RELIANCE31JAN25FUT.
var underlyingPattern = regexp.MustCompile(`^([A-Z]+)(\d{2}[A-Z]{3}\d{2})(?:FUT)?$`)

// OptionSymbolService resolves a strike offset from ATM into a concrete
// listed contract.
type OptionSymbolService interface {
	Resolve(ctx context.Context, req *model.OptionSymbolRequest) (*model.OptionSymbolResult, error)
}

type OptionSymbolServiceImpl struct {
	quotes QuotesService
	repo   repository.SymbolRepository
	cfg    *config.ConfigManager
}

func NewOptionSymbolService(quotes QuotesService, repo repository.SymbolRepository, cfg *config.ConfigManager) OptionSymbolService {
	return &OptionSymbolServiceImpl{quotes: quotes, repo: repo, cfg: cfg}
}

func (s *OptionSymbolServiceImpl) Resolve(ctx context.Context, req *model.OptionSymbolRequest) (*model.OptionSymbolResult, error) {
	base, embeddedExpiry := parseUnderlying(req.Underlying)

	expiryCode := embeddedExpiry
	if expiryCode == "" {
		expiryCode = req.ExpiryDate
	}
	if expiryCode == "" {
		return nil, customerrors.ErrExpiryRequired
	}
	expiryCode, err := util.ParseExpiryCode(expiryCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrInvalidOptionSymbol, err)
	}

	quoteExchange := quoteExchangeFor(base, req.Exchange, s.cfg.GetTables())

	// With an embedded expiry the quote lookup uses the bare base symbol;
	// otherwise the underlying is passed through as given.
	quoteSymbol := req.Underlying
	if embeddedExpiry != "" {
		quoteSymbol = base
	}

	quote := s.quotes.GetQuote(ctx, quoteSymbol, quoteExchange)
	if quote.Ltp == 0 {
		return nil, fmt.Errorf("underlying %s on %s: %w", quoteSymbol, quoteExchange, customerrors.ErrLtpNotAvailable)
	}

	atm := atmStrike(quote.Ltp, req.StrikeInterval)
	target, err := offsetStrike(atm, req.Offset, req.StrikeInterval, strings.ToUpper(req.OptionType))
	if err != nil {
		return nil, err
	}

	optionSymbol := constructOptionSymbol(base, expiryCode, target, strings.ToUpper(req.OptionType))
	optionsExchange := optionsExchangeFor(quoteExchange)

	record, err := s.repo.FindSymbol(ctx, optionSymbol, optionsExchange)
	if err != nil {
		return nil, fmt.Errorf("option %s on %s: %w", optionSymbol, optionsExchange, err)
	}

	var result model.OptionSymbolResult
	if err := copier.Copy(&result, record); err != nil {
		return nil, fmt.Errorf("failed to map symbol record: %w", err)
	}
	result.UnderlyingLtp = quote.Ltp

	log.Info().
		Str("underlying", req.Underlying).
		Str("offset", req.Offset).
		Float64("atm", atm).
		Str("symbol", result.Symbol).
		Msg("option symbol resolved")

	return &result, nil
}

func parseUnderlying(underlying string) (base, expiryCode string) {
	upper := strings.ToUpper(underlying)
	if match := underlyingPattern.FindStringSubmatch(upper); match != nil {
		return match[1], match[2]
	}
	return upper, ""
}

// atmStrike rounds the LTP to the nearest strike interval.
func atmStrike(ltp float64, interval int) float64 {
	return math.Round(ltp/float64(interval)) * float64(interval)
}

// offsetStrike walks N intervals from ATM. ITM means a lower strike for
// calls and a higher one for puts; OTM is the mirror.
func offsetStrike(atm float64, offset string, interval int, optionType string) (float64, error) {
	direction, steps, ok := util.ParseOffset(offset)
	if !ok {
		return 0, customerrors.ErrInvalidOffset
	}
	if direction == "ATM" {
		return atm, nil
	}

	distance := float64(steps * interval)

	// For calls ITM sits below ATM; puts mirror it.
	lowerStrike := direction == "ITM"
	if optionType == "PE" {
		lowerStrike = !lowerStrike
	}
	if lowerStrike {
		return atm - distance, nil
	}
	return atm + distance, nil
}

// constructOptionSymbol renders BASE+DDMMMYY+STRIKE+SIDE, dropping the
// trailing .0 on whole strikes (NIFTY28OCT2523500CE, VEDL25APR24292.5CE).
func constructOptionSymbol(base, expiryCode string, strike float64, optionType string) string {
	var strikeStr string
	if strike == math.Trunc(strike) {
		strikeStr = strconv.FormatInt(int64(strike), 10)
	} else {
		strikeStr = strconv.FormatFloat(strike, 'f', -1, 64)
	}
	return base + expiryCode + strikeStr + optionType
}

// quoteExchangeFor maps an options exchange back to the venue the
// underlying's price quotes on.
func quoteExchangeFor(base, exchange string, tables *config.MarketTables) string {
	upper := strings.ToUpper(exchange)
	if upper != "NFO" && upper != "BFO" {
		return upper
	}

	switch {
	case tables.IsNseIndex(base):
		return "NSE_INDEX"
	case tables.IsBseIndex(base):
		return "BSE_INDEX"
	case upper == "NFO":
		return "NSE"
	default:
		return "BSE"
	}
}

func optionsExchangeFor(quoteExchange string) string {
	switch strings.ToUpper(quoteExchange) {
	case "NSE", "NSE_INDEX":
		return "NFO"
	case "BSE", "BSE_INDEX":
		return "BFO"
	case "MCX":
		return "MCX"
	case "CDS":
		return "CDS"
	default:
		log.Warn().Str("exchange", quoteExchange).Msg("unknown exchange mapping, defaulting to NFO")
		return "NFO"
	}
}
