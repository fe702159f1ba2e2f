package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fwwkol/openalgo/config"
	"github.com/fwwkol/openalgo/customerrors"
	"github.com/fwwkol/openalgo/model"
	"github.com/fwwkol/openalgo/pricing"
	"github.com/fwwkol/openalgo/util"

	"github.com/rs/zerolog/log"
)

// Floor for the solver input, roughly fifteen minutes. Options closer to
// expiry than this are priced as if this much time remained.
const minDaysToExpiry = 0.01

// GreeksService computes implied volatility and Greeks for a listed
// option. Calculate fetches live prices through the quote service;
// CalculateFromPrices takes them from the caller.
type GreeksService interface {
	Calculate(ctx context.Context, req *model.GreeksRequest) (*model.GreeksResult, error)
	CalculateFromPrices(symbol, exchange string, spotPrice, optionPrice float64, interestRate *float64, expiryTime string) (*model.GreeksResult, error)
}

type GreeksServiceImpl struct {
	model  pricing.Model
	quotes QuotesService
	cfg    *config.ConfigManager
}

// NewGreeksService wires the pricing backend in as an explicit
// capability; a missing backend is a configuration error here, not a
// condition checked on every call.
func NewGreeksService(pricingModel pricing.Model, quotes QuotesService, cfg *config.ConfigManager) (GreeksService, error) {
	if pricingModel == nil {
		return nil, customerrors.ErrPricingUnavailable
	}
	return &GreeksServiceImpl{
		model:  pricingModel,
		quotes: quotes,
		cfg:    cfg,
	}, nil
}

// Calculate resolves spot and option prices and runs the pipeline.
// The underlying symbol/exchange overrides win over derivation from the
// option ticker.
func (s *GreeksServiceImpl) Calculate(ctx context.Context, req *model.GreeksRequest) (*model.GreeksResult, error) {
	parsed, err := ParseOptionSymbol(req.Symbol, req.Exchange, req.ExpiryTime)
	if err != nil {
		return nil, err
	}

	spotSymbol := parsed.Underlying
	if req.UnderlyingSymbol != "" {
		spotSymbol = req.UnderlyingSymbol
	}

	spotExchange := UnderlyingExchange(parsed.Underlying, req.Exchange, s.cfg.GetTables())
	if req.UnderlyingExchange != "" {
		spotExchange = req.UnderlyingExchange
	}

	spotQuote := s.quotes.GetQuote(ctx, spotSymbol, spotExchange)
	if spotQuote.Ltp == 0 {
		return nil, fmt.Errorf("underlying %s on %s: %w", spotSymbol, spotExchange, customerrors.ErrLtpNotAvailable)
	}

	optionQuote := s.quotes.GetQuote(ctx, req.Symbol, req.Exchange)
	if optionQuote.Ltp == 0 {
		return nil, fmt.Errorf("option %s on %s: %w", req.Symbol, req.Exchange, customerrors.ErrLtpNotAvailable)
	}

	return s.CalculateFromPrices(req.Symbol, req.Exchange, spotQuote.Ltp, optionQuote.Ltp, req.InterestRate, req.ExpiryTime)
}

// CalculateFromPrices runs the linear pipeline: parse, time to expiry,
// input validation, implied volatility, Greeks at the solved volatility,
// field-specific rounding.
func (s *GreeksServiceImpl) CalculateFromPrices(symbol, exchange string, spotPrice, optionPrice float64, interestRate *float64, expiryTime string) (*model.GreeksResult, error) {
	parsed, err := ParseOptionSymbol(symbol, exchange, expiryTime)
	if err != nil {
		return nil, err
	}

	daysToExpiry, err := timeToExpiry(parsed.Expiry, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w on %s", customerrors.ErrOptionExpired, util.FormatExpiryDate(parsed.Expiry))
	}

	if spotPrice <= 0 || optionPrice <= 0 || parsed.Strike <= 0 {
		return nil, customerrors.ErrNonPositiveInput
	}

	// Callers express the rate as an annualized percentage.
	ratePercent := s.cfg.GetTables().InterestRate(exchange)
	if interestRate != nil {
		ratePercent = *interestRate
	}
	rate := ratePercent / 100.0

	iv, err := s.model.ImpliedVolatility(parsed.Side, spotPrice, parsed.Strike, rate, daysToExpiry, optionPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate implied volatility: %w", err)
	}

	// Greeks at the solved volatility, never at an externally supplied one.
	greeks := s.model.Greeks(parsed.Side, spotPrice, parsed.Strike, rate, daysToExpiry, iv)

	log.Info().
		Str("symbol", symbol).
		Float64("iv", iv).
		Float64("days_to_expiry", daysToExpiry).
		Msg("greeks calculated")

	return &model.GreeksResult{
		Symbol:            symbol,
		Exchange:          exchange,
		Underlying:        parsed.Underlying,
		Strike:            util.RoundTo(parsed.Strike, 2),
		OptionType:        string(parsed.Side),
		ExpiryDate:        util.FormatExpiryDate(parsed.Expiry),
		DaysToExpiry:      util.RoundTo(daysToExpiry, 4),
		SpotPrice:         util.RoundTo(spotPrice, 2),
		OptionPrice:       util.RoundTo(optionPrice, 2),
		InterestRate:      util.RoundTo(ratePercent, 2),
		ImpliedVolatility: util.RoundTo(iv*100, 2),
		Greeks: model.Greeks{
			Delta: util.RoundTo(greeks.Delta, 4),
			Gamma: util.RoundTo(greeks.Gamma, 6),
			Theta: util.RoundTo(greeks.Theta, 4),
			Vega:  util.RoundTo(greeks.Vega, 4),
			Rho:   util.RoundTo(greeks.Rho, 6),
		},
	}, nil
}

// timeToExpiry returns fractional days until expiry, floored at
// minDaysToExpiry. An expiry in the past is an error, never a floored
// value silently fed to the solver.
func timeToExpiry(expiry, now time.Time) (float64, error) {
	if expiry.Before(now) {
		return 0, customerrors.ErrOptionExpired
	}

	days := expiry.Sub(now).Hours() / 24
	if days < minDaysToExpiry {
		days = minDaysToExpiry
	}
	return days, nil
}
