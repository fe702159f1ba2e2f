// Package pricing supplies the option pricing backend for the Greeks
// service. The backend is an injected capability: constructing a service
// without one is a configuration error, there is no global availability
// flag probed at call time.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/fwwkol/openalgo/model"
)

// ErrNoConvergence is returned when the implied volatility solver cannot
// reproduce the observed option price.
var ErrNoConvergence = errors.New("implied volatility did not converge")

// Model prices European options. Spot, strike and option price share
// units; rate and sigma are decimal fractions (0.065 for 6.5%); days is
// calendar days to expiry, fractions preserved.
type Model interface {
	Price(side model.OptionSide, spot, strike, rate, days, sigma float64) float64
	Greeks(side model.OptionSide, spot, strike, rate, days, sigma float64) model.Greeks
	ImpliedVolatility(side model.OptionSide, spot, strike, rate, days, optionPrice float64) (float64, error)
}

const (
	sqrt2Pi     = 2.5066282746310002
	daysPerYear = 365.0

	ivInitialGuess = 0.20
	ivMaxSigma     = 5.0
	ivMinSigma     = 1e-4
	ivTolerance    = 1e-6
	ivMaxIter      = 100
)

// BlackScholes implements Model with the standard Black-Scholes formulas.
// Scaling follows the conventions of the rest of the platform: vega per
// 1% volatility move, theta per calendar day, rho per 1% rate move.
type BlackScholes struct{}

func NewBlackScholes() *BlackScholes {
	return &BlackScholes{}
}

func (BlackScholes) Price(side model.OptionSide, spot, strike, rate, days, sigma float64) float64 {
	t := days / daysPerYear
	if t <= 0 || sigma <= 0 {
		// Intrinsic fallback for degenerate inputs.
		if side == model.SideCall {
			return math.Max(0, spot-strike)
		}
		return math.Max(0, strike-spot)
	}

	d1 := (math.Log(spot/strike) + (rate+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)

	if side == model.SideCall {
		return spot*normCDF(d1) - strike*math.Exp(-rate*t)*normCDF(d2)
	}
	return strike*math.Exp(-rate*t)*normCDF(-d2) - spot*normCDF(-d1)
}

func (BlackScholes) Greeks(side model.OptionSide, spot, strike, rate, days, sigma float64) model.Greeks {
	t := days / daysPerYear
	if t <= 0 || sigma <= 0 {
		return model.Greeks{}
	}

	sqrtT := math.Sqrt(t)
	d1 := (math.Log(spot/strike) + (rate+0.5*sigma*sigma)*t) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT
	discount := math.Exp(-rate * t)

	g := model.Greeks{
		Gamma: normPDF(d1) / (spot * sigma * sqrtT),
		Vega:  spot * normPDF(d1) * sqrtT / 100,
	}

	decay := -spot * normPDF(d1) * sigma / (2 * sqrtT)
	if side == model.SideCall {
		g.Delta = normCDF(d1)
		g.Theta = (decay - rate*strike*discount*normCDF(d2)) / daysPerYear
		g.Rho = strike * t * discount * normCDF(d2) / 100
	} else {
		g.Delta = normCDF(d1) - 1
		g.Theta = (decay + rate*strike*discount*normCDF(-d2)) / daysPerYear
		g.Rho = -strike * t * discount * normCDF(-d2) / 100
	}
	return g
}

// ImpliedVolatility inverts the pricing formula for the observed option
// price. Newton-Raphson with guardrails, falling back to bisection when
// vega collapses (deep ITM/OTM or near expiry).
func (bs BlackScholes) ImpliedVolatility(side model.OptionSide, spot, strike, rate, days, optionPrice float64) (float64, error) {
	t := days / daysPerYear
	if t <= 0 {
		return 0, fmt.Errorf("invalid time to expiry: %f days", days)
	}

	sigma := ivInitialGuess
	for i := 0; i < ivMaxIter; i++ {
		diff := bs.Price(side, spot, strike, rate, days, sigma) - optionPrice
		if math.Abs(diff) < ivTolerance {
			return sigma, nil
		}

		vega := rawVega(spot, strike, rate, t, sigma)
		if vega < 1e-8 {
			break
		}

		sigma -= diff / vega
		if sigma <= 0 {
			sigma = ivMinSigma
		}
		if sigma > ivMaxSigma {
			sigma = ivMaxSigma
		}
	}

	return bs.bisectVol(side, spot, strike, rate, days, optionPrice)
}

func (bs BlackScholes) bisectVol(side model.OptionSide, spot, strike, rate, days, optionPrice float64) (float64, error) {
	lo, hi := ivMinSigma, ivMaxSigma
	if bs.Price(side, spot, strike, rate, days, lo) > optionPrice ||
		bs.Price(side, spot, strike, rate, days, hi) < optionPrice {
		return 0, ErrNoConvergence
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		diff := bs.Price(side, spot, strike, rate, days, mid) - optionPrice
		if math.Abs(diff) < ivTolerance {
			return mid, nil
		}
		if diff > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2, nil
}

// rawVega is the unscaled dPrice/dSigma used by the Newton step.
func rawVega(spot, strike, rate, t, sigma float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0
	}
	d1 := (math.Log(spot/strike) + (rate+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	return spot * normPDF(d1) * math.Sqrt(t)
}

func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
