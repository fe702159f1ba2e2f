package model

import "time"

type OptionSide string

const (
	SideCall OptionSide = "CE"
	SidePut  OptionSide = "PE"
)

// OptionSymbol is the decoded form of a composite option ticker like
// NIFTY28NOV2424000CE. Expiry carries the session close time resolved
// from the exchange (or a caller override).
type OptionSymbol struct {
	Underlying string
	Expiry     time.Time
	Strike     float64
	Side       OptionSide
}

type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// GreeksResult is a per-request response value object, never persisted.
type GreeksResult struct {
	Symbol            string  `json:"symbol"`
	Exchange          string  `json:"exchange"`
	Underlying        string  `json:"underlying"`
	Strike            float64 `json:"strike"`
	OptionType        string  `json:"option_type"`
	ExpiryDate        string  `json:"expiry_date"`
	DaysToExpiry      float64 `json:"days_to_expiry"`
	SpotPrice         float64 `json:"spot_price"`
	OptionPrice       float64 `json:"option_price"`
	InterestRate      float64 `json:"interest_rate"`
	ImpliedVolatility float64 `json:"implied_volatility"`
	Greeks            Greeks  `json:"greeks"`
}

// OptionSymbolResult is the resolved contract for an ATM/ITM/OTM lookup.
type OptionSymbolResult struct {
	Symbol        string  `json:"symbol"`
	Exchange      string  `json:"exchange"`
	LotSize       int     `json:"lotsize"`
	TickSize      float64 `json:"tick_size"`
	UnderlyingLtp float64 `json:"underlying_ltp"`
}
