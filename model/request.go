package model

// QuotesRequest covers the quotes, depth and history endpoints.
type QuotesRequest struct {
	ApiKey   string `json:"apikey"`
	Symbol   string `json:"symbol" example:"RELIANCE"`
	Exchange string `json:"exchange" example:"NSE"`
}

type HistoryRequest struct {
	ApiKey    string `json:"apikey"`
	Symbol    string `json:"symbol"`
	Exchange  string `json:"exchange"`
	Interval  string `json:"interval" example:"5m"`
	StartDate string `json:"start_date" example:"2024-11-01"`
	EndDate   string `json:"end_date" example:"2024-11-28"`
}

type GreeksRequest struct {
	ApiKey   string `json:"apikey"`
	Symbol   string `json:"symbol" example:"NIFTY28NOV2424000CE"`
	Exchange string `json:"exchange" example:"NFO" enums:"NFO,BFO,CDS,MCX"`

	// Annualized percentage. Falls back to the per-exchange default when nil.
	InterestRate *float64 `json:"interest_rate,omitempty"`

	// Overrides for where the spot price comes from.
	UnderlyingSymbol   string `json:"underlying_symbol,omitempty" example:"NIFTY28NOV24FUT"`
	UnderlyingExchange string `json:"underlying_exchange,omitempty" example:"NFO"`

	// Custom expiry clock in HH:MM, e.g. "19:00" for an MCX evening expiry.
	ExpiryTime string `json:"expiry_time,omitempty"`
}

type OptionSymbolRequest struct {
	ApiKey     string `json:"apikey"`
	Strategy   string `json:"strategy"`
	Underlying string `json:"underlying" example:"NIFTY28OCT25FUT"`
	Exchange   string `json:"exchange" example:"NSE_INDEX"`

	// DDMMMYY, optional when the underlying embeds it.
	ExpiryDate string `json:"expiry_date,omitempty" example:"28OCT25"`

	StrikeInterval int    `json:"strike_int" example:"50"`
	Offset         string `json:"offset" example:"ITM2"`
	OptionType     string `json:"option_type" example:"CE" enums:"CE,PE"`
}
