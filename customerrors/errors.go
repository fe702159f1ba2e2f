package customerrors

import "errors"

var (
	ErrInvalidOptionSymbol = errors.New("invalid option symbol format")
	ErrInvalidExpiryTime   = errors.New("expiry_time must be HH:MM with hour 0-23 and minute 0-59")
	ErrOptionExpired       = errors.New("option has already expired")
	ErrNonPositiveInput    = errors.New("spot price, option price and strike must be positive")
	ErrExpiryRequired      = errors.New("expiry date required: pass expiry_date or embed it in the underlying (e.g. NIFTY28OCT25FUT)")
	ErrInvalidOffset       = errors.New("offset must be ATM, ITM1-ITM50 or OTM1-OTM50")
	ErrLtpNotAvailable     = errors.New("ltp not available")
	ErrSymbolNotFound      = errors.New("symbol not found in symbol master")
	ErrPricingUnavailable  = errors.New("pricing model not configured")
)
