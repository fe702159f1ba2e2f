package model

// Raw payload shapes of the Neo v2 quotes endpoint. The API mixes string
// and numeric encodings for the same fields between instruments, so these
// are decoded with mapstructure in weakly-typed mode rather than straight
// into encoding/json.

type NeoQuote struct {
	DisplaySymbol string   `mapstructure:"display_symbol"`
	Ltp           float64  `mapstructure:"ltp"`
	TotalBuy      float64  `mapstructure:"total_buy"`
	TotalSell     float64  `mapstructure:"total_sell"`
	LastVolume    float64  `mapstructure:"last_volume"`
	OpenInterest  int64    `mapstructure:"open_int"`
	Ohlc          NeoOhlc  `mapstructure:"ohlc"`
	Depth         NeoDepth `mapstructure:"depth"`
}

type NeoOhlc struct {
	Open  float64 `mapstructure:"open"`
	High  float64 `mapstructure:"high"`
	Low   float64 `mapstructure:"low"`
	Close float64 `mapstructure:"close"`
}

type NeoDepth struct {
	Buy  []NeoDepthLevel `mapstructure:"buy"`
	Sell []NeoDepthLevel `mapstructure:"sell"`
}

type NeoDepthLevel struct {
	Price    float64 `mapstructure:"price"`
	Quantity int64   `mapstructure:"quantity"`
}
