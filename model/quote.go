package model

// Quote is the normalized quote record returned to callers. Every field
// defaults to zero when the vendor has no data; callers cannot tell a
// missing value from a genuine zero.
type Quote struct {
	Bid       float64 `json:"bid"`
	Ask       float64 `json:"ask"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Ltp       float64 `json:"ltp"`
	PrevClose float64 `json:"prev_close"`
	Volume    float64 `json:"volume"`
	Oi        int64   `json:"oi"`
}

type DepthLevel struct {
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// Depth always carries exactly five bid and five ask levels, zero-padded
// when the vendor returns fewer. Totals are derived from the levels.
type Depth struct {
	Bids         []DepthLevel `json:"bids"`
	Asks         []DepthLevel `json:"asks"`
	TotalBuyQty  int64        `json:"totalbuyqty"`
	TotalSellQty int64        `json:"totalsellqty"`
}

// HistoryBar exists only to give the unsupported history endpoint a
// stable schema; the vendor has no historical data.
type HistoryBar struct {
	Timestamp string  `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}
