package model

// SymToken is one row of the symbol master: the mapping from a platform
// symbol/exchange pair to the vendor's identifiers.
type SymToken struct {
	ID             string  `bson:"_id,omitempty" json:"-"`
	Symbol         string  `bson:"symbol" json:"symbol"`
	BrSymbol       string  `bson:"brsymbol" json:"brsymbol"`
	Name           string  `bson:"name" json:"name"`
	Exchange       string  `bson:"exchange" json:"exchange"`
	BrExchange     string  `bson:"brexchange" json:"brexchange"`
	Token          string  `bson:"token" json:"token"`
	Expiry         string  `bson:"expiry" json:"expiry"`
	Strike         float64 `bson:"strike" json:"strike"`
	LotSize        int     `bson:"lotsize" json:"lotsize"`
	InstrumentType string  `bson:"instrumenttype" json:"instrumenttype"`
	TickSize       float64 `bson:"tick_size" json:"tick_size"`
}
