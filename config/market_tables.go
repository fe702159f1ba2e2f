package config

import "github.com/fwwkol/openalgo/model"

// Curated membership tables used to classify where an underlying trades.
// The defaults below track the exchange lists as of the last update;
// operators can replace any of them from the environment config.
var (
	defaultNseIndexSymbols = []string{
		"NIFTY", "BANKNIFTY", "FINNIFTY", "MIDCPNIFTY",
		"NIFTYNXT50", "NIFTYIT", "NIFTYPHARMA", "NIFTYBANK",
	}

	defaultBseIndexSymbols = []string{"SENSEX", "BANKEX", "SENSEX50"}

	defaultCurrencySymbols = []string{"USDINR", "EURINR", "GBPINR", "JPYINR"}

	defaultCommoditySymbols = []string{
		"GOLD", "GOLDM", "GOLDPETAL", "SILVER", "SILVERM", "SILVERMIC",
		"CRUDEOIL", "CRUDEOILM", "NATURALGAS", "COPPER", "ZINC", "LEAD",
		"ALUMINIUM", "NICKEL", "COTTONCANDY", "MENTHAOIL",
	}

	// Annualized %. Zero on purpose: callers should supply a rate when
	// they want one priced in.
	defaultInterestRates = map[string]float64{
		"NFO": 0,
		"BFO": 0,
		"CDS": 0,
		"MCX": 0,
	}
)

type MarketTables struct {
	nseIndex      map[string]struct{}
	bseIndex      map[string]struct{}
	currency      map[string]struct{}
	commodity     map[string]struct{}
	interestRates map[string]float64
}

// NewMarketTables builds the lookup sets, taking overrides from cfg where
// present and the curated defaults otherwise.
func NewMarketTables(cfg *model.EnvConfig) *MarketTables {
	t := &MarketTables{
		nseIndex:      toSet(pick(cfg.NseIndexSymbols, defaultNseIndexSymbols)),
		bseIndex:      toSet(pick(cfg.BseIndexSymbols, defaultBseIndexSymbols)),
		currency:      toSet(pick(cfg.CurrencySymbols, defaultCurrencySymbols)),
		commodity:     toSet(pick(cfg.CommoditySymbols, defaultCommoditySymbols)),
		interestRates: defaultInterestRates,
	}
	if len(cfg.InterestRates) > 0 {
		t.interestRates = cfg.InterestRates
	}
	return t
}

func DefaultMarketTables() *MarketTables {
	return NewMarketTables(&model.EnvConfig{})
}

func (t *MarketTables) IsNseIndex(symbol string) bool {
	_, ok := t.nseIndex[symbol]
	return ok
}

func (t *MarketTables) IsBseIndex(symbol string) bool {
	_, ok := t.bseIndex[symbol]
	return ok
}

func (t *MarketTables) IsCurrency(symbol string) bool {
	_, ok := t.currency[symbol]
	return ok
}

func (t *MarketTables) IsCommodity(symbol string) bool {
	_, ok := t.commodity[symbol]
	return ok
}

// InterestRate returns the default annualized rate (%) for an options
// exchange; unknown exchanges get 0.
func (t *MarketTables) InterestRate(exchange string) float64 {
	return t.interestRates[exchange]
}

func pick(override, fallback []string) []string {
	if len(override) > 0 {
		return override
	}
	return fallback
}

func toSet(symbols []string) map[string]struct{} {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}
