package service

import (
	"context"
	"strings"

	localCache "github.com/fwwkol/openalgo/cache"
	"github.com/fwwkol/openalgo/client"
	"github.com/fwwkol/openalgo/model"
	"github.com/fwwkol/openalgo/repository"

	"github.com/mitchellh/mapstructure"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// Vendor exchange segments, keyed by platform exchange code.
var vendorExchangeMap = map[string]string{
	"NSE":       "nse_cm",
	"BSE":       "bse_cm",
	"NFO":       "nse_fo",
	"BFO":       "bse_fo",
	"CDS":       "cde_fo",
	"MCX":       "mcx_fo",
	"NSE_INDEX": "nse_cm",
	"BSE_INDEX": "bse_cm",
}

// Index instruments are queried by display name, not token.
var indexNameMap = map[string]string{
	"NIFTY":      "Nifty 50",
	"NIFTY50":    "Nifty 50",
	"BANKNIFTY":  "Nifty Bank",
	"SENSEX":     "SENSEX",
	"BANKEX":     "BANKEX",
	"FINNIFTY":   "Nifty Fin Service",
	"MIDCPNIFTY": "NIFTY MIDCAP 100",
}

// Internal reason codes for defaulted quote responses. Callers never see
// these; they exist for telemetry because the external contract folds
// every failure into the same zero record.
const (
	reasonLookupMiss     = "lookup_miss"
	reasonTransportError = "transport_error"
	reasonEmptyPayload   = "empty_payload"
	reasonDecodeError    = "decode_error"
)

// QuotesService fetches live vendor quotes. GetQuote and GetDepth never
// fail: any vendor problem collapses into a zero-valued record, so "not
// found", "network down" and "no trades" are indistinguishable to the
// caller. That lossy contract is deliberate and load-bearing for the
// callers of this adapter; the defaulted reason is only logged.
type QuotesService interface {
	GetQuote(ctx context.Context, symbol, exchange string) *model.Quote
	GetDepth(ctx context.Context, symbol, exchange string) *model.Depth
	GetHistory(ctx context.Context, req *model.HistoryRequest) []model.HistoryBar
}

type QuotesServiceImpl struct {
	neo  *client.NeoClient
	repo repository.SymbolRepository
}

func NewQuotesService(neo *client.NeoClient, repo repository.SymbolRepository) QuotesService {
	return &QuotesServiceImpl{neo: neo, repo: repo}
}

func (s *QuotesServiceImpl) GetQuote(ctx context.Context, symbol, exchange string) *model.Quote {
	cacheKey := "quote_" + exchange + "_" + symbol
	if cached, found := localCache.QuoteCache.Get(cacheKey); found {
		q := cached.(model.Quote)
		return &q
	}

	raw, reason := s.fetchFirst(ctx, symbol, exchange, client.FilterAll)
	if raw == nil {
		s.logDefaulted("quote", symbol, exchange, reason)
		return defaultQuote()
	}

	var neoQuote model.NeoQuote
	if err := decodeWeakly(raw, &neoQuote); err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("quote payload decode failed")
		s.logDefaulted("quote", symbol, exchange, reasonDecodeError)
		return defaultQuote()
	}

	quote := &model.Quote{
		Bid:       neoQuote.TotalBuy,
		Ask:       neoQuote.TotalSell,
		Open:      neoQuote.Ohlc.Open,
		High:      neoQuote.Ohlc.High,
		Low:       neoQuote.Ohlc.Low,
		Ltp:       neoQuote.Ltp,
		PrevClose: neoQuote.Ohlc.Close,
		Volume:    neoQuote.LastVolume,
		Oi:        neoQuote.OpenInterest,
	}

	localCache.QuoteCache.Set(cacheKey, *quote, cache.DefaultExpiration)
	return quote
}

func (s *QuotesServiceImpl) GetDepth(ctx context.Context, symbol, exchange string) *model.Depth {
	cacheKey := "depth_" + exchange + "_" + symbol
	if cached, found := localCache.DepthCache.Get(cacheKey); found {
		d := cached.(model.Depth)
		return &d
	}

	raw, reason := s.fetchFirst(ctx, symbol, exchange, client.FilterDepth)
	if raw == nil {
		s.logDefaulted("depth", symbol, exchange, reason)
		return defaultDepth()
	}

	var neoQuote model.NeoQuote
	if err := decodeWeakly(raw, &neoQuote); err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("depth payload decode failed")
		s.logDefaulted("depth", symbol, exchange, reasonDecodeError)
		return defaultDepth()
	}

	depth := &model.Depth{
		Bids: padLevels(neoQuote.Depth.Buy),
		Asks: padLevels(neoQuote.Depth.Sell),
	}
	for _, level := range depth.Bids {
		depth.TotalBuyQty += level.Quantity
	}
	for _, level := range depth.Asks {
		depth.TotalSellQty += level.Quantity
	}

	localCache.DepthCache.Set(cacheKey, *depth, cache.DefaultExpiration)
	return depth
}

// GetHistory is a permanent capability gap for this vendor, not a bug:
// the quotes API has no historical endpoint. Always empty.
func (s *QuotesServiceImpl) GetHistory(ctx context.Context, req *model.HistoryRequest) []model.HistoryBar {
	log.Warn().
		Str("symbol", req.Symbol).
		Str("exchange", req.Exchange).
		Msg("vendor does not support historical data")
	return []model.HistoryBar{}
}

// fetchFirst resolves the vendor query, calls the quotes endpoint and
// returns the first payload element, or nil with a reason code.
func (s *QuotesServiceImpl) fetchFirst(ctx context.Context, symbol, exchange, filter string) (map[string]any, string) {
	query, ok := s.buildQuery(ctx, symbol, exchange)
	if !ok {
		return nil, reasonLookupMiss
	}

	payload, err := s.neo.FetchQuotes(ctx, query, filter)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("quotes api call failed")
		return nil, reasonTransportError
	}
	if len(payload) == 0 {
		return nil, reasonEmptyPayload
	}
	return payload[0], ""
}

// buildQuery produces the "segment|identifier" query string. Index
// instruments use the static name map; everything else resolves through
// the symbol master.
func (s *QuotesServiceImpl) buildQuery(ctx context.Context, symbol, exchange string) (string, bool) {
	if strings.Contains(strings.ToUpper(exchange), "INDEX") {
		segment, ok := vendorExchangeMap[strings.ToUpper(exchange)]
		if !ok {
			return "", false
		}
		name := symbol
		if mapped, ok := indexNameMap[strings.ToUpper(symbol)]; ok {
			name = mapped
		}
		return segment + "|" + name, true
	}

	token, err := s.repo.GetToken(ctx, symbol, exchange)
	if err != nil || token == "" {
		return "", false
	}
	brExchange, err := s.repo.GetBrExchange(ctx, symbol, exchange)
	if err != nil || brExchange == "" {
		return "", false
	}
	return brExchange + "|" + token, true
}

func (s *QuotesServiceImpl) logDefaulted(kind, symbol, exchange, reason string) {
	log.Warn().
		Str("kind", kind).
		Str("symbol", symbol).
		Str("exchange", exchange).
		Str("reason", reason).
		Msg("returning default record")
}

// decodeWeakly tolerates the vendor's habit of returning numbers as
// strings for some instruments.
func decodeWeakly(raw map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// padLevels truncates to the top five levels and zero-pads up to five.
func padLevels(levels []model.NeoDepthLevel) []model.DepthLevel {
	out := make([]model.DepthLevel, 0, 5)
	for i := 0; i < len(levels) && i < 5; i++ {
		out = append(out, model.DepthLevel{
			Price:    levels[i].Price,
			Quantity: levels[i].Quantity,
		})
	}
	for len(out) < 5 {
		out = append(out, model.DepthLevel{})
	}
	return out
}

func defaultQuote() *model.Quote {
	return &model.Quote{}
}

func defaultDepth() *model.Depth {
	return &model.Depth{
		Bids: make([]model.DepthLevel, 5),
		Asks: make([]model.DepthLevel, 5),
	}
}
