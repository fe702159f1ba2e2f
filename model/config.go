package model

// EnvConfig holds sensitive environment settings
// @Description Private configuration (usually not exposed in public endpoints)
type EnvConfig struct {
	Port        string `json:"port"`
	Environment string `json:"environment"`
	ApiKey      string `json:"apiKey"`
	MongoUri    string `json:"mongoUri"`
	MongoDbName string `json:"mongoDbName"`
	RedisUrl    string `json:"redisUrl"`
	RateLimiter bool   `json:"rateLimiter"`

	// Vendor quote API settings. QuotesBaseUrl defaults to the
	// production quotes server when empty.
	QuotesBaseUrl string `json:"quotesBaseUrl"`
	AccessToken   string `json:"accessToken"`

	// Optional overrides for the curated market membership tables.
	// Empty slices/maps fall back to the built-in defaults.
	NseIndexSymbols  []string           `json:"nseIndexSymbols"`
	BseIndexSymbols  []string           `json:"bseIndexSymbols"`
	CurrencySymbols  []string           `json:"currencySymbols"`
	CommoditySymbols []string           `json:"commoditySymbols"`
	InterestRates    map[string]float64 `json:"interestRates"`
}
