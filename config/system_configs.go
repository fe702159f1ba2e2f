package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fwwkol/openalgo/model"

	"github.com/joho/godotenv"
)

const defaultQuotesBaseUrl = "https://cis.kotaksecurities.com"

type SystemConfigs struct {
	Config *model.EnvConfig
	Tables *MarketTables
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	var envCfg model.EnvConfig
	err := json.Unmarshal([]byte(rawJson), &envCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if envCfg.QuotesBaseUrl == "" {
		envCfg.QuotesBaseUrl = defaultQuotesBaseUrl
	}

	return &SystemConfigs{
		Config: &envCfg,
		Tables: NewMarketTables(&envCfg),
	}, nil
}

// ConfigManager hands out the current market tables and lets an operator
// swap them in at runtime without a restart.
type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *MarketTables) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetTables() *MarketTables {
	return cm.value.Load().(*MarketTables)
}

func (cm *ConfigManager) UpdateTables(newTables *MarketTables) {
	cm.value.Store(newTables)
}
