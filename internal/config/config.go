package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to a documented env var.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Data directories scanned for workbooks
	SalesDataDir     string `mapstructure:"SALES_DATA_DIR"`
	InventoryDataDir string `mapstructure:"INVENTORY_DATA_DIR"`

	// Caching
	LoadCacheTTLSeconds int `mapstructure:"LOAD_CACHE_TTL_SECONDS"`
	LoadCacheMaxEntries int `mapstructure:"LOAD_CACHE_MAX_ENTRIES"`
	AggCacheTTLSeconds  int `mapstructure:"AGG_CACHE_TTL_SECONDS"`
	AggCacheMaxEntries  int `mapstructure:"AGG_CACHE_MAX_ENTRIES"`
}

// LoadCacheTTL returns the workbook cache TTL as a duration.
func (c *Config) LoadCacheTTL() time.Duration {
	return time.Duration(c.LoadCacheTTLSeconds) * time.Second
}

// AggCacheTTL returns the aggregate cache TTL as a duration.
func (c *Config) AggCacheTTL() time.Duration {
	return time.Duration(c.AggCacheTTLSeconds) * time.Second
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 8)
	viper.SetDefault("SALES_DATA_DIR", "data/sales")
	viper.SetDefault("INVENTORY_DATA_DIR", "data/inventory")
	viper.SetDefault("LOAD_CACHE_TTL_SECONDS", 3600)
	viper.SetDefault("LOAD_CACHE_MAX_ENTRIES", 10)
	viper.SetDefault("AGG_CACHE_TTL_SECONDS", 1800)
	viper.SetDefault("AGG_CACHE_MAX_ENTRIES", 64)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
