// Package config holds runtime settings for the marketcli client.
package config

import "time"

// Config holds runtime settings for the marketplace CLI.
//
// Fields:
//   - APIBaseURL: the single configurable backend base URL. Every remote
//     operation goes through it.
//   - AssetBaseURL: base URL picture filenames are resolved against.
//   - CategoriesURL: third-party category vocabulary feed.
//   - RequestTimeout: bound on every remote call before it is surfaced as a
//     transport failure.
//   - DatabasePath: local SQLite file persisting the bearer token.
//   - NotificationTTL: how long a toast stays visible.
type Config struct {
	APIBaseURL      string
	AssetBaseURL    string
	CategoriesURL   string
	RequestTimeout  time.Duration
	DatabasePath    string
	NotificationTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:7000"
	c.AssetBaseURL = "http://localhost:7000/uploads/product"
	c.CategoriesURL = "https://dummyjson.com/products/categories"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "market.db"
	c.NotificationTTL = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
