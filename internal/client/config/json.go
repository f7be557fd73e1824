package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/markethub/marketcli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in seconds. Zero values mean "keep the current setting".
type JsonConfig struct {
	APIBaseURL         string `json:"api_base_url"`
	AssetBaseURL       string `json:"asset_base_url"`
	CategoriesURL      string `json:"categories_url"`
	RequestTimeoutSec  int    `json:"request_timeout_sec"`
	DatabasePath       string `json:"database_path"`
	NotificationTTLSec int    `json:"notification_ttl_sec"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic, matching the fail-fast startup policy.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.AssetBaseURL != "" {
		cfg.AssetBaseURL = jc.AssetBaseURL
	}
	if jc.CategoriesURL != "" {
		cfg.CategoriesURL = jc.CategoriesURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.NotificationTTLSec > 0 {
		cfg.NotificationTTL = time.Duration(jc.NotificationTTLSec) * time.Second
	}
}
