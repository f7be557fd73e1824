package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"api_base_url": "https://market.example.com",
		"request_timeout_sec": 7
	}`
	require.NoError(t, os.WriteFile(file, []byte(body), 0o600))

	withArgs(t, []string{"-c", file})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://market.example.com", cfg.APIBaseURL)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
	// Untouched keys keep their defaults.
	require.Equal(t, "market.db", cfg.DatabasePath)
}

func TestParseJson_NoFileIsNoop(t *testing.T) {
	withArgs(t, nil)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:7000", cfg.APIBaseURL)
}
