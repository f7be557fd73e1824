package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:7000", cfg.APIBaseURL)
	require.Equal(t, "http://localhost:7000/uploads/product", cfg.AssetBaseURL)
	require.Equal(t, "https://dummyjson.com/products/categories", cfg.CategoriesURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "market.db", cfg.DatabasePath)
	require.Equal(t, 3*time.Second, cfg.NotificationTTL)
}
