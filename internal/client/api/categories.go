package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/markethub/marketcli/internal/client/models"
)

// CategoriesClient fetches the category vocabulary from its third-party
// provider. The feed is independent of the product backend and read-only;
// it needs no auth token.
type CategoriesClient struct {
	url        string
	httpClient *http.Client
}

func NewCategoriesClient(url string, timeout time.Duration) *CategoriesClient {
	return &CategoriesClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the vocabulary. Elements may be strings or {slug,name}
// objects; models.Category normalizes both.
func (c *CategoriesClient) Fetch(ctx context.Context) ([]models.Category, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching categories: status %d: %w", resp.StatusCode, ErrUnavailable)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", ErrUnavailable)
	}

	var categories []models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", ErrUnavailable)
	}
	return categories, nil
}
