package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/markethub/marketcli/internal/client/models"
)

const vocabularyTTL = 30 * time.Minute

// vocabularyFetcher is satisfied by api.CategoriesClient.
type vocabularyFetcher interface {
	Fetch(ctx context.Context) ([]models.Category, error)
}

// CategoryService serves the category vocabulary for the insert/update
// forms. The feed comes from a third-party reference list independent of the
// product backend; entries chosen at create time are not revalidated if the
// feed changes later.
type CategoryService interface {
	Vocabulary(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	fetcher vocabularyFetcher

	mu        sync.Mutex
	cached    []models.Category
	lastFetch time.Time
	now       func() time.Time
}

func NewCategoryService(fetcher vocabularyFetcher) CategoryService {
	return &categoryService{fetcher: fetcher, now: time.Now}
}

// Vocabulary returns the cached list while fresh, re-fetching otherwise.
// When a re-fetch fails but an older list exists, the stale list is returned
// rather than an empty selector.
func (s *categoryService) Vocabulary(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.lastFetch) < vocabularyTTL {
		return s.cached, nil
	}

	categories, err := s.fetcher.Fetch(ctx)
	if err != nil {
		if s.cached != nil {
			return s.cached, nil
		}
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	s.cached = categories
	s.lastFetch = s.now()
	return s.cached, nil
}
