package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/markethub/marketcli/internal/client/api"
	"github.com/markethub/marketcli/internal/client/models"
	"github.com/markethub/marketcli/internal/client/session"
	"github.com/markethub/marketcli/internal/logging"
)

// ProductService is the listing synchronizer for the "my products" view and
// the read paths of browse/detail.
//
// Consistency policy: the local list is a point-in-time cache replaced
// wholesale by LoadMine. Mutations never patch it — create and update leave
// the refresh to the listing view's next load, delete triggers one sequenced
// refresh itself. A failed load leaves the previous cache untouched.
type ProductService interface {
	LoadMine(ctx context.Context) ([]models.Product, error)
	Mine() []models.Product
	Create(ctx context.Context, form api.ProductForm, vocabulary []models.Category) (string, error)
	Update(ctx context.Context, id string, form api.ProductForm, vocabulary []models.Category) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Browse(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Details(ctx context.Context, id string) (*models.Product, []models.Product, error)
}

type productService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger

	mu   sync.RWMutex
	mine []models.Product
}

func NewProductService(client api.Client, store *session.Store, log logging.Logger) ProductService {
	return &productService{client: client, store: store, log: log}
}

// remoteFail wraps a failed remote call. A token rejection additionally
// clears the session so the dead token is not retried.
func (s *productService) remoteFail(ctx context.Context, msg string, err error) error {
	clearRejectedSession(ctx, s.store, s.log, err)
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *productService) LoadMine(ctx context.Context) ([]models.Product, error) {
	products, err := s.client.ListMine(ctx)
	if err != nil {
		return nil, s.remoteFail(ctx, "loading products", err)
	}

	s.mu.Lock()
	s.mine = products
	s.mu.Unlock()

	return s.Mine(), nil
}

func (s *productService) Mine() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.mine))
	copy(out, s.mine)
	return out
}

func (s *productService) Create(ctx context.Context, form api.ProductForm, vocabulary []models.Category) (string, error) {
	if verrs := ValidateProductForm(form, vocabulary); verrs != nil {
		return "", verrs
	}

	msg, err := s.client.InsertProduct(ctx, form)
	if err != nil {
		return "", s.remoteFail(ctx, "creating product", err)
	}
	// No optimistic insert: the backend assigns id, timestamps and the
	// normalized picture reference, so the listing view re-fetches instead.
	return msg, nil
}

func (s *productService) Update(ctx context.Context, id string, form api.ProductForm, vocabulary []models.Category) (string, error) {
	if verrs := ValidateProductForm(form, vocabulary); verrs != nil {
		return "", verrs
	}

	msg, err := s.client.UpdateProduct(ctx, id, form)
	if err != nil {
		return "", s.remoteFail(ctx, "updating product", err)
	}
	return msg, nil
}

// Delete removes the product and then refreshes the cache. The refresh is
// sequenced after the delete completes, never fired concurrently, so it
// cannot race ahead of the server-side effect.
func (s *productService) Delete(ctx context.Context, id string) (string, error) {
	msg, err := s.client.DeleteProduct(ctx, id)
	if err != nil {
		return "", s.remoteFail(ctx, "deleting product", err)
	}

	if _, err := s.LoadMine(ctx); err != nil {
		return msg, fmt.Errorf("refreshing after delete: %w", err)
	}
	return msg, nil
}

func (s *productService) Browse(ctx context.Context) ([]models.Product, error) {
	products, err := s.client.ListOthers(ctx)
	if err != nil {
		return nil, s.remoteFail(ctx, "loading marketplace", err)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return nil, s.remoteFail(ctx, "loading product", err)
	}
	return product, nil
}

// Details loads a product and its similar-category neighbours. A failure on
// the similar fetch is not fatal to the detail view.
func (s *productService) Details(ctx context.Context, id string) (*models.Product, []models.Product, error) {
	product, err := s.client.GetProductDetails(ctx, id)
	if err != nil {
		return nil, nil, s.remoteFail(ctx, "loading product details", err)
	}

	similar, err := s.client.ListSimilar(ctx, product.Category, product.ID)
	if err != nil {
		clearRejectedSession(ctx, s.store, s.log, err)
		s.log.Warn(ctx, "similar products unavailable", "id", id, "err", err)
		similar = nil
	}

	return product, similar, nil
}

// FilterByName returns the products whose name contains term,
// case-insensitively. An empty term returns the input unchanged.
func FilterByName(products []models.Product, term string) []models.Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
