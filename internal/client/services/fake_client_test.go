package services

import (
	"context"

	"github.com/markethub/marketcli/internal/client/api"
	"github.com/markethub/marketcli/internal/client/models"
)

// fakeClient implements api.Client for service unit tests. Call counters and
// Last* fields allow asserting on exactly what was sent.
type fakeClient struct {
	LoginRet       *api.Session
	LoginErr       error
	LastLoginEmail string
	LastLoginPass  string

	RegisterMsg      string
	RegisterErr      error
	RegisterCalls    int
	LastRegisterForm api.RegisterForm

	GetProfileRet   *models.User
	GetProfileErr   error
	GetProfileCalls int

	UpdateProfileUser *models.User
	UpdateProfileMsg  string
	UpdateProfileErr  error

	ListMineRet   []models.Product
	ListMineErr   error
	ListMineCalls int

	ListOthersRet []models.Product
	ListOthersErr error

	GetProductRet *models.Product
	GetProductErr error

	DetailsRet *models.Product
	DetailsErr error

	SimilarRet          []models.Product
	SimilarErr          error
	LastSimilarCategory string
	LastSimilarExclude  string

	InsertMsg      string
	InsertErr      error
	InsertCalls    int
	LastInsertForm api.ProductForm

	UpdateMsg      string
	UpdateErr      error
	UpdateCalls    int
	LastUpdateID   string
	LastUpdateForm api.ProductForm

	DeleteMsg    string
	DeleteErr    error
	DeleteCalls  int
	LastDeleteID string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.Session, error) {
	f.LastLoginEmail = email
	f.LastLoginPass = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, form api.RegisterForm) (string, error) {
	f.RegisterCalls++
	f.LastRegisterForm = form
	return f.RegisterMsg, f.RegisterErr
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.User, error) {
	f.GetProfileCalls++
	return f.GetProfileRet, f.GetProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, form api.ProfileForm) (*models.User, string, error) {
	return f.UpdateProfileUser, f.UpdateProfileMsg, f.UpdateProfileErr
}

func (f *fakeClient) ListMine(ctx context.Context) ([]models.Product, error) {
	f.ListMineCalls++
	return f.ListMineRet, f.ListMineErr
}

func (f *fakeClient) ListOthers(ctx context.Context) ([]models.Product, error) {
	return f.ListOthersRet, f.ListOthersErr
}

func (f *fakeClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return f.GetProductRet, f.GetProductErr
}

func (f *fakeClient) GetProductDetails(ctx context.Context, id string) (*models.Product, error) {
	return f.DetailsRet, f.DetailsErr
}

func (f *fakeClient) ListSimilar(ctx context.Context, category, excludeID string) ([]models.Product, error) {
	f.LastSimilarCategory = category
	f.LastSimilarExclude = excludeID
	return f.SimilarRet, f.SimilarErr
}

func (f *fakeClient) InsertProduct(ctx context.Context, form api.ProductForm) (string, error) {
	f.InsertCalls++
	f.LastInsertForm = form
	return f.InsertMsg, f.InsertErr
}

func (f *fakeClient) UpdateProduct(ctx context.Context, id string, form api.ProductForm) (string, error) {
	f.UpdateCalls++
	f.LastUpdateID = id
	f.LastUpdateForm = form
	return f.UpdateMsg, f.UpdateErr
}

func (f *fakeClient) DeleteProduct(ctx context.Context, id string) (string, error) {
	f.DeleteCalls++
	f.LastDeleteID = id
	return f.DeleteMsg, f.DeleteErr
}
