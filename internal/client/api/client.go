// Package api is the typed HTTP client for the marketplace backend.
//
// Every operation sends the configured auth token header, interprets the
// backend's {success, message, ...} envelope, and maps failures onto the
// package's error taxonomy: ErrUnavailable for transport-level problems and
// *RejectedError for well-formed refusals.
package api

import (
	"context"

	"github.com/markethub/marketcli/internal/client/models"
)

// Session is the result of a successful login: the bearer token, the resolved
// user snapshot, and the backend's human-readable message.
type Session struct {
	Token   string
	User    *models.User
	Message string
}

// ProductForm carries the fields of the insert/update product forms.
// PicturePath points at a local image file; empty means "no picture"
// (on update the backend keeps the existing one).
type ProductForm struct {
	Name        string `validate:"required"`
	Price       string `validate:"required"`
	Category    string `validate:"required"`
	Description string
	PicturePath string
}

// RegisterForm carries the registration fields. ProfilePath is optional.
type RegisterForm struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required"`
	Password    string `validate:"required"`
	ProfilePath string
}

// ProfileForm carries the profile update fields. ProfilePath is optional;
// empty keeps the existing picture.
type ProfileForm struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required"`
	ProfilePath string
}

// Client defines the remote operations the views rely on. The concrete
// implementation is HTTPClient; tests substitute fakes.
//
// All methods honor context cancellation; message return values carry the
// backend's success message for notification display.
type Client interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, form RegisterForm) (string, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, form ProfileForm) (*models.User, string, error)

	ListMine(ctx context.Context) ([]models.Product, error)
	ListOthers(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetProductDetails(ctx context.Context, id string) (*models.Product, error)
	ListSimilar(ctx context.Context, category, excludeID string) ([]models.Product, error)
	InsertProduct(ctx context.Context, form ProductForm) (string, error)
	UpdateProduct(ctx context.Context, id string, form ProductForm) (string, error)
	DeleteProduct(ctx context.Context, id string) (string, error)
}
