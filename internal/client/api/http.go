package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markethub/marketcli/internal/client/models"
	"github.com/markethub/marketcli/internal/common"
)

// envelope is the response wrapper every backend endpoint uses. The payload
// key varies per endpoint (user, token, product, products), so one struct
// covers all of them.
type envelope struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Token    string           `json:"token"`
	User     *models.User     `json:"user"`
	Product  *models.Product  `json:"product"`
	Products []models.Product `json:"products"`
}

// HTTPClient talks to the marketplace backend over HTTP. The auth token is
// pulled from tokenSource on every request, so the client always sends the
// current session's token without holding a copy of session state.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource func() string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL. tokenSource may be
// nil for unauthenticated use; timeout bounds every request so transport
// failures surface instead of hanging the view.
func NewHTTPClient(baseURL string, timeout time.Duration, tokenSource func() string) *HTTPClient {
	if tokenSource == nil {
		tokenSource = func() string { return "" }
	}
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		tokenSource: tokenSource,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, contentType string, body io.Reader) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokenSource(); token != "" {
		req.Header.Set(common.AuthTokenHeaderName, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response: %w", method, path, ErrUnavailable)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Non-2xx with no parseable envelope is a transport-level failure,
		// not a business refusal.
		return nil, fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, ErrUnavailable)
	}

	if !env.Success {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
		}
		msg := env.Message
		if msg == "" {
			msg = "request rejected"
		}
		return nil, &RejectedError{Message: msg}
	}

	return &env, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(body))
}

func (c *HTTPClient) doMultipart(ctx context.Context, method, path string, fields []formField) (*envelope, error) {
	body, contentType, err := encodeMultipart(fields)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, contentType, body)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Session, error) {
	payload := map[string]string{"email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/user/login", payload)
	if err != nil {
		return nil, err
	}
	return &Session{Token: env.Token, User: env.User, Message: env.Message}, nil
}

func (c *HTTPClient) Register(ctx context.Context, form RegisterForm) (string, error) {
	fields := []formField{
		{name: "name", value: form.Name},
		{name: "email", value: form.Email},
		{name: "phone", value: form.Phone},
		{name: "password", value: form.Password},
	}
	if form.ProfilePath != "" {
		fields = append(fields, formField{name: "profile", filePath: form.ProfilePath})
	}
	env, err := c.doMultipart(ctx, http.MethodPost, "/user/register", fields)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/user/getprofile", "", nil)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, form ProfileForm) (*models.User, string, error) {
	fields := []formField{
		{name: "name", value: form.Name},
		{name: "email", value: form.Email},
		{name: "phone", value: form.Phone},
	}
	if form.ProfilePath != "" {
		fields = append(fields, formField{name: "profile", filePath: form.ProfilePath})
	}
	env, err := c.doMultipart(ctx, http.MethodPut, "/user/updateprofile", fields)
	if err != nil {
		return nil, "", err
	}
	return env.User, env.Message, nil
}

func (c *HTTPClient) ListMine(ctx context.Context) ([]models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/product/view-all-products", "", nil)
	if err != nil {
		return nil, err
	}
	return env.Products, nil
}

func (c *HTTPClient) ListOthers(ctx context.Context) ([]models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/product/view-others-product", "", nil)
	if err != nil {
		return nil, err
	}
	return env.Products, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/product/view/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}
	return env.Product, nil
}

func (c *HTTPClient) GetProductDetails(ctx context.Context, id string) (*models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/product/view-product-details/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}
	return env.Product, nil
}

func (c *HTTPClient) ListSimilar(ctx context.Context, category, excludeID string) ([]models.Product, error) {
	path := "/product/similar/" + url.PathEscape(category) + "?excludeId=" + url.QueryEscape(excludeID)
	env, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	return env.Products, nil
}

func productFields(form ProductForm) []formField {
	fields := []formField{
		{name: "name", value: form.Name},
		{name: "price", value: form.Price},
		{name: "category", value: form.Category},
		{name: "description", value: form.Description},
	}
	if form.PicturePath != "" {
		fields = append(fields, formField{name: "picture", filePath: form.PicturePath})
	}
	return fields
}

func (c *HTTPClient) InsertProduct(ctx context.Context, form ProductForm) (string, error) {
	env, err := c.doMultipart(ctx, http.MethodPost, "/product/insert", productFields(form))
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, form ProductForm) (string, error) {
	env, err := c.doMultipart(ctx, http.MethodPut, "/product/update/"+url.PathEscape(id), productFields(form))
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) (string, error) {
	env, err := c.do(ctx, http.MethodDelete, "/product/delete/"+url.PathEscape(id), "", nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
