// Package cli implements the interactive terminal client: one view per
// storefront route, navigation gated by the route guard, and toast-style
// feedback for every remote outcome.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/markethub/marketcli/internal/client/api"
	"github.com/markethub/marketcli/internal/client/config"
	"github.com/markethub/marketcli/internal/client/guard"
	"github.com/markethub/marketcli/internal/client/notify"
	"github.com/markethub/marketcli/internal/client/repositories/credentials"
	"github.com/markethub/marketcli/internal/client/services"
	"github.com/markethub/marketcli/internal/client/session"
	"github.com/markethub/marketcli/internal/client/storage"
	"github.com/markethub/marketcli/internal/logging"
)

type App struct {
	config     *config.Config
	store      *session.Store
	auth       services.AuthService
	products   services.ProductService
	categories services.CategoryService
	notifier   *notify.Notifier
	log        logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	mu          sync.Mutex
	currentPath string
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	store := session.NewStore(credentials.NewSQLiteRepository(db))
	if err := store.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store.Token)
	categoriesClient := api.NewCategoriesClient(cfg.CategoriesURL, cfg.RequestTimeout)

	a := &App{
		config:      cfg,
		store:       store,
		auth:        services.NewAuthService(apiClient, store, log),
		products:    services.NewProductService(apiClient, store, log),
		categories:  services.NewCategoryService(categoriesClient),
		notifier:    notify.NewNotifier(os.Stdout, cfg.NotificationTTL),
		log:         log,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		currentPath: "/",
	}

	// The guard re-evaluates whenever the session changes, not only on
	// navigation: losing the session mid-visit on a protected route
	// redirects to login immediately.
	store.Subscribe(a.onSessionChange)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	// Non-blocking hydration: a persisted token gets its profile resolved
	// in the background. Stale results are discarded by the store.
	if a.store.Current().Token != "" {
		go func() {
			if err := a.auth.ResolveProfile(ctx); err != nil {
				a.log.Warn(ctx, "profile resolution failed", "err", err)
			}
		}()
	}

	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Current().LoggedIn()
}

func (a *App) path() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentPath
}

func (a *App) setPath(p string) {
	a.mu.Lock()
	a.currentPath = p
	a.mu.Unlock()
}

func (a *App) onSessionChange(snap session.Snapshot) {
	if snap.LoggedIn() {
		return
	}
	if guard.IsPublic(a.path()) {
		return
	}
	a.notifier.Error("Please login to continue")
	a.setPath(guard.LoginRoute)
}
