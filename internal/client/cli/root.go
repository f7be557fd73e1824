package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/markethub/marketcli/internal/client/guard"
)

func (a *App) getStatus() string {
	snap := a.store.Current()
	if snap.User != nil {
		return snap.User.Name
	}
	if snap.Token != "" {
		// Token rehydrated, profile resolution still in flight.
		return "…"
	}
	return "guest"
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to MarketHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Navigate routes to path. The guard runs first: a protected path without an
// authenticated session produces the login prompt notification and lands on
// the login view instead. Views may chain (login leads home, a saved product
// leads back to the listing); each hop re-runs the guard.
func (a *App) Navigate(ctx context.Context, path string) {
	for path != "" {
		if err := guard.Check(path, a.store.Current()); err != nil {
			a.notifier.Error("Please login to continue")
			path = guard.LoginRoute
			continue
		}
		a.setPath(path)

		// Each view runs under its own context, cancelled as soon as the
		// view is left, so requests it started cannot outlive it.
		viewCtx, cancel := context.WithCancel(ctx)
		path = a.render(viewCtx, path)
		cancel()
	}
}

// render shows one view and returns the path to chain to, or "" to hand
// control back to the REPL.
func (a *App) render(ctx context.Context, path string) string {
	switch {
	case path == "/":
		return a.homeView(ctx)
	case path == "/about":
		return a.aboutView(ctx)
	case path == "/login":
		return a.loginView(ctx)
	case path == "/register":
		return a.registerView(ctx)
	case path == "/browse":
		return a.browseView(ctx)
	case path == "/products":
		return a.productsView(ctx)
	case path == "/insert":
		return a.insertView(ctx)
	case path == "/profile":
		return a.profileView(ctx)
	case strings.HasPrefix(path, "/view/"):
		return a.detailsView(ctx, strings.TrimPrefix(path, "/view/"))
	case strings.HasPrefix(path, "/update-product/"):
		return a.updateView(ctx, strings.TrimPrefix(path, "/update-product/"))
	default:
		fmt.Fprintln(a.out, "Unknown route:", path)
		return ""
	}
}
