// Package guard decides, per navigation, whether a route may render for the
// current session. Public routes always pass; protected routes require both
// a token and a resolved profile, otherwise the caller redirects to login.
package guard

import (
	"errors"
	"strings"

	"github.com/markethub/marketcli/internal/client/session"
)

// ErrLoginRequired is returned when a protected route is entered without an
// authenticated session. Callers redirect to the login route instead of
// rendering.
var ErrLoginRequired = errors.New("login required")

// LoginRoute is where unauthenticated navigations get redirected.
const LoginRoute = "/login"

// publicRoutes are reachable without a session. The landing route is
// deliberately public even though most routes are protected: unauthenticated
// visitors may see the landing page.
var publicRoutes = map[string]struct{}{
	"/":         {},
	"/login":    {},
	"/register": {},
	"/about":    {},
}

// IsPublic classifies a path. Parameterized routes ("/view/p1",
// "/update-product/p1") are matched on their first segment and are all
// protected.
func IsPublic(path string) bool {
	_, ok := publicRoutes[normalize(path)]
	return ok
}

// Check returns nil when the route may render for the given session, and
// ErrLoginRequired when it may not.
func Check(path string, snap session.Snapshot) error {
	if IsPublic(path) {
		return nil
	}
	if !snap.LoggedIn() {
		return ErrLoginRequired
	}
	return nil
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
