package cli

import (
	"context"

	"github.com/markethub/marketcli/internal/client/guard"
)

// Logout clears the session. The current path moves to the login route before
// the session is wiped so the guard subscription does not fire a spurious
// "please login" prompt for an intentional logout.
func (a *App) Logout(ctx context.Context) {
	a.setPath(guard.LoginRoute)

	if err := a.auth.Logout(ctx); err != nil {
		a.notifyError(err)
		return
	}
	a.notifier.Success("Successfully logged out")
}
