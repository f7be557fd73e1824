package cli

import (
	"context"
	"fmt"
)

func (a *App) homeView(ctx context.Context) string {
	fmt.Fprintln(a.out, "MarketHub — buy and sell with people near you")

	snap := a.store.Current()
	if snap.LoggedIn() {
		fmt.Fprintf(a.out, "Hello, %s. Type 'browse' to see the marketplace or 'products' for your listings.\n", snap.User.Name)
	} else {
		fmt.Fprintln(a.out, "Type 'login' to sign in or 'register' to create an account.")
	}
	return ""
}

func (a *App) aboutView(ctx context.Context) string {
	fmt.Fprintln(a.out, "MarketHub is a community marketplace: list what you no longer need,")
	fmt.Fprintln(a.out, "browse what others are selling, and arrange the rest between yourselves.")
	return ""
}
