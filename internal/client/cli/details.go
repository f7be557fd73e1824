package cli

import (
	"context"
	"fmt"
)

func (a *App) detailsView(ctx context.Context, id string) string {
	product, similar, err := a.products.Details(ctx, id)
	if err != nil {
		a.notifyError(err)
		return ""
	}

	a.printProduct(product)

	if len(similar) > 0 {
		fmt.Fprintln(a.out, "\nSimilar products:")
		a.printProducts(similar)
	}
	return ""
}
