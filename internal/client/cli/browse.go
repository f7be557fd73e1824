package cli

import (
	"context"

	"github.com/markethub/marketcli/internal/client/services"
)

func (a *App) browseView(ctx context.Context) string {
	products, err := a.products.Browse(ctx)
	if err != nil {
		a.notifyError(err)
		return ""
	}

	term, err := GetSimpleText(a.reader, "Search by name (empty for all)", a.out)
	if err != nil {
		a.log.Error(ctx, "reading search term", "err", err)
		return ""
	}

	a.printProducts(services.FilterByName(products, term))
	return ""
}
