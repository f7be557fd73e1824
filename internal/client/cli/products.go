package cli

import (
	"context"
	"strings"
)

func (a *App) productsView(ctx context.Context) string {
	products, err := a.products.LoadMine(ctx)
	if err != nil {
		a.notifyError(err)
		return ""
	}
	a.printProducts(products)

	action, err := GetSimpleText(a.reader, "Action: delete <id>, update <id>, or empty to go back", a.out)
	if err != nil {
		a.log.Error(ctx, "reading action", "err", err)
		return ""
	}

	parts := strings.Fields(action)
	if len(parts) != 2 {
		return ""
	}

	switch parts[0] {
	case "delete":
		msg, err := a.products.Delete(ctx, parts[1])
		if err != nil {
			// The delete may have succeeded even when the follow-up
			// refresh did not; surface both outcomes.
			if msg != "" {
				a.notifier.Success(msg)
			}
			a.notifyError(err)
			return ""
		}
		a.notifier.Success(msg)
		a.printProducts(a.products.Mine())
	case "update":
		return "/update-product/" + parts[1]
	}
	return ""
}
