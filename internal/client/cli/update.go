package cli

import "context"

func (a *App) updateView(ctx context.Context, id string) string {
	current, err := a.products.Get(ctx, id)
	if err != nil {
		a.notifyError(err)
		return ""
	}

	form, vocabulary, err := a.promptProductForm(ctx, current)
	if err != nil {
		a.log.Error(ctx, "reading product form", "err", err)
		return ""
	}

	msg, err := a.products.Update(ctx, id, form, vocabulary)
	if err != nil {
		a.notifyError(err)
		return ""
	}

	a.notifier.Success(msg)
	return "/products"
}
