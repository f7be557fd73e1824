package cli

import (
	"context"
	"fmt"

	"github.com/markethub/marketcli/internal/client/api"
	"github.com/markethub/marketcli/internal/client/models"
)

// promptProductForm collects the insert/update product fields. current, when
// non-nil, pre-fills every prompt so blank answers keep the existing value.
// The vocabulary is returned alongside the form because validation checks
// membership against it; a failed vocabulary fetch degrades to free-text
// category entry rather than blocking the form.
func (a *App) promptProductForm(ctx context.Context, current *models.Product) (api.ProductForm, []models.Category, error) {
	var form api.ProductForm

	vocabulary, err := a.categories.Vocabulary(ctx)
	if err != nil {
		a.log.Warn(ctx, "category vocabulary unavailable", "err", err)
		vocabulary = nil
	}
	if len(vocabulary) > 0 {
		fmt.Fprint(a.out, "Categories:")
		for _, c := range vocabulary {
			fmt.Fprintf(a.out, " %s", c.Display())
		}
		fmt.Fprintln(a.out)
	}

	var name, price, category, description string
	if current != nil {
		name, price, category, description = current.Name, current.Price, current.Category, current.Description
	}

	if form.Name, err = GetTextWithDefault(a.reader, "Product name", name, a.out); err != nil {
		return form, nil, err
	}
	if form.Price, err = GetTextWithDefault(a.reader, "Price", price, a.out); err != nil {
		return form, nil, err
	}
	if form.Category, err = GetTextWithDefault(a.reader, "Category", category, a.out); err != nil {
		return form, nil, err
	}
	if form.Description, err = GetTextWithDefault(a.reader, "Description (optional)", description, a.out); err != nil {
		return form, nil, err
	}
	if form.PicturePath, err = GetSimpleText(a.reader, "Picture file (optional)", a.out); err != nil {
		return form, nil, err
	}

	return form, vocabulary, nil
}

func (a *App) insertView(ctx context.Context) string {
	form, vocabulary, err := a.promptProductForm(ctx, nil)
	if err != nil {
		a.log.Error(ctx, "reading product form", "err", err)
		return ""
	}

	msg, err := a.products.Create(ctx, form, vocabulary)
	if err != nil {
		a.notifyError(err)
		return ""
	}

	a.notifier.Success(msg)
	return "/products"
}
