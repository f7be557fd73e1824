package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/markethub/marketcli/internal/client/api"
	"github.com/markethub/marketcli/internal/client/models"
	"github.com/markethub/marketcli/internal/client/services"
)

// notifyError surfaces a failed operation. Backend refusals and client-side
// validation show their own messages; transport failures get a generic one.
func (a *App) notifyError(err error) {
	if verrs, ok := services.AsValidationErrors(err); ok {
		fields := make([]string, 0, len(verrs))
		for f := range verrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			a.notifier.Error(verrs.Field(f))
		}
		return
	}
	if msg := api.RejectionMessage(err); msg != "" {
		a.notifier.Error(msg)
		return
	}
	if errors.Is(err, api.ErrUnavailable) {
		a.notifier.Error("Service unavailable, please try again later")
		return
	}
	a.notifier.Error(err.Error())
}

func (a *App) printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found")
		return
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%s  %-25s %8s  %s\n", p.ID, p.Name, p.Price, p.Category)
	}
}

func (a *App) printProduct(p *models.Product) {
	fmt.Fprintf(a.out, "Name:        %s\n", p.Name)
	fmt.Fprintf(a.out, "Price:       %s\n", p.Price)
	fmt.Fprintf(a.out, "Category:    %s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", p.Description)
	}
	fmt.Fprintf(a.out, "Picture:     %s\n", api.AssetURL(a.config.AssetBaseURL, p.Picture))
}
