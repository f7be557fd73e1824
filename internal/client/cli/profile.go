package cli

import (
	"context"
	"fmt"

	"github.com/markethub/marketcli/internal/client/api"
)

func (a *App) profileView(ctx context.Context) string {
	snap := a.store.Current()
	if snap.User == nil {
		a.notifier.Error("Profile is still loading, try again in a moment")
		return ""
	}
	user := snap.User

	fmt.Fprintf(a.out, "Name:    %s\n", user.Name)
	fmt.Fprintf(a.out, "Email:   %s\n", user.Email)
	fmt.Fprintf(a.out, "Phone:   %s\n", user.Phone)
	if user.Profile != "" {
		fmt.Fprintf(a.out, "Picture: %s\n", user.Profile)
	}

	answer, err := GetSimpleText(a.reader, "Edit profile? (y/N)", a.out)
	if err != nil {
		a.log.Error(ctx, "reading answer", "err", err)
		return ""
	}
	if answer != "y" && answer != "yes" {
		return ""
	}

	var form api.ProfileForm
	if form.Name, err = GetTextWithDefault(a.reader, "Name", user.Name, a.out); err != nil {
		a.log.Error(ctx, "reading name", "err", err)
		return ""
	}
	if form.Email, err = GetTextWithDefault(a.reader, "Email", user.Email, a.out); err != nil {
		a.log.Error(ctx, "reading email", "err", err)
		return ""
	}
	if form.Phone, err = GetTextWithDefault(a.reader, "Phone", user.Phone, a.out); err != nil {
		a.log.Error(ctx, "reading phone", "err", err)
		return ""
	}
	if form.ProfilePath, err = GetSimpleText(a.reader, "Profile picture file (optional)", a.out); err != nil {
		a.log.Error(ctx, "reading profile path", "err", err)
		return ""
	}

	msg, err := a.auth.UpdateProfile(ctx, form)
	if err != nil {
		a.notifyError(err)
		return ""
	}

	a.notifier.Success(msg)
	return "/"
}
