package cli

import (
	"context"

	"github.com/markethub/marketcli/internal/client/api"
	"github.com/markethub/marketcli/internal/common"
)

func (a *App) registerView(ctx context.Context) string {
	var form api.RegisterForm
	var err error

	if form.Name, err = GetSimpleText(a.reader, "Enter name", a.out); err != nil {
		a.log.Error(ctx, "reading name", "err", err)
		return ""
	}
	if form.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		a.log.Error(ctx, "reading email", "err", err)
		return ""
	}
	if form.Phone, err = GetSimpleText(a.reader, "Enter phone", a.out); err != nil {
		a.log.Error(ctx, "reading phone", "err", err)
		return ""
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "reading password", "err", err)
		return ""
	}
	defer common.WipeByteArray(password)
	form.Password = string(password)

	if form.ProfilePath, err = GetSimpleText(a.reader, "Profile picture file (optional)", a.out); err != nil {
		a.log.Error(ctx, "reading profile path", "err", err)
		return ""
	}

	msg, err := a.auth.Register(ctx, form)
	if err != nil {
		a.notifyError(err)
		return ""
	}

	a.notifier.Success(msg)
	return "/login"
}
