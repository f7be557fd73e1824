package cli

import (
	"context"

	"github.com/markethub/marketcli/internal/common"
)

func (a *App) loginView(ctx context.Context) string {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "reading email", "err", err)
		return ""
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "reading password", "err", err)
		return ""
	}
	defer common.WipeByteArray(password)

	msg, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.notifyError(err)
		return ""
	}

	a.notifier.Success(msg)
	return "/"
}
