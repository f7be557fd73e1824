// Package services contains the application services behind the CLI views:
// authentication and profile management, the product listing synchronizer,
// and the category vocabulary cache.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/markethub/marketcli/internal/client/api"
	"github.com/markethub/marketcli/internal/client/session"
	"github.com/markethub/marketcli/internal/logging"
)

// clearRejectedSession wipes the session, including the persisted token, once
// the backend has rejected it. A rejected token is dead; keeping it would
// replay the same failure on every subsequent request.
func clearRejectedSession(ctx context.Context, store *session.Store, log logging.Logger, err error) {
	if !errors.Is(err, api.ErrUnauthorized) {
		return
	}
	if cerr := store.Clear(ctx); cerr != nil {
		log.Error(ctx, "clearing rejected session", "err", cerr)
	}
}

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login: authenticate, then atomically install token+user in the store.
//   - Register: create an account; the caller navigates to the login view.
//   - Logout: clear the session and the persisted token.
//   - ResolveProfile: fetch the profile for an already-present token; safe to
//     run in the background, stale results are discarded by the store.
//
// Any operation whose token the backend rejects clears the session, persisted
// token included, as if the user had logged out.
//   - UpdateProfile: validate, send, and refresh the in-memory snapshot.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (string, error)
	Register(ctx context.Context, form api.RegisterForm) (string, error)
	Logout(ctx context.Context) error
	ResolveProfile(ctx context.Context) error
	UpdateProfile(ctx context.Context, form api.ProfileForm) (string, error)
}

type authService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (string, error) {
	result, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	if err := a.store.SetSession(ctx, result.Token, result.User); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}

	return result.Message, nil
}

func (a *authService) Register(ctx context.Context, form api.RegisterForm) (string, error) {
	if verrs := ValidateRegisterForm(form); verrs != nil {
		return "", verrs
	}

	msg, err := a.client.Register(ctx, form)
	if err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	return msg, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// ResolveProfile resolves the user snapshot for the current token. The
// generation captured before the request guards against a login or logout
// landing while the request is in flight; a stale profile is dropped.
func (a *authService) ResolveProfile(ctx context.Context) error {
	snap := a.store.Current()
	if snap.Token == "" {
		return nil
	}

	user, err := a.client.GetProfile(ctx)
	if err != nil {
		clearRejectedSession(ctx, a.store, a.log, err)
		return fmt.Errorf("resolving profile: %w", err)
	}

	if !a.store.SetUser(snap.Gen, user) {
		a.log.Debug(ctx, "discarding stale profile resolution")
	}
	return nil
}

func (a *authService) UpdateProfile(ctx context.Context, form api.ProfileForm) (string, error) {
	if verrs := ValidateProfileForm(form); verrs != nil {
		return "", verrs
	}

	user, msg, err := a.client.UpdateProfile(ctx, form)
	if err != nil {
		clearRejectedSession(ctx, a.store, a.log, err)
		return "", fmt.Errorf("profile update error: %w", err)
	}

	if user != nil {
		a.store.SetUser(a.store.Current().Gen, user)
	}
	return msg, nil
}
