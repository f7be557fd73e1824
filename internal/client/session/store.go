// Package session holds the one piece of cross-view shared state: the bearer
// token and the resolved user profile. The token is persisted through the
// credentials repository so it survives restarts; the profile lives only in
// memory and is re-resolved at startup.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/markethub/marketcli/internal/client/models"
	"github.com/markethub/marketcli/internal/client/repositories/credentials"
	"github.com/markethub/marketcli/internal/common"
)

// Snapshot is an immutable view of the session. Gen increments on every
// token mutation; a background profile resolution captures the generation it
// started under and is discarded if a login/logout landed in between.
type Snapshot struct {
	Token string
	User  *models.User
	Gen   uint64
}

// LoggedIn reports whether both the token and the resolved profile are
// present. A token alone is not enough: the profile fetch may still be
// pending or may have failed.
func (s Snapshot) LoggedIn() bool {
	return s.Token != "" && s.User != nil
}

// Store is the session store. Writes are last-write-wins; subscribers are
// invoked synchronously after every mutation with the fresh snapshot.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *models.User
	gen   uint64
	repo  credentials.Repository
	subs  []func(Snapshot)
}

func NewStore(repo credentials.Repository) *Store {
	return &Store{repo: repo}
}

// Initialize loads a previously persisted token, if any. It returns
// immediately; resolving the profile for a rehydrated token is the caller's
// job (see services.AuthService.ResolveProfile) so startup never blocks on
// the network.
func (s *Store) Initialize(ctx context.Context) error {
	value, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return fmt.Errorf("loading persisted token: %w", err)
	}
	if len(value) == 0 {
		return nil
	}

	s.mu.Lock()
	s.token = string(value)
	s.user = nil
	s.gen++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// SetSession atomically sets token and user. The persisted credentials are
// replaced wholesale so nothing of a previous session survives a new login.
func (s *Store) SetSession(ctx context.Context, token string, user *models.User) error {
	if err := s.repo.Replace(ctx, common.TokenStorageKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.gen++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// SetUser applies a resolved or updated profile, but only if the session
// generation is still the one the caller started from. Returns false when the
// update was discarded as stale.
func (s *Store) SetUser(gen uint64, user *models.User) bool {
	s.mu.Lock()
	if s.gen != gen || s.token == "" {
		s.mu.Unlock()
		return false
	}
	s.user = user
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Clear wipes the session and every persisted credential.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("removing persisted credentials: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.gen++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Current returns the latest snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Token returns just the current token. Handy as an api.HTTPClient token
// source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subscribe registers fn to run after every session mutation.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) snapshotLocked() Snapshot {
	var user *models.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return Snapshot{Token: s.token, User: user, Gen: s.gen}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.RLock()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snap)
	}
}
