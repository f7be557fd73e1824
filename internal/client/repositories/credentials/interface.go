// Package credentials persists small key-value secrets for the client, most
// importantly the bearer token, so a session survives a restart.
package credentials

import "context"

type Repository interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Replace atomically wipes the store and writes the single credential,
	// so a fresh login never coexists with leftovers of a previous session.
	Replace(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
