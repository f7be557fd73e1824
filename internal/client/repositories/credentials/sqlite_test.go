package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credtest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS credentials (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM credentials`)
	require.NoError(t, err)
	return db
}

func TestGet_MissingKeyReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), "authToken")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "authToken", []byte("tok1")))

	v, err := repo.Get(ctx, "authToken")
	require.NoError(t, err)
	require.Equal(t, []byte("tok1"), v)
}

func TestSet_OverwritesExisting(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "authToken", []byte("old")))
	require.NoError(t, repo.Set(ctx, "authToken", []byte("new")))

	v, err := repo.Get(ctx, "authToken")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestReplace_WipesOtherKeys(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "authToken", []byte("old")))
	require.NoError(t, repo.Set(ctx, "leftover", []byte("junk")))

	require.NoError(t, repo.Replace(ctx, "authToken", []byte("new")))

	v, err := repo.Get(ctx, "authToken")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)

	v, err = repo.Get(ctx, "leftover")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestClear_RemovesEverything(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "authToken", []byte("tok1")))
	require.NoError(t, repo.Set(ctx, "other", []byte("x")))
	require.NoError(t, repo.Clear(ctx))

	v, err := repo.Get(ctx, "authToken")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestDelete_RemovesKey(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "authToken", []byte("tok1")))
	require.NoError(t, repo.Delete(ctx, "authToken"))

	v, err := repo.Get(ctx, "authToken")
	require.NoError(t, err)
	require.Nil(t, v)
}
