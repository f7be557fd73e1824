package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "client.db")

	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureParentDir_BareFileNameIsNoop(t *testing.T) {
	require.NoError(t, EnsureParentDir("client.db"))
}

func TestEnsureParentDir_ExistingDirectoryIsFine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnsureParentDir(filepath.Join(dir, "client.db")))
	require.NoError(t, EnsureParentDir(filepath.Join(dir, "client.db")))
}
