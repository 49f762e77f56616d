package dashboard_test

import (
	"path/filepath"
	"testing"

	"github.com/XPTOOLS/Tiktokdownloaderxp/dashboard"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "session", "token")
	store := dashboard.NewFileTokenStore(path)

	token, err := store.Load()
	require.NoError(err)
	require.Empty(token)

	require.NoError(store.Save("issued-token"))

	// a fresh store over the same path sees the token
	token, err = dashboard.NewFileTokenStore(path).Load()
	require.NoError(err)
	require.Equal("issued-token", token)

	require.NoError(store.Delete())
	token, err = store.Load()
	require.NoError(err)
	require.Empty(token)

	// deleting twice is not an error
	require.NoError(store.Delete())
}
