package guard

import (
	"testing"

	"github.com/markethub/marketcli/internal/client/models"
	"github.com/markethub/marketcli/internal/client/session"
	"github.com/stretchr/testify/require"
)

var protectedRoutes = []string{
	"/insert",
	"/products",
	"/browse",
	"/update-product/p1",
	"/view/p1",
	"/profile",
}

var publicRoutesList = []string{"/", "/login", "/register", "/about"}

func TestCheck_ProtectedWithoutTokenRedirects(t *testing.T) {
	for _, route := range protectedRoutes {
		t.Run(route, func(t *testing.T) {
			err := Check(route, session.Snapshot{})
			require.ErrorIs(t, err, ErrLoginRequired)
		})
	}
}

func TestCheck_TokenWithoutUserRedirects(t *testing.T) {
	snap := session.Snapshot{Token: "tok1"}
	for _, route := range protectedRoutes {
		require.ErrorIs(t, Check(route, snap), ErrLoginRequired, route)
	}
}

func TestCheck_AuthenticatedSessionPasses(t *testing.T) {
	snap := session.Snapshot{Token: "tok1", User: &models.User{Name: "A"}}
	for _, route := range protectedRoutes {
		require.NoError(t, Check(route, snap), route)
	}
}

func TestCheck_PublicRoutesAlwaysPass(t *testing.T) {
	for _, route := range publicRoutesList {
		require.NoError(t, Check(route, session.Snapshot{}), route)
	}
}

func TestIsPublic_Normalization(t *testing.T) {
	require.True(t, IsPublic("about"))
	require.True(t, IsPublic("/about/"))
	require.True(t, IsPublic(""))
	require.False(t, IsPublic("/view/p1"))
}
