package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mesh-intelligence/scrapledger/internal/sqlite"
	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// newTestServices wires the full service set over a fresh store. The hasher
// runs at minimum cost so user tests stay fast.
func newTestServices(t *testing.T) *Services {
	t.Helper()
	store := sqlite.New(types.Config{DataDir: t.TempDir()})
	require.NoError(t, store.Open())
	t.Cleanup(func() { store.Close() })
	return New(store, BcryptHasher{Cost: bcrypt.MinCost}, nil)
}

// mustSaveClient creates a valid client and returns its identity.
func mustSaveClient(t *testing.T, svcs *Services, name string) int64 {
	t.Helper()
	c := &types.Client{
		Name:         name,
		BusinessName: name + " S.A.",
		RUT:          "76.543.210-K",
		IsActive:     true,
	}
	require.NoError(t, svcs.Clients.Save(c))
	require.NotNil(t, c.ID)
	return *c.ID
}

// mustSaveMaterial creates a valid material and returns its identity.
func mustSaveMaterial(t *testing.T, svcs *Services, name string) int64 {
	t.Helper()
	m := &types.Material{
		Name:         name,
		MaterialType: types.MaterialTypePlastic,
		IsActive:     true,
	}
	require.NoError(t, svcs.Materials.Save(m))
	require.NotNil(t, m.ID)
	return *m.ID
}
