package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

func TestPricingService_AssignAndList(t *testing.T) {
	svcs := newTestServices(t)
	clientID := mustSaveClient(t, svcs, "Acme")
	materialID := mustSaveMaterial(t, svcs, "PET")

	p, err := svcs.Pricing.Assign(clientID, materialID, 120.5, true, "bulk rate")
	require.NoError(t, err)
	require.NotNil(t, p.ID)

	priced, err := svcs.Pricing.ListForClient(clientID)
	require.NoError(t, err)
	require.Len(t, priced, 1)
	assert.Equal(t, 120.5, priced[0].Pairing.Price)
	assert.True(t, priced[0].Pairing.IncludesTax)
	assert.Equal(t, "bulk rate", priced[0].Pairing.Notes)
	assert.Equal(t, "PET", priced[0].Material.Name)
}

func TestPricingService_AssignDuplicateFails(t *testing.T) {
	svcs := newTestServices(t)
	clientID := mustSaveClient(t, svcs, "Acme")
	materialID := mustSaveMaterial(t, svcs, "PET")

	_, err := svcs.Pricing.Assign(clientID, materialID, 100, false, "")
	require.NoError(t, err)

	_, err = svcs.Pricing.Assign(clientID, materialID, 200, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDuplicatePair)
}

func TestPricingService_AssignValidation(t *testing.T) {
	svcs := newTestServices(t)

	_, err := svcs.Pricing.Assign(-1, 1, 10, false, "")
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = svcs.Pricing.Assign(1, -1, 10, false, "")
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = svcs.Pricing.Assign(1, 1, -0.5, false, "")
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestPricingService_AvailableComplementsPaired(t *testing.T) {
	svcs := newTestServices(t)
	clientID := mustSaveClient(t, svcs, "Acme")

	petID := mustSaveMaterial(t, svcs, "PET")
	hdpeID := mustSaveMaterial(t, svcs, "HDPE")
	glassID := mustSaveMaterial(t, svcs, "Glass")

	// Nothing paired: everything is available.
	avail, err := svcs.Pricing.AvailableForClient(clientID)
	require.NoError(t, err)
	assert.Len(t, avail, 3)

	_, err = svcs.Pricing.Assign(clientID, petID, 100, false, "")
	require.NoError(t, err)

	avail, err = svcs.Pricing.AvailableForClient(clientID)
	require.NoError(t, err)
	availIDs := lo.Map(avail, func(m *types.Material, _ int) int64 { return *m.ID })
	assert.ElementsMatch(t, []int64{hdpeID, glassID}, availIDs)

	// The paired and available sets are disjoint and cover all materials.
	priced, err := svcs.Pricing.ListForClient(clientID)
	require.NoError(t, err)
	assert.Equal(t, 3, len(priced)+len(avail))
}

func TestPricingService_AvailableSkipsInactiveMaterials(t *testing.T) {
	svcs := newTestServices(t)
	clientID := mustSaveClient(t, svcs, "Acme")
	otherClient := mustSaveClient(t, svcs, "Beta")

	petID := mustSaveMaterial(t, svcs, "PET")
	mustSaveMaterial(t, svcs, "HDPE")

	// Pair PET with another client, then deactivate it: it is neither
	// available to Acme nor active.
	_, err := svcs.Pricing.Assign(otherClient, petID, 50, false, "")
	require.NoError(t, err)
	require.NoError(t, svcs.Materials.Delete(petID))

	avail, err := svcs.Pricing.AvailableForClient(clientID)
	require.NoError(t, err)
	require.Len(t, avail, 1)
	assert.Equal(t, "HDPE", avail[0].Name)
}

func TestPricingService_Update(t *testing.T) {
	svcs := newTestServices(t)
	clientID := mustSaveClient(t, svcs, "Acme")
	materialID := mustSaveMaterial(t, svcs, "PET")

	p, err := svcs.Pricing.Assign(clientID, materialID, 100, false, "")
	require.NoError(t, err)

	p.Price = 135.75
	p.IncludesTax = true
	require.NoError(t, svcs.Pricing.Update(p))

	got, err := svcs.Pricing.Get(*p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 135.75, got.Price)
	assert.True(t, got.IncludesTax)
}

func TestPricingService_UpdateValidation(t *testing.T) {
	svcs := newTestServices(t)
	clientID := mustSaveClient(t, svcs, "Acme")
	materialID := mustSaveMaterial(t, svcs, "PET")

	p, err := svcs.Pricing.Assign(clientID, materialID, 100, false, "")
	require.NoError(t, err)

	p.Price = -1
	err = svcs.Pricing.Update(p)
	assert.ErrorIs(t, err, types.ErrValidation)

	err = svcs.Pricing.Update(&types.Pairing{ClientID: clientID, MaterialID: materialID, Price: 10})
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestPricingService_RemoveFreesThePair(t *testing.T) {
	svcs := newTestServices(t)
	clientID := mustSaveClient(t, svcs, "Acme")
	materialID := mustSaveMaterial(t, svcs, "PET")

	p, err := svcs.Pricing.Assign(clientID, materialID, 100, false, "")
	require.NoError(t, err)

	removed, err := svcs.Pricing.Remove(*p.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	avail, err := svcs.Pricing.AvailableForClient(clientID)
	require.NoError(t, err)
	require.Len(t, avail, 1)
	assert.Equal(t, "PET", avail[0].Name)

	removed, err = svcs.Pricing.Remove(*p.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPricingService_ClientPairingsAreIndependent(t *testing.T) {
	svcs := newTestServices(t)
	acme := mustSaveClient(t, svcs, "Acme")
	beta := mustSaveClient(t, svcs, "Beta")
	materialID := mustSaveMaterial(t, svcs, "PET")

	// The same material carries a different price per client.
	_, err := svcs.Pricing.Assign(acme, materialID, 100, false, "")
	require.NoError(t, err)
	_, err = svcs.Pricing.Assign(beta, materialID, 80, true, "")
	require.NoError(t, err)

	acmePriced, err := svcs.Pricing.ListForClient(acme)
	require.NoError(t, err)
	require.Len(t, acmePriced, 1)
	assert.Equal(t, 100.0, acmePriced[0].Pairing.Price)

	betaPriced, err := svcs.Pricing.ListForClient(beta)
	require.NoError(t, err)
	require.Len(t, betaPriced, 1)
	assert.Equal(t, 80.0, betaPriced[0].Pairing.Price)
}
