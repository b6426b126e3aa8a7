package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

func newTestWorker(name, rut string) *types.Worker {
	return &types.Worker{
		Name:   name,
		RUT:    rut,
		Role:   "operator",
		Salary: 450000,
		Active: true,
	}
}

func TestWorkerService_SaveAndGet(t *testing.T) {
	svcs := newTestServices(t)

	w := newTestWorker("Pedro", "12.345.678-9")
	w.PaymentInfo = map[string]any{"bank": "Estado"}
	w.Materials = []string{"PET", "HDPE"}
	require.NoError(t, svcs.Workers.Save(w))
	require.NotNil(t, w.ID)

	got, err := svcs.Workers.GetByID(*w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pedro", got.Name)
	assert.Equal(t, 450000.0, got.Salary)
	assert.Equal(t, "Estado", got.PaymentInfo["bank"])
	assert.Equal(t, []string{"PET", "HDPE"}, got.Materials)
}

func TestWorkerService_SaveRequiresName(t *testing.T) {
	svcs := newTestServices(t)

	err := svcs.Workers.Save(newTestWorker("   ", "1-9"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestWorkerService_SaveRejectsDuplicateRUT(t *testing.T) {
	svcs := newTestServices(t)

	require.NoError(t, svcs.Workers.Save(newTestWorker("Pedro", "12.345.678-9")))

	err := svcs.Workers.Save(newTestWorker("Impostor", "12.345.678-9"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrValidation)

	// Updating the original worker keeps its own RUT without tripping the check.
	w, err := svcs.Workers.GetByRUT("12.345.678-9")
	require.NoError(t, err)
	require.NotNil(t, w)
	w.Phone = "+56 9 8765 4321"
	require.NoError(t, svcs.Workers.Save(w))
}

func TestWorkerService_GetByRUTIsCaseInsensitive(t *testing.T) {
	svcs := newTestServices(t)
	require.NoError(t, svcs.Workers.Save(newTestWorker("Pedro", "12.345.678-K")))

	got, err := svcs.Workers.GetByRUT("12.345.678-k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pedro", got.Name)

	got, err = svcs.Workers.GetByRUT("99.999.999-9")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWorkerService_Search(t *testing.T) {
	svcs := newTestServices(t)
	require.NoError(t, svcs.Workers.Save(newTestWorker("Pedro Rojas", "12.345.678-9")))
	require.NoError(t, svcs.Workers.Save(newTestWorker("Ana Diaz", "23.456.789-0")))

	got, err := svcs.Workers.Search("rojas")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pedro Rojas", got[0].Name)

	got, err = svcs.Workers.Search("23.456")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Diaz", got[0].Name)
}

func TestWorkerService_DeleteIsLogical(t *testing.T) {
	svcs := newTestServices(t)
	w := newTestWorker("Pedro", "12.345.678-9")
	require.NoError(t, svcs.Workers.Save(w))

	require.NoError(t, svcs.Workers.Delete(*w.ID))

	active, err := svcs.Workers.GetAll(false)
	require.NoError(t, err)
	assert.Empty(t, active)

	got, err := svcs.Workers.GetByID(*w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)
}

func TestWorkerService_ToggleStatus(t *testing.T) {
	svcs := newTestServices(t)
	w := newTestWorker("Pedro", "12.345.678-9")
	require.NoError(t, svcs.Workers.Save(w))

	got, err := svcs.Workers.ToggleStatus(*w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)

	got, err = svcs.Workers.ToggleStatus(*w.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	got, err = svcs.Workers.ToggleStatus(404)
	require.NoError(t, err)
	assert.Nil(t, got)
}
