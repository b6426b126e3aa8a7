package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

func workerRecord(name string) types.Record {
	return types.Record{
		"name":   name,
		"rut":    "12.345.678-9",
		"role":   "operator",
		"salary": 450000.0,
		"active": true,
	}
}

func TestSchemalessStore_TableCreatedLazily(t *testing.T) {
	s := newTestStore(t)
	tbl := NewSchemalessStore(s, "workers", "active")

	// Nothing exists until the first access.
	rows, err := s.Query("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'workers'")
	require.NoError(t, err)
	assert.Empty(t, rows)

	all, err := tbl.GetAll(true)
	require.NoError(t, err)
	assert.Empty(t, all)

	rows, err = s.Query("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'workers'")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSchemalessStore_SaveRoundTrip(t *testing.T) {
	s := newTestStore(t)
	tbl := NewSchemalessStore(s, "workers", "active")

	saved, err := tbl.Save(workerRecord("Pedro"))
	require.NoError(t, err)
	require.NotNil(t, saved.ID())

	got, err := tbl.GetByID(*saved.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pedro", got.String("name"))
	assert.Equal(t, 450000.0, got.Float64("salary"))
	assert.True(t, got.Bool("active"))
	require.NotNil(t, got.ID())
	assert.Equal(t, *saved.ID(), *got.ID())
}

func TestSchemalessStore_IdentityNeverEntersPayload(t *testing.T) {
	s := newTestStore(t)
	tbl := NewSchemalessStore(s, "workers", "active")

	saved, err := tbl.Save(workerRecord("Pedro"))
	require.NoError(t, err)

	rows, err := s.Query("SELECT payload FROM workers WHERE id = ?", *saved.ID())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotContains(t, rows[0].Record().String("payload"), `"id"`)
}

func TestSchemalessStore_ArbitraryFieldsSurvive(t *testing.T) {
	s := newTestStore(t)
	tbl := NewSchemalessStore(s, "workers", "active")

	rec := workerRecord("Pedro")
	rec["payment_info"] = map[string]any{"bank": "Estado", "account": "123"}
	rec["materials"] = []string{"PET", "HDPE"}

	saved, err := tbl.Save(rec)
	require.NoError(t, err)

	got, err := tbl.GetByID(*saved.ID())
	require.NoError(t, err)

	pi, ok := got["payment_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Estado", pi["bank"])
	// JSON decoding yields []any for arrays.
	assert.Len(t, got["materials"], 2)
}

func TestSchemalessStore_GetAllFiltersOnActiveField(t *testing.T) {
	s := newTestStore(t)
	tbl := NewSchemalessStore(s, "workers", "active")

	_, err := tbl.Save(workerRecord("Active"))
	require.NoError(t, err)

	gone := workerRecord("Gone")
	gone["active"] = false
	_, err = tbl.Save(gone)
	require.NoError(t, err)

	active, err := tbl.GetAll(false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].String("name"))

	all, err := tbl.GetAll(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSchemalessStore_UpdateMissingRowFailsWithNotFound(t *testing.T) {
	s := newTestStore(t)
	tbl := NewSchemalessStore(s, "workers", "active")

	rec := workerRecord("Ghost")
	rec.SetID(77)

	_, err := tbl.Save(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)

	got, err := tbl.GetByID(77)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSchemalessStore_Delete(t *testing.T) {
	s := newTestStore(t)
	tbl := NewSchemalessStore(s, "workers", "active")

	saved, err := tbl.Save(workerRecord("Pedro"))
	require.NoError(t, err)

	removed, err := tbl.Delete(*saved.ID())
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = tbl.Delete(*saved.ID())
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSchemalessStore_RejectsUnsafeKindNames(t *testing.T) {
	s := newTestStore(t)

	for _, kind := range []string{"", "Workers", "drop table", "x;--", "a.b"} {
		tbl := NewSchemalessStore(s, kind, "")
		_, err := tbl.GetAll(true)
		require.Error(t, err, "kind %q", kind)
		assert.ErrorIs(t, err, types.ErrKindUnknown)
	}
}

func TestSchemalessStore_KindsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	s := New(types.Config{DataDir: dir})
	require.NoError(t, s.Open())

	tbl := NewSchemalessStore(s, "workers", "active")
	saved, err := tbl.Save(workerRecord("Pedro"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// A fresh store over the same file re-verifies the table and reads the
	// same rows back.
	s2 := New(types.Config{DataDir: dir})
	require.NoError(t, s2.Open())
	defer s2.Close()

	tbl2 := NewSchemalessStore(s2, "workers", "active")
	got, err := tbl2.GetByID(*saved.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pedro", got.String("name"))
}

func TestSchemalessStore_IndependentKindsDoNotMix(t *testing.T) {
	s := newTestStore(t)
	workers := NewSchemalessStore(s, "workers", "active")
	other := NewSchemalessStore(s, "settings", "")

	_, err := workers.Save(workerRecord("Pedro"))
	require.NoError(t, err)
	_, err = other.Save(types.Record{"theme": "dark"})
	require.NoError(t, err)

	w, err := workers.GetAll(true)
	require.NoError(t, err)
	o, err := other.GetAll(true)
	require.NoError(t, err)
	assert.Len(t, w, 1)
	assert.Len(t, o, 1)
	assert.Equal(t, "dark", o[0].String("theme"))
}
