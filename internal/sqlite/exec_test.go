package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

func TestQuery_EmptyResultIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.Query("SELECT * FROM clients WHERE id = ?", 99)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQuery_NormalizesBytesToString(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(
		"INSERT INTO clients (name, business_name, rut) VALUES (?, ?, ?)",
		"Acme", "Acme S.A.", "76.543.210-K")
	require.NoError(t, err)

	rows, err := s.Query("SELECT name, business_name FROM clients")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	v := rows[0].Value("name")
	_, isString := v.(string)
	assert.True(t, isString, "text columns should come back as string, got %T", v)
	assert.Equal(t, "Acme", rows[0].Record().String("name"))
}

func TestQuery_FailedStatementMatchesErrQueryFailed(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Query("SELECT nope FROM no_such_table")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrQueryFailed)

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Contains(t, qe.Stmt, "no_such_table")
}

func TestInsert_ZeroIsAValidIdentity(t *testing.T) {
	s := newTestStore(t)

	// Force identity zero explicitly; the row is as real as any other and
	// failure must be signalled only through the error value.
	id, err := s.Insert(
		"INSERT INTO clients (id, name, business_name, rut) VALUES (0, ?, ?, ?)",
		"Zero", "Zero S.A.", "11.111.111-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	rows, err := s.Query("SELECT * FROM clients WHERE id = 0")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rec := rows[0].Record()
	require.NotNil(t, rec.ID())
	assert.Equal(t, int64(0), *rec.ID())
	assert.Equal(t, "Zero", rec.String("name"))
}

func TestInsert_FailureReturnsError(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert("INSERT INTO no_such_table (x) VALUES (1)")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrQueryFailed)
}

func TestExec_ReportsAffectedRows(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(
		"INSERT INTO materials (name, material_type) VALUES (?, ?)", "PET", "plastic")
	require.NoError(t, err)

	n, err := s.Exec("UPDATE materials SET description = ? WHERE name = ?", "bottles", "PET")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Exec("UPDATE materials SET description = ? WHERE name = ?", "x", "absent")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "no match is zero rows, not an error")
}

func TestRow_ValueMissingColumnIsNil(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(
		"INSERT INTO materials (name, material_type) VALUES (?, ?)", "PET", "plastic")
	require.NoError(t, err)

	rows, err := s.Query("SELECT name FROM materials")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Nil(t, rows[0].Value("no_such_column"))
	assert.Equal(t, []string{"name"}, rows[0].Columns())
}
