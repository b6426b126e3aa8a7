package sqlite

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// TypedStore implements EntityStore for kinds whose fields map 1:1 to named
// columns of a dedicated table created by the baseline schema.
type TypedStore struct {
	store *Store
	table string
	// columns lists the data columns in insert order, excluding the
	// identity column and the bookkeeping timestamps.
	columns    []string
	activeFlag bool   // table carries is_active
	orderBy    string // default listing order, empty for rowid order
}

var _ EntityStore = (*TypedStore)(nil)

// NewTypedStore returns a typed accessor for the given table. activeFlag
// declares that the table carries an is_active column used for default
// active-only listings. orderBy names the default sort column.
func NewTypedStore(store *Store, table string, columns []string, activeFlag bool, orderBy string) *TypedStore {
	return &TypedStore{
		store:      store,
		table:      table,
		columns:    columns,
		activeFlag: activeFlag,
		orderBy:    orderBy,
	}
}

// Kind returns the backing table name.
func (t *TypedStore) Kind() string { return t.table }

// GetAll returns every record, filtered to active rows unless
// includeInactive is set (or the table has no active flag).
func (t *TypedStore) GetAll(includeInactive bool) ([]types.Record, error) {
	stmt := "SELECT * FROM " + t.table
	if t.activeFlag && !includeInactive {
		stmt += " WHERE is_active = 1"
	}
	if t.orderBy != "" {
		stmt += " ORDER BY " + t.orderBy
	}

	rows, err := t.store.Query(stmt)
	if err != nil {
		return nil, err
	}
	recs := make([]types.Record, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, row.Record())
	}
	return recs, nil
}

// GetByID returns the record with the given identity, or nil when absent.
func (t *TypedStore) GetByID(id int64) (types.Record, error) {
	rows, err := t.store.Query("SELECT * FROM "+t.table+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].Record(), nil
}

// Save inserts or updates by identity. See EntityStore for the contract.
func (t *TypedStore) Save(rec types.Record) (types.Record, error) {
	if rec.ID() == nil {
		return t.insert(rec)
	}
	return t.update(rec)
}

func (t *TypedStore) insert(rec types.Record) (types.Record, error) {
	placeholders := make([]string, len(t.columns))
	args := make([]any, len(t.columns))
	for i, col := range t.columns {
		placeholders[i] = "?"
		args[i] = columnValue(rec[col])
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.table, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "))

	id, err := t.store.Insert(stmt, args...)
	if err != nil {
		return nil, err
	}

	out := rec.Clone()
	out.SetID(id)
	return out, nil
}

func (t *TypedStore) update(rec types.Record) (types.Record, error) {
	sets := make([]string, 0, len(t.columns)+1)
	args := make([]any, 0, len(t.columns)+1)
	for _, col := range t.columns {
		sets = append(sets, col+" = ?")
		args = append(args, columnValue(rec[col]))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, *rec.ID())

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.table, strings.Join(sets, ", "))

	n, err := t.store.Exec(stmt, args...)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("updating %s %d: %w", t.table, *rec.ID(), types.ErrNotFound)
	}
	// The record is returned as passed; server-computed timestamps require
	// an explicit re-fetch.
	return rec, nil
}

// Delete removes the row physically.
func (t *TypedStore) Delete(id int64) (bool, error) {
	n, err := t.store.Exec("DELETE FROM "+t.table+" WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// columnValue maps Go values to driver-friendly column values. Booleans are
// stored as 0/1 integers the way the legacy schema expects.
func columnValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return v
}
