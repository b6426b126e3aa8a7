package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// SchemalessStore implements EntityStore for dynamically registered kinds.
// Each kind gets a two-column table (identity, serialized payload) plus
// bookkeeping timestamps, created lazily on first access. The identity is
// never embedded in the payload: it is stripped before encoding and merged
// back from the identity column on read.
type SchemalessStore struct {
	store *Store
	kind  string
	// activeField names the payload field used for default active-only
	// listings. Empty means the kind has no logical-delete flag.
	activeField string
}

var _ EntityStore = (*SchemalessStore)(nil)

// NewSchemalessStore returns a schema-less accessor for the given kind.
func NewSchemalessStore(store *Store, kind, activeField string) *SchemalessStore {
	return &SchemalessStore{store: store, kind: kind, activeField: activeField}
}

// Kind returns the entity kind name.
func (s *SchemalessStore) Kind() string { return s.kind }

// ensureTable creates the backing table if it is missing. The check runs at
// most once per process lifetime per kind; the DDL itself is idempotent, so
// a table dropped externally heals on the next open.
func (s *SchemalessStore) ensureTable() error {
	if !validKindName(s.kind) {
		return fmt.Errorf("kind %q: %w", s.kind, types.ErrKindUnknown)
	}

	s.store.mu.Lock()
	verified := s.store.kinds[s.kind]
	s.store.mu.Unlock()
	if verified {
		return nil
	}

	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    payload TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`, s.kind)
	if _, err := s.store.Exec(stmt); err != nil {
		return err
	}

	s.store.mu.Lock()
	s.store.kinds[s.kind] = true
	s.store.mu.Unlock()
	return nil
}

// GetAll decodes every payload, merging the row identity into each record.
func (s *SchemalessStore) GetAll(includeInactive bool) ([]types.Record, error) {
	if err := s.ensureTable(); err != nil {
		return nil, err
	}

	rows, err := s.store.Query("SELECT id, payload FROM " + s.kind + " ORDER BY id")
	if err != nil {
		return nil, err
	}

	recs := make([]types.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decodePayload(row)
		if err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", s.kind, err)
		}
		if s.activeField != "" && !includeInactive && !rec.Bool(s.activeField) {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// GetByID returns the decoded record, or nil when absent.
func (s *SchemalessStore) GetByID(id int64) (types.Record, error) {
	if err := s.ensureTable(); err != nil {
		return nil, err
	}

	rows, err := s.store.Query("SELECT id, payload FROM "+s.kind+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rec, err := decodePayload(rows[0])
	if err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", s.kind, err)
	}
	return rec, nil
}

// Save inserts or updates by identity. See EntityStore for the contract.
func (s *SchemalessStore) Save(rec types.Record) (types.Record, error) {
	if err := s.ensureTable(); err != nil {
		return nil, err
	}

	payload, err := encodePayload(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", s.kind, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	if rec.ID() == nil {
		id, err := s.store.Insert(
			"INSERT INTO "+s.kind+" (payload, created_at, updated_at) VALUES (?, ?, ?)",
			payload, now, now)
		if err != nil {
			return nil, err
		}
		out := rec.Clone()
		out.SetID(id)
		return out, nil
	}

	n, err := s.store.Exec(
		"UPDATE "+s.kind+" SET payload = ?, updated_at = ? WHERE id = ?",
		payload, now, *rec.ID())
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("updating %s %d: %w", s.kind, *rec.ID(), types.ErrNotFound)
	}
	return rec, nil
}

// Delete removes the row physically.
func (s *SchemalessStore) Delete(id int64) (bool, error) {
	if err := s.ensureTable(); err != nil {
		return false, err
	}
	n, err := s.store.Exec("DELETE FROM "+s.kind+" WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// validKindName accepts lowercase identifiers only. Kind names become table
// names, so nothing that needs quoting is allowed through.
func validKindName(kind string) bool {
	if kind == "" {
		return false
	}
	for _, r := range kind {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// encodePayload serializes the record without its identity.
func encodePayload(rec types.Record) (string, error) {
	body := rec.Clone()
	body.ClearID()
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodePayload parses a (id, payload) row and re-attaches the identity.
func decodePayload(row Row) (types.Record, error) {
	var rec types.Record
	if err := json.Unmarshal([]byte(row.Record().String("payload")), &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = types.Record{}
	}
	rec.SetID(row.Record().Int64(types.IDField))
	return rec, nil
}
