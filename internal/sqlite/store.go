package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// Store owns the single connection to the embedded database. Exactly one
// live handle exists per Store; the pool is capped at one connection so
// statements from concurrent callers serialize instead of interleaving
// writer transactions.
type Store struct {
	mu     sync.Mutex
	config types.Config
	db     *sql.DB

	// kinds tracks schema-less tables already verified this process
	// lifetime, so the CREATE TABLE IF NOT EXISTS is issued once per kind.
	kinds map[string]bool
}

// New returns a Store for the given configuration. No file is touched until
// Open or the first Handle call.
func New(config types.Config) *Store {
	return &Store{
		config: config,
		kinds:  make(map[string]bool),
	}
}

// Open creates the data directory and database file if absent, applies the
// baseline schema, and keeps the handle for later calls. Open is idempotent:
// a second call on an open store is a no-op.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.openLocked()
	return err
}

// Handle returns the live database handle, opening the store lazily if it
// was never opened.
func (s *Store) Handle() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openLocked()
}

// Close releases the handle. Safe to call multiple times; closing a store
// that was never opened is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.kinds = make(map[string]bool)
	if err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}

// Path returns the full path of the database file.
func (s *Store) Path() string {
	return filepath.Join(s.config.DataDir, s.config.File())
}

// openLocked opens the handle and applies the schema. Caller holds s.mu.
func (s *Store) openLocked() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data dir %s: %v",
			types.ErrStorageUnavailable, s.config.DataDir, err)
	}

	// The _pragma options apply to every pooled connection, so foreign key
	// enforcement survives connection recycling.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", s.Path())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", types.ErrStorageUnavailable, s.Path(), err)
	}
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s.db, nil
}

// applySchema runs the idempotent baseline DDL.
func applySchema(db *sql.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w: applying schema: %v", types.ErrStorageUnavailable, err)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w: creating index: %v", types.ErrStorageUnavailable, err)
		}
	}
	return nil
}
