package types

import "errors"

// DefaultDatabaseFile is the database file name created inside the data
// directory when the config does not override it.
const DefaultDatabaseFile = "scrapledger.db"

// Config holds storage parameters for opening a ledger store.
type Config struct {
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	DatabaseFile string `json:"database_file" yaml:"database_file"`
}

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data_dir must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}

// File returns the configured database file name, falling back to the
// default when unset.
func (c Config) File() string {
	if c.DatabaseFile == "" {
		return DefaultDatabaseFile
	}
	return c.DatabaseFile
}
