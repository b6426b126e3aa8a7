package sqlite

import "github.com/mesh-intelligence/scrapledger/pkg/types"

// EntityStore provides generic CRUD over one entity kind. Two strategies
// implement it: TypedStore maps record fields to named columns, and
// SchemalessStore serializes the record into a payload column. Services
// depend only on this interface; the strategy is fixed when the kind is
// registered.
type EntityStore interface {
	// Kind returns the entity kind (and backing table) name.
	Kind() string

	// GetAll returns every record of the kind, active-only by default.
	GetAll(includeInactive bool) ([]types.Record, error)

	// GetByID returns the record with the given identity, or nil when no
	// such record exists. Absence is a valid outcome, not an error.
	GetByID(id int64) (types.Record, error)

	// Save inserts the record when it carries no identity and returns it
	// with the assigned identity attached, including the legitimate value
	// zero. When an identity is present Save updates in place; an update
	// that matches no row returns types.ErrNotFound rather than silently
	// inserting.
	Save(rec types.Record) (types.Record, error)

	// Delete removes the record physically and reports whether a row was
	// removed. Logical deletion is a service concern, expressed as a Save
	// with the active flag cleared.
	Delete(id int64) (bool, error)
}
