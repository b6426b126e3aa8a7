package sqlite

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// PairingStore manages the priced client-material association rows. It is a
// dumb storage accessor: it enforces pair uniqueness and referential shape
// but leaves value validation (non-negative price) to the pricing service.
type PairingStore struct {
	store *Store
}

// NewPairingStore returns a pairing accessor over the given store.
func NewPairingStore(store *Store) *PairingStore {
	return &PairingStore{store: store}
}

// listColumns aliases every column that would otherwise collide between the
// pairing and the material in the join. The material identity is read from
// the pairing's material_id, never from an ambiguous joined column.
const listColumns = `cm.id AS pairing_id, cm.client_id, cm.material_id,
       cm.price, cm.includes_tax, cm.notes AS pairing_notes,
       m.name, m.description, m.material_type, m.is_plastic_subtype,
       m.plastic_subtype, m.plastic_state, m.custom_subtype, m.is_active`

// ListForClient returns every pairing of the client together with the
// priced material, ordered by material name.
func (p *PairingStore) ListForClient(clientID int64) ([]types.PricedMaterial, error) {
	stmt := `SELECT ` + listColumns + `
FROM client_materials cm
JOIN materials m ON m.id = cm.material_id
WHERE cm.client_id = ?
ORDER BY m.name`

	rows, err := p.store.Query(stmt, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]types.PricedMaterial, 0, len(rows))
	for _, row := range rows {
		rec := row.Record()
		pairingID := rec.Int64("pairing_id")
		materialID := rec.Int64("material_id")

		pairing := &types.Pairing{
			ID:          &pairingID,
			ClientID:    rec.Int64("client_id"),
			MaterialID:  materialID,
			Price:       rec.Float64("price"),
			IncludesTax: rec.Bool("includes_tax"),
			Notes:       rec.String("pairing_notes"),
		}
		material := types.MaterialFromRecord(rec)
		material.ID = &materialID

		out = append(out, types.PricedMaterial{Pairing: pairing, Material: material})
	}
	return out, nil
}

// MaterialIDsForClient returns the identities of materials already paired
// with the client.
func (p *PairingStore) MaterialIDsForClient(clientID int64) ([]int64, error) {
	rows, err := p.store.Query(
		"SELECT material_id FROM client_materials WHERE client_id = ?", clientID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Record().Int64("material_id"))
	}
	return ids, nil
}

// Get returns the pairing with the given identity, or nil when absent.
func (p *PairingStore) Get(id int64) (*types.Pairing, error) {
	rows, err := p.store.Query(
		"SELECT id, client_id, material_id, price, includes_tax, notes FROM client_materials WHERE id = ?",
		id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return pairingFromRecord(rows[0].Record()), nil
}

// Create inserts a new pairing. A second pairing for the same
// (client, material) pair fails with types.ErrDuplicatePair and leaves the
// table unchanged. The existence check and the insert cannot interleave
// with another writer because all access shares the store's single handle.
func (p *PairingStore) Create(pairing *types.Pairing) (*types.Pairing, error) {
	existing, err := p.store.Query(
		"SELECT id FROM client_materials WHERE client_id = ? AND material_id = ?",
		pairing.ClientID, pairing.MaterialID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("client %d, material %d: %w",
			pairing.ClientID, pairing.MaterialID, types.ErrDuplicatePair)
	}

	id, err := p.store.Insert(
		"INSERT INTO client_materials (client_id, material_id, price, includes_tax, notes) VALUES (?, ?, ?, ?, ?)",
		pairing.ClientID, pairing.MaterialID, pairing.Price,
		boolToInt(pairing.IncludesTax), pairing.Notes)
	if err != nil {
		// Backstop: the unique index reports the race the pre-check
		// cannot see if a second handle ever appears.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("client %d, material %d: %w",
				pairing.ClientID, pairing.MaterialID, types.ErrDuplicatePair)
		}
		return nil, err
	}

	out := *pairing
	out.ID = &id
	return &out, nil
}

// Update changes price, tax flag, and notes by pairing identity. The client
// and material identities are immutable; changing the pair means delete and
// recreate. An update matching no row returns types.ErrNotFound.
func (p *PairingStore) Update(pairing *types.Pairing) error {
	if pairing.ID == nil {
		return types.ErrInvalidID
	}
	n, err := p.store.Exec(
		"UPDATE client_materials SET price = ?, includes_tax = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		pairing.Price, boolToInt(pairing.IncludesTax), pairing.Notes, *pairing.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("updating pairing %d: %w", *pairing.ID, types.ErrNotFound)
	}
	return nil
}

// Delete removes the pairing and reports whether a row was removed.
func (p *PairingStore) Delete(id int64) (bool, error) {
	n, err := p.store.Exec("DELETE FROM client_materials WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountForMaterial returns how many pairings reference the material.
func (p *PairingStore) CountForMaterial(materialID int64) (int64, error) {
	rows, err := p.store.Query(
		"SELECT COUNT(*) AS n FROM client_materials WHERE material_id = ?", materialID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Record().Int64("n"), nil
}

func pairingFromRecord(rec types.Record) *types.Pairing {
	id := rec.Int64(types.IDField)
	return &types.Pairing{
		ID:          &id,
		ClientID:    rec.Int64("client_id"),
		MaterialID:  rec.Int64("material_id"),
		Price:       rec.Float64("price"),
		IncludesTax: rec.Bool("includes_tax"),
		Notes:       rec.String("notes"),
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// isUniqueViolation reports whether the error is a UNIQUE constraint
// failure from the driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
