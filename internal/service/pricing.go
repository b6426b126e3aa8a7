package service

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/scrapledger/internal/sqlite"
	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// PricingService manages the priced client-material pairing: which
// materials a client trades, at what price, and which are still available
// to pair. Value validation happens here; the pairing store below only
// guarantees pair uniqueness.
type PricingService struct {
	pairings  *sqlite.PairingStore
	materials sqlite.EntityStore
	log       *zap.Logger
}

// NewPricingService returns a pricing service.
func NewPricingService(pairings *sqlite.PairingStore, materials sqlite.EntityStore, log *zap.Logger) *PricingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PricingService{pairings: pairings, materials: materials, log: log}
}

// ListForClient returns the client's pairings with their materials, ordered
// by material name.
func (s *PricingService) ListForClient(clientID int64) ([]types.PricedMaterial, error) {
	out, err := s.pairings.ListForClient(clientID)
	if err != nil {
		s.log.Error("listing client pairings", zap.Int64("client_id", clientID), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// AvailableForClient returns the active materials not yet paired with the
// client: the complement of the client's paired set within all active
// materials. The two sets are disjoint and together cover every active
// material.
func (s *PricingService) AvailableForClient(clientID int64) ([]*types.Material, error) {
	recs, err := s.materials.GetAll(false)
	if err != nil {
		return nil, err
	}
	pairedIDs, err := s.pairings.MaterialIDsForClient(clientID)
	if err != nil {
		return nil, err
	}

	paired := make(map[int64]bool, len(pairedIDs))
	for _, id := range pairedIDs {
		paired[id] = true
	}

	all := lo.Map(recs, func(r types.Record, _ int) *types.Material {
		return types.MaterialFromRecord(r)
	})
	return lo.Filter(all, func(m *types.Material, _ int) bool {
		return m.ID != nil && !paired[*m.ID]
	}), nil
}

// Assign creates a pairing between the client and the material. A pair that
// already exists fails with types.ErrDuplicatePair; updating its price goes
// through Update instead.
func (s *PricingService) Assign(clientID, materialID int64, price float64, includesTax bool, notes string) (*types.Pairing, error) {
	if err := validatePairing(clientID, materialID, price); err != nil {
		return nil, err
	}

	pairing, err := s.pairings.Create(&types.Pairing{
		ClientID:    clientID,
		MaterialID:  materialID,
		Price:       price,
		IncludesTax: includesTax,
		Notes:       notes,
	})
	if err != nil {
		s.log.Error("assigning material",
			zap.Int64("client_id", clientID), zap.Int64("material_id", materialID), zap.Error(err))
		return nil, err
	}
	return pairing, nil
}

// Get returns the pairing with the given identity, or nil when absent.
func (s *PricingService) Get(id int64) (*types.Pairing, error) {
	return s.pairings.Get(id)
}

// Update changes the price, tax flag, and notes of an existing pairing.
func (s *PricingService) Update(p *types.Pairing) error {
	if p.ID == nil {
		return types.ErrInvalidID
	}
	if err := validatePairing(p.ClientID, p.MaterialID, p.Price); err != nil {
		return err
	}
	return s.pairings.Update(p)
}

// Remove deletes the pairing and reports whether one was removed.
func (s *PricingService) Remove(id int64) (bool, error) {
	return s.pairings.Delete(id)
}

// validatePairing rejects negative identities and prices. Identity zero is
// valid on both sides of the pair.
func validatePairing(clientID, materialID int64, price float64) error {
	switch {
	case clientID < 0:
		return fmt.Errorf("client id must not be negative: %w", types.ErrValidation)
	case materialID < 0:
		return fmt.Errorf("material id must not be negative: %w", types.ErrValidation)
	case price < 0:
		return fmt.Errorf("price must not be negative: %w", types.ErrValidation)
	}
	return nil
}
