package service

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/scrapledger/internal/sqlite"
	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// MaterialService manages material records. Deletion is the one place the
// pairing table matters: a material nothing references is removed
// physically, a priced material is only deactivated.
type MaterialService struct {
	store    sqlite.EntityStore
	pairings *sqlite.PairingStore
	log      *zap.Logger
}

// NewMaterialService returns a material service.
func NewMaterialService(store sqlite.EntityStore, pairings *sqlite.PairingStore, log *zap.Logger) *MaterialService {
	if log == nil {
		log = zap.NewNop()
	}
	return &MaterialService{store: store, pairings: pairings, log: log}
}

// GetAll returns materials, active-only unless includeInactive is set,
// ordered by name.
func (s *MaterialService) GetAll(includeInactive bool) ([]*types.Material, error) {
	recs, err := s.store.GetAll(includeInactive)
	if err != nil {
		s.log.Error("listing materials", zap.Error(err))
		return nil, err
	}
	return lo.Map(recs, func(r types.Record, _ int) *types.Material {
		return types.MaterialFromRecord(r)
	}), nil
}

// GetByID returns the material, or nil when absent.
func (s *MaterialService) GetByID(id int64) (*types.Material, error) {
	rec, err := s.store.GetByID(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return types.MaterialFromRecord(rec), nil
}

// Search returns active materials whose name or description contains the
// term, case-insensitively.
func (s *MaterialService) Search(term string) ([]*types.Material, error) {
	materials, err := s.GetAll(false)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return materials, nil
	}
	return lo.Filter(materials, func(m *types.Material, _ int) bool {
		return containsFold(m.Name, needle) || containsFold(m.Description, needle)
	}), nil
}

// Save validates and persists the material, writing the assigned identity
// back on creation.
func (s *MaterialService) Save(m *types.Material) error {
	if err := validateMaterial(m); err != nil {
		return err
	}

	saved, err := s.store.Save(m.ToRecord())
	if err != nil {
		s.log.Error("saving material", zap.String("name", m.Name), zap.Error(err))
		return err
	}
	m.ID = saved.ID()
	return nil
}

// Delete removes the material physically when no pairing references it;
// otherwise it only marks the material inactive so existing prices keep
// resolving.
func (s *MaterialService) Delete(id int64) error {
	rec, err := s.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("material %d: %w", id, types.ErrNotFound)
	}

	n, err := s.pairings.CountForMaterial(id)
	if err != nil {
		return err
	}
	if n == 0 {
		_, err := s.store.Delete(id)
		return err
	}

	rec["is_active"] = false
	if _, err := s.store.Save(rec); err != nil {
		s.log.Error("deactivating material", zap.Int64("id", id), zap.Error(err))
		return err
	}
	s.log.Info("material has pairings, deactivated instead of removed",
		zap.Int64("id", id), zap.Int64("pairings", n))
	return nil
}

func validateMaterial(m *types.Material) error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("material name is required: %w", types.ErrValidation)
	case m.MaterialType == "":
		return fmt.Errorf("material type is required: %w", types.ErrValidation)
	case m.IsPlasticSubtype && m.PlasticSubtype == "":
		return fmt.Errorf("plastic subtype is required: %w", types.ErrValidation)
	case m.PlasticSubtype == types.PlasticSubtypeOther && m.CustomSubtype == "":
		return fmt.Errorf("custom subtype name is required: %w", types.ErrValidation)
	}
	return nil
}
