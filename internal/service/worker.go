package service

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/scrapledger/internal/sqlite"
	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// WorkerKind is the schema-less kind backing worker records.
const WorkerKind = "workers"

// WorkerService manages worker records over the schema-less store, so
// payroll fields can evolve without schema changes.
type WorkerService struct {
	store sqlite.EntityStore
	log   *zap.Logger
}

// NewWorkerService returns a worker service.
func NewWorkerService(store sqlite.EntityStore, log *zap.Logger) *WorkerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &WorkerService{store: store, log: log}
}

// GetAll returns workers, active-only unless includeInactive is set.
func (s *WorkerService) GetAll(includeInactive bool) ([]*types.Worker, error) {
	recs, err := s.store.GetAll(includeInactive)
	if err != nil {
		s.log.Error("listing workers", zap.Error(err))
		return nil, err
	}
	return lo.Map(recs, func(r types.Record, _ int) *types.Worker {
		return types.WorkerFromRecord(r)
	}), nil
}

// GetByID returns the worker, or nil when absent.
func (s *WorkerService) GetByID(id int64) (*types.Worker, error) {
	rec, err := s.store.GetByID(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return types.WorkerFromRecord(rec), nil
}

// GetByRUT returns the worker with the given RUT, comparing
// case-insensitively, or nil when none matches.
func (s *WorkerService) GetByRUT(rut string) (*types.Worker, error) {
	workers, err := s.GetAll(true)
	if err != nil {
		return nil, err
	}
	w, _ := lo.Find(workers, func(w *types.Worker) bool {
		return strings.EqualFold(w.RUT, rut)
	})
	return w, nil
}

// Search returns active workers whose name or RUT contains the term,
// case-insensitively.
func (s *WorkerService) Search(term string) ([]*types.Worker, error) {
	workers, err := s.GetAll(false)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return workers, nil
	}
	return lo.Filter(workers, func(w *types.Worker, _ int) bool {
		return containsFold(w.Name, needle) || containsFold(w.RUT, needle)
	}), nil
}

// Save validates and persists the worker, writing the assigned identity
// back on creation. A new worker with a RUT already on file is rejected.
func (s *WorkerService) Save(w *types.Worker) error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("worker name is required: %w", types.ErrValidation)
	}
	if w.ID == nil && w.RUT != "" {
		existing, err := s.GetByRUT(w.RUT)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("worker RUT %s already registered: %w", w.RUT, types.ErrValidation)
		}
	}

	saved, err := s.store.Save(w.ToRecord())
	if err != nil {
		s.log.Error("saving worker", zap.String("name", w.Name), zap.Error(err))
		return err
	}
	w.ID = saved.ID()
	return nil
}

// Delete marks the worker inactive.
func (s *WorkerService) Delete(id int64) error {
	rec, err := s.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("worker %d: %w", id, types.ErrNotFound)
	}
	rec["active"] = false
	if _, err := s.store.Save(rec); err != nil {
		s.log.Error("deleting worker", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ToggleStatus flips the worker between active and inactive and returns the
// updated worker, or nil when the worker does not exist.
func (s *WorkerService) ToggleStatus(id int64) (*types.Worker, error) {
	rec, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	rec["active"] = !rec.Bool("active")
	if _, err := s.store.Save(rec); err != nil {
		return nil, err
	}
	return types.WorkerFromRecord(rec), nil
}
