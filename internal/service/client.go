package service

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/scrapledger/internal/sqlite"
	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// ClientService manages client records: validation, search, and logical
// deletion over the generic client store.
type ClientService struct {
	store sqlite.EntityStore
	log   *zap.Logger
}

// NewClientService returns a client service. A nil logger disables logging.
func NewClientService(store sqlite.EntityStore, log *zap.Logger) *ClientService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClientService{store: store, log: log}
}

// GetAll returns clients, active-only unless includeInactive is set,
// ordered by name.
func (s *ClientService) GetAll(includeInactive bool) ([]*types.Client, error) {
	recs, err := s.store.GetAll(includeInactive)
	if err != nil {
		s.log.Error("listing clients", zap.Error(err))
		return nil, err
	}
	return lo.Map(recs, func(r types.Record, _ int) *types.Client {
		return types.ClientFromRecord(r)
	}), nil
}

// GetByID returns the client, or nil when no client has that identity.
// Inactive clients are still returned; only listings hide them.
func (s *ClientService) GetByID(id int64) (*types.Client, error) {
	rec, err := s.store.GetByID(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return types.ClientFromRecord(rec), nil
}

// Search returns active clients whose name, business name, RUT, or contact
// person contains the term, case-insensitively. Filtering happens over the
// materialized active list; client counts are small.
func (s *ClientService) Search(term string) ([]*types.Client, error) {
	clients, err := s.GetAll(false)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return clients, nil
	}
	return lo.Filter(clients, func(c *types.Client, _ int) bool {
		return containsFold(c.Name, needle) ||
			containsFold(c.BusinessName, needle) ||
			containsFold(c.RUT, needle) ||
			containsFold(c.ContactPerson, needle)
	}), nil
}

// Save validates and persists the client, creating it when it has no
// identity. The assigned identity, zero included, is written back to the
// client.
func (s *ClientService) Save(c *types.Client) error {
	if err := validateClient(c); err != nil {
		return err
	}
	if c.ClientType == "" {
		c.ClientType = types.ClientTypeBoth
	}

	saved, err := s.store.Save(c.ToRecord())
	if err != nil {
		s.log.Error("saving client", zap.String("name", c.Name), zap.Error(err))
		return err
	}
	c.ID = saved.ID()
	return nil
}

// Delete marks the client inactive. The record stays in storage and direct
// lookups keep returning it.
func (s *ClientService) Delete(id int64) error {
	rec, err := s.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("client %d: %w", id, types.ErrNotFound)
	}
	rec["is_active"] = false
	if _, err := s.store.Save(rec); err != nil {
		s.log.Error("deleting client", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func validateClient(c *types.Client) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("client name is required: %w", types.ErrValidation)
	case strings.TrimSpace(c.BusinessName) == "":
		return fmt.Errorf("client business name is required: %w", types.ErrValidation)
	case strings.TrimSpace(c.RUT) == "":
		return fmt.Errorf("client RUT is required: %w", types.ErrValidation)
	}
	return nil
}

// containsFold reports whether haystack contains the already-lowercased
// needle, ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
