package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/scrapledger/internal/sqlite"
	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// UserService manages application accounts. Hashing policy belongs to the
// injected CredentialHasher; this service never stores plaintext.
type UserService struct {
	store  sqlite.EntityStore
	hasher CredentialHasher
	log    *zap.Logger
}

// NewUserService returns a user service.
func NewUserService(store sqlite.EntityStore, hasher CredentialHasher, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{store: store, hasher: hasher, log: log}
}

// Authenticate returns the active user matching the credentials, or nil
// when the username is unknown, inactive, or the password does not match.
// A failed login is an absent value, not an error.
func (s *UserService) Authenticate(username, password string) (*types.User, error) {
	u, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, nil
	}
	if !s.hasher.Compare(u.PasswordHash, password) {
		s.log.Warn("failed login", zap.String("username", username))
		return nil, nil
	}
	return u, nil
}

// GetAll returns users, active-only unless includeInactive is set, ordered
// by username.
func (s *UserService) GetAll(includeInactive bool) ([]*types.User, error) {
	recs, err := s.store.GetAll(includeInactive)
	if err != nil {
		s.log.Error("listing users", zap.Error(err))
		return nil, err
	}
	return lo.Map(recs, func(r types.Record, _ int) *types.User {
		return types.UserFromRecord(r)
	}), nil
}

// GetByID returns the user, or nil when absent.
func (s *UserService) GetByID(id int64) (*types.User, error) {
	rec, err := s.store.GetByID(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return types.UserFromRecord(rec), nil
}

// GetByUsername returns the user with the given username, or nil.
func (s *UserService) GetByUsername(username string) (*types.User, error) {
	users, err := s.GetAll(true)
	if err != nil {
		return nil, err
	}
	u, _ := lo.Find(users, func(u *types.User) bool {
		return u.Username == username
	})
	return u, nil
}

// Save persists the user. On creation an initial password is generated,
// hashed, and returned in plaintext exactly once so the operator can hand
// it over; afterwards only ChangePassword can set a new one. On update the
// stored hash is preserved.
func (s *UserService) Save(u *types.User) (string, error) {
	if strings.TrimSpace(u.Username) == "" {
		return "", fmt.Errorf("username is required: %w", types.ErrValidation)
	}
	if u.Role == "" {
		u.Role = types.RoleUser
	}

	if u.ID == nil {
		existing, err := s.GetByUsername(u.Username)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return "", fmt.Errorf("username %s already taken: %w", u.Username, types.ErrValidation)
		}

		initial := uuid.NewString()[:13]
		hash, err := s.hasher.Hash(initial)
		if err != nil {
			return "", fmt.Errorf("hashing initial password: %w", err)
		}
		u.PasswordHash = hash

		saved, err := s.store.Save(u.ToRecord())
		if err != nil {
			s.log.Error("creating user", zap.String("username", u.Username), zap.Error(err))
			return "", err
		}
		u.ID = saved.ID()
		return initial, nil
	}

	// Update path: never let an empty hash clobber the stored one.
	if u.PasswordHash == "" {
		rec, err := s.store.GetByID(*u.ID)
		if err != nil {
			return "", err
		}
		if rec == nil {
			return "", fmt.Errorf("user %d: %w", *u.ID, types.ErrNotFound)
		}
		u.PasswordHash = rec.String("password_hash")
	}
	if _, err := s.store.Save(u.ToRecord()); err != nil {
		s.log.Error("updating user", zap.String("username", u.Username), zap.Error(err))
		return "", err
	}
	return "", nil
}

// ChangePassword hashes and stores a new password for the user.
func (s *UserService) ChangePassword(id int64, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password must not be empty: %w", types.ErrValidation)
	}
	rec, err := s.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("user %d: %w", id, types.ErrNotFound)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	rec["password_hash"] = hash
	_, err = s.store.Save(rec)
	return err
}

// Delete marks the user inactive so the account can be audited later.
func (s *UserService) Delete(id int64) error {
	rec, err := s.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("user %d: %w", id, types.ErrNotFound)
	}
	rec["is_active"] = false
	if _, err := s.store.Save(rec); err != nil {
		s.log.Error("deleting user", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
