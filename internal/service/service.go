package service

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/scrapledger/internal/sqlite"
)

// Typed store registrations: table name, data columns in insert order.
var (
	clientColumns = []string{
		"name", "business_name", "rut", "address", "phone", "email",
		"contact_person", "notes", "is_active", "client_type",
	}
	materialColumns = []string{
		"name", "description", "material_type", "is_plastic_subtype",
		"plastic_subtype", "plastic_state", "custom_subtype", "is_active",
	}
	userColumns = []string{
		"username", "password_hash", "name", "role", "is_active",
	}
)

// Services bundles the domain services over one store. It is the
// composition root helper: the store handle is threaded through explicitly,
// never reached through package state.
type Services struct {
	Clients   *ClientService
	Materials *MaterialService
	Workers   *WorkerService
	Users     *UserService
	Pricing   *PricingService
}

// New wires all services over the given store. A nil logger disables
// logging; a nil hasher selects bcrypt.
func New(store *sqlite.Store, hasher CredentialHasher, log *zap.Logger) *Services {
	if hasher == nil {
		hasher = BcryptHasher{}
	}

	clients := sqlite.NewTypedStore(store, "clients", clientColumns, true, "name")
	materials := sqlite.NewTypedStore(store, "materials", materialColumns, true, "name")
	users := sqlite.NewTypedStore(store, "users", userColumns, true, "username")
	workers := sqlite.NewSchemalessStore(store, WorkerKind, "active")
	pairings := sqlite.NewPairingStore(store)

	return &Services{
		Clients:   NewClientService(clients, log),
		Materials: NewMaterialService(materials, pairings, log),
		Workers:   NewWorkerService(workers, log),
		Users:     NewUserService(users, hasher, log),
		Pricing:   NewPricingService(pairings, materials, log),
	}
}
