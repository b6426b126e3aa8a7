// Package sqlite implements the embedded storage backend for scrapledger:
// a single SQLite file holding typed entity tables, schema-less payload
// tables, and the priced client-material pairing table.
package sqlite

// Baseline schema DDL. Every statement is idempotent so opening an existing
// database is a no-op.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name TEXT,
    role TEXT DEFAULT 'user',
    is_active INTEGER DEFAULT 1,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`

	createClients = `CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    business_name TEXT NOT NULL,
    rut TEXT NOT NULL,
    address TEXT,
    phone TEXT,
    email TEXT,
    contact_person TEXT,
    notes TEXT,
    is_active INTEGER DEFAULT 1,
    client_type TEXT DEFAULT 'both',
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`

	createMaterials = `CREATE TABLE IF NOT EXISTS materials (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    material_type TEXT NOT NULL,
    is_plastic_subtype INTEGER DEFAULT 0,
    plastic_subtype TEXT,
    plastic_state TEXT,
    custom_subtype TEXT,
    is_active INTEGER DEFAULT 1,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`

	createClientMaterials = `CREATE TABLE IF NOT EXISTS client_materials (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    client_id INTEGER NOT NULL,
    material_id INTEGER NOT NULL,
    price REAL DEFAULT 0.0,
    includes_tax INTEGER DEFAULT 0,
    notes TEXT,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(client_id, material_id)
);`
)

// Index DDL for common lookups.
const (
	idxUsersUsername  = `CREATE INDEX IF NOT EXISTS idx_users_username ON users (username);`
	idxUsersRole      = `CREATE INDEX IF NOT EXISTS idx_users_role ON users (role);`
	idxClientsName    = `CREATE INDEX IF NOT EXISTS idx_clients_name ON clients (name);`
	idxClientsRUT     = `CREATE INDEX IF NOT EXISTS idx_clients_rut ON clients (rut);`
	idxClientsType    = `CREATE INDEX IF NOT EXISTS idx_clients_type ON clients (client_type);`
	idxMaterialsName  = `CREATE INDEX IF NOT EXISTS idx_materials_name ON materials (name);`
	idxMaterialsType  = `CREATE INDEX IF NOT EXISTS idx_materials_type ON materials (material_type);`
	idxPairingsClient = `CREATE INDEX IF NOT EXISTS idx_cm_client ON client_materials (client_id);`
	idxPairingsMat    = `CREATE INDEX IF NOT EXISTS idx_cm_material ON client_materials (material_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createClients,
	createMaterials,
	createClientMaterials,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxUsersUsername,
	idxUsersRole,
	idxClientsName,
	idxClientsRUT,
	idxClientsType,
	idxMaterialsName,
	idxMaterialsType,
	idxPairingsClient,
	idxPairingsMat,
}
