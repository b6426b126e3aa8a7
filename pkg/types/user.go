package types

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an application account. PasswordHash holds the digest
// produced by the credential hasher; the plaintext never reaches storage.
type User struct {
	ID           *int64
	Username     string
	PasswordHash string
	Name         string
	Role         string
	IsActive     bool
}

// UserFromRecord builds a User from a stored record.
func UserFromRecord(r Record) *User {
	u := &User{
		ID:           r.ID(),
		Username:     r.String("username"),
		PasswordHash: r.String("password_hash"),
		Name:         r.String("name"),
		Role:         r.String("role"),
		IsActive:     r.Bool("is_active"),
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return u
}

// ToRecord converts the user to its storage representation.
func (u *User) ToRecord() Record {
	r := Record{
		"username":      u.Username,
		"password_hash": u.PasswordHash,
		"name":          u.Name,
		"role":          u.Role,
		"is_active":     u.IsActive,
	}
	if u.ID != nil {
		r.SetID(*u.ID)
	}
	return r
}
