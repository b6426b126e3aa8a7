package types

// Client type values. A client can sell material to the business, buy from
// it, or both.
const (
	ClientTypeSupplier = "supplier"
	ClientTypeBuyer    = "buyer"
	ClientTypeBoth     = "both"
)

// Client represents a commercial counterpart of the recycling business.
type Client struct {
	ID            *int64
	Name          string
	BusinessName  string
	RUT           string
	Address       string
	Phone         string
	Email         string
	ContactPerson string
	Notes         string
	IsActive      bool
	ClientType    string
}

// ClientFromRecord builds a Client from a stored record.
func ClientFromRecord(r Record) *Client {
	c := &Client{
		ID:            r.ID(),
		Name:          r.String("name"),
		BusinessName:  r.String("business_name"),
		RUT:           r.String("rut"),
		Address:       r.String("address"),
		Phone:         r.String("phone"),
		Email:         r.String("email"),
		ContactPerson: r.String("contact_person"),
		Notes:         r.String("notes"),
		IsActive:      r.Bool("is_active"),
		ClientType:    r.String("client_type"),
	}
	if c.ClientType == "" {
		c.ClientType = ClientTypeBoth
	}
	return c
}

// ToRecord converts the client to its storage representation. The identity
// is attached only when the client has one.
func (c *Client) ToRecord() Record {
	r := Record{
		"name":           c.Name,
		"business_name":  c.BusinessName,
		"rut":            c.RUT,
		"address":        c.Address,
		"phone":          c.Phone,
		"email":          c.Email,
		"contact_person": c.ContactPerson,
		"notes":          c.Notes,
		"is_active":      c.IsActive,
		"client_type":    c.ClientType,
	}
	if c.ID != nil {
		r.SetID(*c.ID)
	}
	return r
}
