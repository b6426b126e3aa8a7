package types

// Pairing is the priced association between a client and a material. At most
// one pairing exists per (ClientID, MaterialID); changing the pair requires
// delete and recreate so the uniqueness guarantee never bends.
type Pairing struct {
	ID          *int64
	ClientID    int64
	MaterialID  int64
	Price       float64
	IncludesTax bool
	Notes       string
}

// PricedMaterial couples a pairing with the material it prices, as returned
// by pairing list queries.
type PricedMaterial struct {
	Pairing  *Pairing
	Material *Material
}
