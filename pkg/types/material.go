package types

import "fmt"

// Material type values.
const (
	MaterialTypePlastic = "plastic"
	MaterialTypeCustom  = "custom"
)

// Plastic subtype values, used when a material is a plastic subtype.
const (
	PlasticSubtypeCandy = "candy"
	PlasticSubtypeGum   = "gum"
	PlasticSubtypeOther = "other"
)

// Plastic state values.
const (
	PlasticStateClean = "clean"
	PlasticStateDirty = "dirty"
)

// Material represents a recyclable material handled by the business.
type Material struct {
	ID               *int64
	Name             string
	Description      string
	MaterialType     string
	IsPlasticSubtype bool
	PlasticSubtype   string
	PlasticState     string
	CustomSubtype    string
	IsActive         bool
}

// MaterialFromRecord builds a Material from a stored record.
func MaterialFromRecord(r Record) *Material {
	return &Material{
		ID:               r.ID(),
		Name:             r.String("name"),
		Description:      r.String("description"),
		MaterialType:     r.String("material_type"),
		IsPlasticSubtype: r.Bool("is_plastic_subtype"),
		PlasticSubtype:   r.String("plastic_subtype"),
		PlasticState:     r.String("plastic_state"),
		CustomSubtype:    r.String("custom_subtype"),
		IsActive:         r.Bool("is_active"),
	}
}

// ToRecord converts the material to its storage representation.
func (m *Material) ToRecord() Record {
	r := Record{
		"name":               m.Name,
		"description":        m.Description,
		"material_type":      m.MaterialType,
		"is_plastic_subtype": m.IsPlasticSubtype,
		"plastic_subtype":    m.PlasticSubtype,
		"plastic_state":      m.PlasticState,
		"custom_subtype":     m.CustomSubtype,
		"is_active":          m.IsActive,
	}
	if m.ID != nil {
		r.SetID(*m.ID)
	}
	return r
}

// FullName returns the display name including the plastic subtype and state
// when present. Custom materials show the bare name.
func (m *Material) FullName() string {
	if m.MaterialType == MaterialTypeCustom || !m.IsPlasticSubtype {
		return m.Name
	}
	subtype := m.PlasticSubtype
	if m.PlasticSubtype == PlasticSubtypeOther && m.CustomSubtype != "" {
		subtype = m.CustomSubtype
	}
	return fmt.Sprintf("%s (%s, %s)", m.Name, subtype, m.PlasticState)
}
