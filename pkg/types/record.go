package types

import "strconv"

// IDField is the record key that carries the row identity. It is always
// populated from the storage row's identity column, never from a serialized
// payload.
const IDField = "id"

// Record is a generic entity: a mapping of field name to scalar value.
// A stored record always carries an integer identity under IDField.
// Identity zero is a legitimate value; absence of identity is modeled by the
// key being missing, not by a zero value.
type Record map[string]any

// ID returns the record identity, or nil when the record has not been
// assigned one yet.
func (r Record) ID() *int64 {
	v, ok := r[IDField]
	if !ok || v == nil {
		return nil
	}
	id, ok := toInt64(v)
	if !ok {
		return nil
	}
	return &id
}

// SetID attaches the given identity to the record.
func (r Record) SetID(id int64) {
	r[IDField] = id
}

// ClearID removes the identity so the record can be serialized without it.
func (r Record) ClearID() {
	delete(r, IDField)
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String returns the named field as a string. Missing or null fields yield "".
func (r Record) String(field string) string {
	switch v := r[field].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// Int64 returns the named field as an int64, tolerating the numeric shapes
// the SQLite driver and JSON decoding produce.
func (r Record) Int64(field string) int64 {
	v, _ := toInt64(r[field])
	return v
}

// Float64 returns the named field as a float64.
func (r Record) Float64(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Bool returns the named field as a bool. Integer columns store booleans as
// 0/1; JSON payloads store them natively.
func (r Record) Bool(field string) bool {
	switch v := r[field].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
