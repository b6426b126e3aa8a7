package types

// Worker represents an employee of the recycling business. Workers are
// stored as a schema-less kind: the whole struct (minus ID) is serialized
// into a payload column, so new fields never require a schema change.
type Worker struct {
	ID          *int64         `json:"-"`
	Name        string         `json:"name"`
	RUT         string         `json:"rut"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Email       string         `json:"email"`
	Role        string         `json:"role"`
	Salary      float64        `json:"salary"`
	Active      bool           `json:"active"`
	StartDate   string         `json:"start_date,omitempty"` // ISO date, empty when unset
	EndDate     string         `json:"end_date,omitempty"`
	Notes       string         `json:"notes"`
	PaymentInfo map[string]any `json:"payment_info,omitempty"`
	Materials   []string       `json:"materials,omitempty"`
}

// WorkerFromRecord builds a Worker from a decoded schema-less record.
func WorkerFromRecord(r Record) *Worker {
	w := &Worker{
		ID:        r.ID(),
		Name:      r.String("name"),
		RUT:       r.String("rut"),
		Phone:     r.String("phone"),
		Address:   r.String("address"),
		Email:     r.String("email"),
		Role:      r.String("role"),
		Salary:    r.Float64("salary"),
		Active:    r.Bool("active"),
		StartDate: r.String("start_date"),
		EndDate:   r.String("end_date"),
		Notes:     r.String("notes"),
	}
	if pi, ok := r["payment_info"].(map[string]any); ok {
		w.PaymentInfo = pi
	}
	switch ms := r["materials"].(type) {
	case []string:
		w.Materials = ms
	case []any:
		for _, m := range ms {
			if s, ok := m.(string); ok {
				w.Materials = append(w.Materials, s)
			}
		}
	}
	return w
}

// ToRecord converts the worker to its storage representation.
func (w *Worker) ToRecord() Record {
	r := Record{
		"name":    w.Name,
		"rut":     w.RUT,
		"phone":   w.Phone,
		"address": w.Address,
		"email":   w.Email,
		"role":    w.Role,
		"salary":  w.Salary,
		"active":  w.Active,
		"notes":   w.Notes,
	}
	if w.StartDate != "" {
		r["start_date"] = w.StartDate
	}
	if w.EndDate != "" {
		r["end_date"] = w.EndDate
	}
	if w.PaymentInfo != nil {
		r["payment_info"] = w.PaymentInfo
	}
	if w.Materials != nil {
		r["materials"] = w.Materials
	}
	if w.ID != nil {
		r.SetID(*w.ID)
	}
	return r
}
