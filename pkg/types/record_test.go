package types

import "testing"

func TestRecordID(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   *int64
	}{
		{"missing identity", Record{"name": "x"}, nil},
		{"nil identity", Record{IDField: nil}, nil},
		{"int64 identity", Record{IDField: int64(7)}, int64Ptr(7)},
		{"zero identity is valid", Record{IDField: int64(0)}, int64Ptr(0)},
		{"int identity", Record{IDField: 3}, int64Ptr(3)},
		{"float identity from JSON", Record{IDField: float64(5)}, int64Ptr(5)},
		{"non-numeric identity", Record{IDField: "abc"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.record.ID()
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil identity, got %d", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected identity %d, got nil", *tt.want)
			}
			if *got != *tt.want {
				t.Fatalf("expected identity %d, got %d", *tt.want, *got)
			}
		})
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestRecordSetAndClearID(t *testing.T) {
	r := Record{"name": "x"}

	r.SetID(0)
	if got := r.ID(); got == nil || *got != 0 {
		t.Fatalf("expected identity 0, got %v", got)
	}

	r.ClearID()
	if r.ID() != nil {
		t.Fatal("expected no identity after ClearID")
	}
	if r["name"] != "x" {
		t.Fatal("ClearID must not touch other fields")
	}
}

func TestRecordClone(t *testing.T) {
	r := Record{"name": "x", IDField: int64(1)}
	c := r.Clone()

	c["name"] = "y"
	c.SetID(2)

	if r.String("name") != "x" {
		t.Fatalf("clone mutation leaked into original: %v", r["name"])
	}
	if *r.ID() != 1 {
		t.Fatalf("clone identity mutation leaked into original: %d", *r.ID())
	}
}

func TestRecordStringAccessor(t *testing.T) {
	r := Record{
		"text":  "hello",
		"bytes": []byte("raw"),
		"num":   int64(5),
	}

	if got := r.String("text"); got != "hello" {
		t.Fatalf("String(text) = %q", got)
	}
	if got := r.String("bytes"); got != "raw" {
		t.Fatalf("String(bytes) = %q", got)
	}
	if got := r.String("num"); got != "" {
		t.Fatalf("String on non-text should be empty, got %q", got)
	}
	if got := r.String("absent"); got != "" {
		t.Fatalf("String on absent field should be empty, got %q", got)
	}
}

func TestRecordNumericAccessors(t *testing.T) {
	r := Record{
		"i64":     int64(9),
		"f64":     float64(2.5),
		"int":     4,
		"numText": "12",
	}

	if got := r.Int64("i64"); got != 9 {
		t.Fatalf("Int64(i64) = %d", got)
	}
	if got := r.Int64("f64"); got != 2 {
		t.Fatalf("Int64(f64) = %d", got)
	}
	if got := r.Int64("numText"); got != 12 {
		t.Fatalf("Int64(numText) = %d", got)
	}
	if got := r.Int64("absent"); got != 0 {
		t.Fatalf("Int64(absent) = %d", got)
	}
	if got := r.Float64("f64"); got != 2.5 {
		t.Fatalf("Float64(f64) = %v", got)
	}
	if got := r.Float64("int"); got != 4 {
		t.Fatalf("Float64(int) = %v", got)
	}
	if got := r.Float64("numText"); got != 12 {
		t.Fatalf("Float64(numText) = %v", got)
	}
}

func TestRecordBoolAccessor(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"native true", true, true},
		{"native false", false, false},
		{"int64 one", int64(1), true},
		{"int64 zero", int64(0), false},
		{"json float one", float64(1), true},
		{"absent", nil, false},
		{"text", "true", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{}
			if tt.value != nil {
				r["flag"] = tt.value
			}
			if got := r.Bool("flag"); got != tt.want {
				t.Fatalf("Bool(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
