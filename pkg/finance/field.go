package finance

import (
	"math"
	"strconv"
	"strings"
)

// Field is a numeric form value validated once at the submission boundary: the
// raw text, the parsed number, and whether parsing produced a finite value.
// Unparsed strings never travel past this type into the calculation engine.
type Field struct {
	Raw   string
	Value float64
	Valid bool
}

// ParseField parses a numeric form string into a Field. Empty or non-numeric
// input yields an invalid Field rather than an error.
func ParseField(raw string) Field {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Field{Raw: raw}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Field{Raw: raw}
	}
	return Field{Raw: raw, Value: value, Valid: true}
}

// Positive reports whether the field parsed to a strictly positive number.
func (f Field) Positive() bool {
	return f.Valid && f.Value > 0
}

// PositiveInt returns the field as a positive whole number. The second return
// is false when the field is invalid, non-positive, or fractional.
func (f Field) PositiveInt() (int, bool) {
	if !f.Positive() || f.Value != math.Trunc(f.Value) {
		return 0, false
	}
	return int(f.Value), true
}
