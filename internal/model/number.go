package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a price-like JSON scalar. The upstream feed is loose about
// these fields: the same column can arrive as a number, a numeric string,
// or null, and strings are occasionally unparseable. Unparseable values
// coerce to NaN so they render as a placeholder instead of failing the
// whole record.
type Number struct {
	Float64 float64
	Valid   bool
}

// Num builds a defined Number, mostly for tests and fixtures.
func Num(f float64) Number {
	return Number{Float64: f, Valid: true}
}

// Defined reports whether the value is present and finite. NaN from an
// unparseable string counts as missing for sorting and margin math.
func (n Number) Defined() bool {
	return n.Valid && !math.IsNaN(n.Float64) && !math.IsInf(n.Float64, 0)
}

// Positive reports whether the value is defined and greater than zero.
func (n Number) Positive() bool {
	return n.Defined() && n.Float64 > 0
}

// UnmarshalJSON accepts numbers, numeric strings, and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*n = Number{}
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = Number{Float64: math.NaN(), Valid: true}
			return nil
		}
		*n = Number{Float64: f, Valid: true}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		// Not a number and not a string: keep the record, drop the value.
		*n = Number{Float64: math.NaN(), Valid: true}
		return nil
	}
	*n = Number{Float64: f, Valid: true}
	return nil
}

// MarshalJSON emits a plain number, or null for missing and non-finite
// values (JSON has no NaN).
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Defined() {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}
