package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric field that tolerates the loosely typed values produced
// by spreadsheet-backed storage. It decodes JSON numbers, numeric strings,
// booleans and null; anything that is not a finite number becomes 0.
type Number float64

// Float returns n as a finite float64. NaN and infinities become 0.
func (n Number) Float() float64 {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Count returns n as a non-negative integer count. Fractions are truncated,
// negative values become 0.
func (n Number) Count() int {
	f := n.Float()
	if f <= 0 {
		return 0
	}
	return int(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*n = 0
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = 0
			return nil
		}
		*n = parseNumber(s)
	case 't':
		*n = 1
	case 'f', 'n':
		*n = 0
	case '[', '{':
		*n = 0
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(f)
	}

	*n = Number(n.Float())
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Float())
}

func parseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Number(f)
}
