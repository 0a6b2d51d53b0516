package torn

import (
	"bytes"
	"strconv"
	"strings"
)

// Int64 decodes a JSON number or numeric string. Anything else yields Valid=false.
type Int64 struct {
	Value int64
	Valid bool
}

func (n *Int64) UnmarshalJSON(b []byte) error {
	n.Value, n.Valid = 0, false
	s, ok := scalar(b)
	if !ok {
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		n.Value, n.Valid = v, true
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.Value, n.Valid = int64(f), true
	}
	return nil
}

// Float64 decodes a JSON number or numeric string. Anything else yields Valid=false.
type Float64 struct {
	Value float64
	Valid bool
}

func (n *Float64) UnmarshalJSON(b []byte) error {
	n.Value, n.Valid = 0, false
	s, ok := scalar(b)
	if !ok {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.Value, n.Valid = f, true
	}
	return nil
}

// ParseFloat parses a raw JSON scalar leniently
func ParseFloat(raw []byte) (float64, bool) {
	var f Float64
	_ = f.UnmarshalJSON(raw)
	return f.Value, f.Valid
}

func scalar(b []byte) (string, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", false
	}
	if b[0] == '{' || b[0] == '[' {
		return "", false
	}
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" {
		return "", false
	}
	return s, true
}
