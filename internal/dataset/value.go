package dataset

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var nullJSON = []byte("null")

// Value is a numeric cell that may be missing. Missing covers both an absent
// column and a cell that failed numeric coercion; it is distinct from zero
// all the way through ranking and serialization (missing marshals as null).
type Value struct {
	val   float64
	valid bool
}

func Float(v float64) Value {
	return Value{val: v, valid: true}
}

func None() Value {
	return Value{}
}

// Parse coerces a raw CSV cell. Anything that does not parse as a float is
// missing, never an error.
func Parse(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return None()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return None()
	}
	return Float(f)
}

func (v Value) Valid() bool {
	return v.valid
}

func (v Value) Float() float64 {
	return v.val
}

// Or returns the value, or def when missing.
func (v Value) Or(def float64) float64 {
	if !v.valid {
		return def
	}
	return v.val
}

// IntPtr returns the truncated value for JSON identity fields, nil when missing.
func (v Value) IntPtr() *int {
	if !v.valid {
		return nil
	}
	i := int(v.val)
	return &i
}

// FloatPtr returns the value for JSON identity fields, nil when missing.
func (v Value) FloatPtr() *float64 {
	if !v.valid {
		return nil
	}
	f := v.val
	return &f
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return nullJSON, nil
	}
	return json.Marshal(v.val)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullJSON) {
		*v = None()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Float(f)
	return nil
}
