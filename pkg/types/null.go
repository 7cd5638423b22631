package types

import (
	"encoding/json"
	"fmt"
)

// Null holds a value that may be absent.
//
// Spreadsheet cells are frequently blank and numeric coercion is permissive, so every
// column read from a workbook is carried as a Null until a stage decides what an absent
// value means for it. The zero value is an absent value.
type Null[T comparable] struct {
	Value T
	Valid bool
}

// Some returns a present value.
func Some[T comparable](v T) Null[T] {
	return Null[T]{Value: v, Valid: true}
}

// None returns an absent value.
func None[T comparable]() Null[T] {
	return Null[T]{}
}

// Get returns the value and whether it is present.
func (n Null[T]) Get() (T, bool) {
	return n.Value, n.Valid
}

// Or returns the value if present, otherwise def.
func (n Null[T]) Or(def T) T {
	if n.Valid {
		return n.Value
	}
	return def
}

// Equal reports whether both values are absent or both are present and equal.
func (n Null[T]) Equal(other Null[T]) bool {
	if n.Valid != other.Valid {
		return false
	}
	return !n.Valid || n.Value == other.Value
}

// String renders the value with fmt, or the empty string when absent.
func (n Null[T]) String() string {
	if !n.Valid {
		return ""
	}
	return fmt.Sprint(n.Value)
}

// MarshalJSON renders an absent value as null.
func (n Null[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON treats null as an absent value.
func (n *Null[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Null[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}

// MarshalYAML renders an absent value as null.
func (n Null[T]) MarshalYAML() (any, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Value, nil
}
