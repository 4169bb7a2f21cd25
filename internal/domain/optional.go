package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field for partial-update payloads. It
// distinguishes the three cases a plain pointer cannot:
//
//   - absent from the payload  -> IsSet() == false (leave stored value)
//   - present as JSON null     -> IsSet() && IsNull() (clear the column)
//   - present with a value     -> IsSet() && !IsNull()
//
// The zero value means "absent". A field only transitions out of the zero
// state when the JSON decoder calls UnmarshalJSON, which only happens for
// keys present in the payload.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v. Mostly useful in tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional that is present but explicitly null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the payload at all.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field appeared as an explicit JSON null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Value returns the decoded value and whether one is actually present
// (set and not null).
func (o Optional[T]) Value() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// UnmarshalJSON implements json.Unmarshaler. Being invoked at all marks
// the field as set; a literal null additionally marks it null.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.null = true
		return nil
	}
	return json.Unmarshal(b, &o.value)
}

// MarshalJSON implements json.Marshaler. Absent and null both encode as
// null; Optional fields are not expected in response bodies.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
