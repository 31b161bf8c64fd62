package optional

import "encoding/json"

// Field tracks JSON field presence for partial updates.
// A plain pointer cannot distinguish "field omitted" from "field": null,
// which matters for PATCH-style requests where omitted means "keep current
// value" and null means "clear the value".
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Set returns a Field holding an explicit value.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the field appeared in the request body at all.
func (f Field[T]) Present() bool {
	return f.present
}

// IsNull reports whether the field was explicitly set to JSON null.
func (f Field[T]) IsNull() bool {
	return f.present && f.null
}

// Value returns the decoded value and whether it carries one
// (present and not null).
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON is only invoked by encoding/json when the key exists,
// so reaching here at all means the field was present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if string(data) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON round-trips the wrapped value; absent fields encode as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
