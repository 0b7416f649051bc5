package models

import (
	"encoding/json"
	"reflect"
)

// NullableString is an optional JSON string field that tells an absent key
// apart from an explicit null. Set is false when the key was absent; Value is
// nil when the key was null.
type NullableString struct {
	Set   bool
	Value *string
}

// SetString returns a NullableString holding s.
func SetString(s string) NullableString {
	return NullableString{Set: true, Value: &s}
}

// SetNull returns a NullableString holding an explicit null.
func SetNull() NullableString {
	return NullableString{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when the key is present.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// ColumnValue is the value to store: nil for an explicit null.
func (n NullableString) ColumnValue() interface{} {
	if n.Value == nil {
		return nil
	}
	return *n.Value
}

// ValidationValue is a validator.CustomTypeFunc that exposes the held string,
// so string tags such as max apply to it. Absent and null values validate as nil.
func ValidationValue(field reflect.Value) interface{} {
	n, ok := field.Interface().(NullableString)
	if !ok || n.Value == nil {
		return nil
	}
	return *n.Value
}
