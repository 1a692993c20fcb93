package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Naming selects which spelling of each field is emitted.
type Naming int

const (
	WireNames Naming = iota
	InternalNames
)

// ParseNaming maps "wire"/"internal" (empty means wire) to a Naming.
func ParseNaming(s string) (Naming, error) {
	switch s {
	case "", "wire", "alias":
		return WireNames, nil
	case "internal", "snake":
		return InternalNames, nil
	default:
		return WireNames, fmt.Errorf("schema: unknown naming %q", s)
	}
}

// Encode serializes a record with wire names. Excluded fields are always dropped.
func Encode(v any) ([]byte, error) {
	return EncodeAs(v, WireNames)
}

func EncodeAs(v any, naming Naming) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []byte("null"), nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("schema: cannot encode nil")
	}
	if _, err := describeType(rv.Type()); err != nil {
		return nil, err
	}
	return encodeRecord(rv, naming)
}

// ToMap renders a record as a generic map under the given naming.
func ToMap(v any, naming Naming) (map[string]any, error) {
	data, err := EncodeAs(v, naming)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("schema: decode map: %w", err)
	}
	return m, nil
}

func encodeRecord(rv reflect.Value, naming Naming) ([]byte, error) {
	d, err := describeType(rv.Type())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	wrote := false
	for _, f := range d.Fields {
		if f.Exclude {
			continue
		}
		val, ok, err := encodeField(f, rv.FieldByIndex(f.Index), naming)
		if err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", d.Entity, f.Name, err)
		}
		if !ok {
			continue
		}
		if wrote {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(f.key(naming))
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		wrote = true
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeField returns ok=false when the field is absent and must be omitted.
func encodeField(f *Field, fv reflect.Value, naming Naming) ([]byte, bool, error) {
	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if fv.IsNil() {
			return nil, false, nil
		}
	case reflect.Slice, reflect.Map:
		if fv.IsNil() {
			if !f.HasDefault {
				return nil, false, nil
			}
			return []byte(f.Default), true, nil
		}
	}
	val, err := encodeValue(fv, naming)
	return val, err == nil, err
}

func encodeValue(v reflect.Value, naming Naming) ([]byte, error) {
	t := v.Type()
	switch {
	case t.Kind() == reflect.Pointer:
		if v.IsNil() {
			return []byte("null"), nil
		}
		return encodeValue(v.Elem(), naming)
	case t == timeType:
		return json.Marshal(v.Interface())
	case t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8:
		if v.IsNil() {
			return []byte("null"), nil
		}
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			item, err := encodeValue(v.Index(i), naming)
			if err != nil {
				return nil, err
			}
			buf.Write(item)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case isRecord(t):
		return encodeRecord(v, naming)
	}
	return json.Marshal(v.Interface())
}
