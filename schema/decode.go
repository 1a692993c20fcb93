package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Decode constructs the record pointed to by v from a JSON object whose keys use
// either the wire alias or the internal name of each field. On failure v is left untouched.
func Decode(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("schema: Decode requires a non-nil pointer, got %T", v)
	}
	if _, err := describeType(rv.Elem().Type()); err != nil {
		return err
	}
	return decodeRecord(data, rv.Elem())
}

// DecodeMap constructs v from a generic map, as produced by json.Unmarshal into map[string]any.
func DecodeMap(m map[string]any, v any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("schema: encode map: %w", err)
	}
	return Decode(data, v)
}

func decodeRecord(data []byte, dst reflect.Value) error {
	d, err := describeType(dst.Type())
	if err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Invalid(d.Entity, "", ReasonNotObject)
	}
	if raw == nil && !isNull(data) {
		return Invalid(d.Entity, "", ReasonNotObject)
	}

	out := reflect.New(d.Type).Elem()
	for _, f := range d.Fields {
		field := out.FieldByIndex(f.Index)
		msg, present := lookupRaw(raw, f)
		if !present || isNull(msg) {
			if err := fillAbsent(d, f, field, present); err != nil {
				return err
			}
			continue
		}
		if err := decodeValue(msg, field); err != nil {
			e := prefixed(f.Name, err)
			e.Entity = d.Entity
			return e
		}
	}
	if err := d.check(out); err != nil {
		return err
	}
	dst.Set(out)
	return nil
}

// lookupRaw prefers the wire alias when both spellings are present.
func lookupRaw(raw map[string]json.RawMessage, f *Field) (json.RawMessage, bool) {
	if msg, ok := raw[f.Wire]; ok {
		return msg, true
	}
	msg, ok := raw[f.Name]
	return msg, ok
}

func fillAbsent(d *Descriptor, f *Field, field reflect.Value, present bool) error {
	switch {
	case f.Required && present:
		return Invalid(d.Entity, f.Name, ReasonNull)
	case f.Required:
		return Invalid(d.Entity, f.Name, ReasonRequired)
	case present && f.HasDefault && isScalar(f.Type):
		return Invalid(d.Entity, f.Name, ReasonNull)
	case f.HasDefault:
		if err := applyDefault(f, field); err != nil {
			return fmt.Errorf("schema: %s.%s: %w", d.Entity, f.Name, err)
		}
	}
	return nil
}

// isScalar reports whether t is a non-nullable leaf; a null for it is never a default.
func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// applyDefault writes a freshly allocated default into field; containers are never shared.
// String defaults are taken verbatim, everything else is a JSON literal.
func applyDefault(f *Field, field reflect.Value) error {
	if f.Type.Kind() == reflect.String {
		field.SetString(f.Default)
		return nil
	}
	literal := []byte(f.Default)
	if json.Valid(literal) {
		fresh := reflect.New(f.Type)
		if err := json.Unmarshal(literal, fresh.Interface()); err != nil {
			return fmt.Errorf("bad default %q: %w", f.Default, err)
		}
		field.Set(fresh.Elem())
		return nil
	}
	return fmt.Errorf("bad default %q for %s", f.Default, f.Type)
}

func decodeValue(msg json.RawMessage, dst reflect.Value) error {
	t := dst.Type()
	switch {
	case t == timeType:
		ts, err := parseTime(msg)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(ts))
		return nil
	case t.Kind() == reflect.Pointer:
		if isNull(msg) {
			dst.SetZero()
			return nil
		}
		elem := reflect.New(t.Elem())
		if err := decodeValue(msg, elem.Elem()); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	case t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8:
		if isNull(msg) {
			dst.SetZero()
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(msg, &items); err != nil {
			return &json.UnmarshalTypeError{Value: jsonKind(msg), Type: t}
		}
		out := reflect.MakeSlice(t, len(items), len(items))
		for i, item := range items {
			if err := decodeValue(item, out.Index(i)); err != nil {
				return prefixed(fmt.Sprintf("[%d]", i), err)
			}
		}
		dst.Set(out)
		return nil
	case isRecord(t):
		return decodeRecord(msg, dst)
	}
	return json.Unmarshal(msg, dst.Addr().Interface())
}

func parseTime(msg json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return time.Time{}, errors.New("expected ISO-8601 datetime string")
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 datetime %q", s)
}

func isNull(msg []byte) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}

func jsonKind(msg []byte) string {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	case '[':
		return "array"
	default:
		return "number"
	}
}
