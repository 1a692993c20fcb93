package schema

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// EncodeBSON renders a record as a BSON document keyed by internal names
// (or the field's bson= override). Excluded fields are dropped here too.
func EncodeBSON(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("schema: cannot encode nil")
		}
		rv = rv.Elem()
	}
	doc, err := bsonDocument(rv)
	if err != nil {
		return nil, err
	}
	return bson.Marshal(doc)
}

func bsonDocument(rv reflect.Value) (bson.D, error) {
	d, err := describeType(rv.Type())
	if err != nil {
		return nil, err
	}
	doc := make(bson.D, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Exclude {
			continue
		}
		fv := rv.FieldByIndex(f.Index)
		switch fv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if fv.IsNil() {
				continue
			}
		case reflect.Slice:
			if fv.IsNil() {
				if !f.HasDefault {
					continue
				}
				fv = reflect.MakeSlice(fv.Type(), 0, 0)
			}
		case reflect.Map:
			if fv.IsNil() {
				if !f.HasDefault {
					continue
				}
				fv = reflect.MakeMap(fv.Type())
			}
		}
		doc = append(doc, bson.E{Key: f.BSON, Value: fv.Interface()})
	}
	return doc, nil
}

// DecodeBSON is the BSON counterpart of Decode. Keys are matched by bson key,
// internal name, then wire alias, and the same validation policy applies.
func DecodeBSON(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("schema: DecodeBSON requires a non-nil pointer, got %T", v)
	}
	d, err := describeType(rv.Elem().Type())
	if err != nil {
		return err
	}
	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return Invalid(d.Entity, "", "malformed BSON document")
	}

	out := reflect.New(d.Type).Elem()
	for _, f := range d.Fields {
		field := out.FieldByIndex(f.Index)
		val, present := lookupBSON(raw, f)
		if !present || val.Type == bsontype.Null {
			if err := fillAbsent(d, f, field, present); err != nil {
				return err
			}
			continue
		}
		if err := val.Unmarshal(field.Addr().Interface()); err != nil {
			e := prefixed(f.Name, err)
			e.Entity = d.Entity
			return e
		}
	}
	if err := d.check(out); err != nil {
		return err
	}
	rv.Elem().Set(out)
	return nil
}

func lookupBSON(raw bson.Raw, f *Field) (bson.RawValue, bool) {
	for _, key := range []string{f.BSON, f.Name, f.Wire} {
		if val, err := raw.LookupErr(key); err == nil {
			return val, true
		}
	}
	return bson.RawValue{}, false
}
