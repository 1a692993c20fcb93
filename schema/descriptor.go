package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Field describes one contract field. Name is the internal (snake_case) name,
// Wire the external alias; they are equal when the field declares no alias.
type Field struct {
	Name       string
	Wire       string
	BSON       string
	Index      []int
	Type       reflect.Type
	Required   bool
	Default    string
	HasDefault bool
	Exclude    bool
}

// Aliased reports whether the field accepts a second spelling.
func (f *Field) Aliased() bool { return f.Wire != f.Name }

func (f *Field) key(naming Naming) string {
	if naming == InternalNames {
		return f.Name
	}
	return f.Wire
}

// Descriptor is the field table for one record type.
type Descriptor struct {
	Entity   string
	Type     reflect.Type
	Fields   []*Field
	byKey    map[string]*Field
	embedded map[string]bool
}

// Lookup resolves either spelling of a field.
func (d *Descriptor) Lookup(key string) (*Field, bool) {
	f, ok := d.byKey[key]
	return f, ok
}

// FieldInfo is the externally visible summary of a Field.
type FieldInfo struct {
	Name     string `json:"name"`
	Wire     string `json:"wire"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
	Excluded bool   `json:"excluded,omitempty"`
}

func (d *Descriptor) Summary() []FieldInfo {
	out := make([]FieldInfo, 0, len(d.Fields))
	for _, f := range d.Fields {
		out = append(out, FieldInfo{
			Name:     f.Name,
			Wire:     f.Wire,
			Type:     f.Type.String(),
			Required: f.Required,
			Default:  f.Default,
			Excluded: f.Exclude,
		})
	}
	return out
}

// Aliases returns the internal names of every field that declares a wire alias, sorted.
func (d *Descriptor) Aliases() []string {
	var names []string
	for _, f := range d.Fields {
		if f.Aliased() {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

var descriptors sync.Map

// Describe returns the cached descriptor for v's record type.
func Describe(v any) (*Descriptor, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil, fmt.Errorf("schema: cannot describe nil")
	}
	return describeType(t)
}

func describeType(t reflect.Type) (*Descriptor, error) {
	if d, ok := descriptors.Load(t); ok {
		return d.(*Descriptor), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", t)
	}
	d := &Descriptor{
		Entity:   t.Name(),
		Type:     t,
		byKey:    make(map[string]*Field),
		embedded: make(map[string]bool),
	}
	if err := d.collect(t, nil); err != nil {
		return nil, err
	}
	actual, _ := descriptors.LoadOrStore(t, d)
	return actual.(*Descriptor), nil
}

func (d *Descriptor) collect(t reflect.Type, index []int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int(nil), index...), i)
		tag, tagged := sf.Tag.Lookup("contract")
		if sf.Anonymous && !tagged && sf.Type.Kind() == reflect.Struct {
			d.embedded[sf.Name] = true
			if err := d.collect(sf.Type, idx); err != nil {
				return err
			}
			continue
		}
		if !sf.IsExported() || !tagged || tag == "-" {
			continue
		}
		f, err := parseField(sf, tag)
		if err != nil {
			return fmt.Errorf("schema: %s.%s: %w", d.Entity, sf.Name, err)
		}
		f.Index = idx
		for _, key := range []string{f.Name, f.Wire} {
			if prev, ok := d.byKey[key]; ok && prev != f {
				return fmt.Errorf("schema: %s: duplicate key %q", d.Entity, key)
			}
			d.byKey[key] = f
		}
		d.Fields = append(d.Fields, f)
	}
	return nil
}

func parseField(sf reflect.StructField, tag string) (*Field, error) {
	parts := strings.Split(tag, ",")
	f := &Field{Name: parts[0], Type: sf.Type}
	if f.Name == "" {
		return nil, fmt.Errorf("empty internal name")
	}
	for _, opt := range parts[1:] {
		switch {
		case opt == "required":
			f.Required = true
		case opt == "exclude":
			f.Exclude = true
		case strings.HasPrefix(opt, "default="):
			f.Default = strings.TrimPrefix(opt, "default=")
			f.HasDefault = true
		case strings.HasPrefix(opt, "bson="):
			f.BSON = strings.TrimPrefix(opt, "bson=")
		default:
			return nil, fmt.Errorf("unknown contract option %q", opt)
		}
	}
	if f.Required && f.HasDefault {
		return nil, fmt.Errorf("field %q cannot be both required and defaulted", f.Name)
	}
	f.Wire = f.Name
	if name := strings.Split(sf.Tag.Get("json"), ",")[0]; name != "" && name != "-" {
		f.Wire = name
	}
	if f.BSON == "" {
		f.BSON = f.Name
	}
	return f, nil
}

// isRecord reports whether values of t are decoded and encoded through a descriptor.
func isRecord(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t == timeType {
		return false
	}
	d, err := describeType(t)
	return err == nil && len(d.Fields) > 0
}
