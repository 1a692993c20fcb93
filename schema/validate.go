package schema

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Enum is implemented by closed string enumerations. Fields of such types
// carry the `enum` validate tag and accept only the listed values.
type Enum interface {
	Values() []string
}

// IsMember reports whether s is one of values; enum types build their IsValid on it.
func IsMember(s string, values []string) bool {
	return slices.Contains(values, s)
}

var (
	validate    = newValidator()
	ruleReasons = map[string]string{}
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		tag, ok := sf.Tag.Lookup("contract")
		if !ok {
			return ""
		}
		name := strings.Split(tag, ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(Enum)
		if !ok {
			return false
		}
		return IsMember(fl.Field().String(), e.Values())
	})
	return v
}

// RegisterRule installs a cross-field check for the given record types. Violations
// reported under tag surface with reason. Call it from package init only; a type
// holds a single rule.
func RegisterRule(tag, reason string, fn validator.StructLevelFunc, types ...any) {
	ruleReasons[tag] = reason
	validate.RegisterStructValidation(fn, types...)
}

// Validate checks the value constraints of a record built in Go code. Presence of
// required fields is a decoding concern and is not re-checked here.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("schema: cannot validate nil")
		}
		rv = rv.Elem()
	}
	d, err := describeType(rv.Type())
	if err != nil {
		return err
	}
	return d.check(rv)
}

func (d *Descriptor) check(rv reflect.Value) error {
	err := validate.Struct(rv.Interface())
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("schema: validate %s: %w", d.Entity, err)
	}
	fe := fieldErrs[0]
	return Invalid(d.Entity, d.pathOf(fe.Namespace()), constraintReason(fe))
}

// pathOf turns "EnrichedMission.Mission.location.coordinates" into "location.coordinates".
func (d *Descriptor) pathOf(namespace string) string {
	segments := strings.Split(namespace, ".")
	if len(segments) > 0 {
		segments = segments[1:]
	}
	if len(segments) > 1 && d.embedded[segments[0]] {
		segments = segments[1:]
	}
	return strings.Join(segments, ".")
}

func constraintReason(fe validator.FieldError) string {
	isList := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array
	switch fe.Tag() {
	case "enum":
		if e, ok := enumOf(fe.Value()); ok {
			return fmt.Sprintf("value not in allowed set [%s]", strings.Join(e.Values(), ", "))
		}
		return "value not in allowed set"
	case "oneof":
		return fmt.Sprintf("value not in allowed set [%s]", strings.Join(strings.Fields(fe.Param()), ", "))
	case "eq":
		return fmt.Sprintf("must be exactly %q", fe.Param())
	case "len":
		if isList {
			return fmt.Sprintf("array length must be exactly %s", fe.Param())
		}
		return fmt.Sprintf("length must be exactly %s", fe.Param())
	case "min":
		if isList {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isList {
			return fmt.Sprintf("must contain at most %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	}
	if reason, ok := ruleReasons[fe.Tag()]; ok {
		return reason
	}
	return fmt.Sprintf("failed %q constraint", fe.Tag())
}

func enumOf(v any) (Enum, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, false
	}
	e, ok := rv.Interface().(Enum)
	return e, ok
}
