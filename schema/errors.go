package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInvalid matches every ContractValidationError via errors.Is.
var ErrInvalid = errors.New("invalid contract payload")

const (
	ReasonRequired  = "required field missing"
	ReasonNull      = "must not be null"
	ReasonNotObject = "expected a JSON object"
)

// ContractValidationError is the only error the contract layer reports for bad input.
// Field is a dotted path of internal names, e.g. "targets[1].target_id".
type ContractValidationError struct {
	Entity string `json:"entity"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (e *ContractValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
}

func (e *ContractValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Invalid builds a ContractValidationError for helpers that check values outside decoding.
func Invalid(entity, field, reason string) *ContractValidationError {
	return &ContractValidationError{Entity: entity, Field: field, Reason: reason}
}

// AsValidationError unwraps err into a ContractValidationError when it is one.
func AsValidationError(err error) (*ContractValidationError, bool) {
	var cve *ContractValidationError
	if errors.As(err, &cve) {
		return cve, true
	}
	return nil, false
}

func prefixed(prefix string, err error) *ContractValidationError {
	if cve, ok := AsValidationError(err); ok {
		return &ContractValidationError{Entity: cve.Entity, Field: joinPath(prefix, cve.Field), Reason: cve.Reason}
	}
	return &ContractValidationError{Field: prefix, Reason: reasonFor(err)}
}

func joinPath(prefix, rest string) string {
	switch {
	case rest == "":
		return prefix
	case prefix == "":
		return rest
	case strings.HasPrefix(rest, "["):
		return prefix + rest
	default:
		return prefix + "." + rest
	}
}

func reasonFor(err error) string {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("expected %s, got %s", kindName(typeErr.Type), typeErr.Value)
	case errors.As(err, &syntaxErr):
		return "malformed JSON"
	default:
		return err.Error()
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Pointer:
		return kindName(t.Elem())
	default:
		return "object"
	}
}
