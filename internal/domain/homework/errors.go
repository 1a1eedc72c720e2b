// internal/domain/homework/errors.go
package homework

import (
	"encoding/json"
	"fmt"
)

// ShapeError reports a payload value of the wrong type.
type ShapeError struct {
	What string // e.g. "response", "homeworks"
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s is not %s (got %s)", e.What, e.Want, e.Got)
}

// MissingFieldError reports an absent required key.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// UnknownStatusError reports a status code outside the known set.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}

// typeName describes a decoded JSON value for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
