package outline

import "fmt"

// ParseError is returned when an argument string is not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "outline: invalid JSON: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// DecodeError is returned when a parsed value holds a field whose shape is
// incompatible with the interchange form, e.g. a scalar where an array is
// required. Missing optional fields never produce a DecodeError.
type DecodeError struct {
	Field string
	Want  string
	Value any
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("outline: decode %q: expected %s, got %s", e.Field, e.Want, jsonKind(e.Value))
}

// jsonKind names the JSON kind of a value decoded by encoding/json.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
