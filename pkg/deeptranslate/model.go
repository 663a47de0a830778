package deeptranslate

import (
	"fmt"
	"strings"
)

// SessionModel exposes the per-request state used to pick conditional branches.
// A value may be a string, an ordered list of strings, or absent.
type SessionModel interface {
	GetValue(field string) (any, bool)
}

// Values is a map-backed SessionModel.
type Values map[string]any

// GetValue implements SessionModel.
func (v Values) GetValue(field string) (any, bool) {
	val, ok := v[field]
	return val, ok
}

// ModelFunc adapts a plain function to SessionModel.
type ModelFunc func(field string) (any, bool)

// GetValue implements SessionModel.
func (f ModelFunc) GetValue(field string) (any, bool) {
	return f(field)
}

// selector returns the path segment selecting a branch for the given field.
// Multi-value fields are joined in the order the model returns them.
func selector(model SessionModel, field, sep string) (string, bool) {
	val, ok := model.GetValue(field)
	if !ok || val == nil {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case []string:
		return strings.Join(v, sep), true
	case []any:
		// Lists decoded from JSON (e.g. a session loaded from Redis) arrive untyped.
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}
