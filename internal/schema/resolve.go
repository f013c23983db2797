// internal/schema/resolve.go
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"

	"eventpass/internal/api"
)

// Document is one untyped JSON object as decoded by encoding/json.
type Document = map[string]any

// lookup returns the first key in order whose value is present and non-null.
// A JSON null counts as absent so every field defaults deterministically.
func lookup(doc Document, keys []string) (string, any, bool) {
	for _, key := range keys {
		if v, ok := doc[key]; ok && v != nil {
			return key, v, true
		}
	}
	return "", nil, false
}

func wrongType(key string, v any) error {
	return api.NewSchemaError(fmt.Sprintf("field %q has unexpected type %T", key, v))
}

// String resolves a required string field, trying keys in order and falling
// back to def when all are absent. A present non-string value is an error,
// never a silent coercion.
func String(doc Document, def string, keys ...string) (string, error) {
	key, v, ok := lookup(doc, keys)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, wrongType(key, v)
	}
	return s, nil
}

// OptionalString resolves a field whose absence is meaningful: nil when no
// key is present, distinct from an empty string.
func OptionalString(doc Document, keys ...string) (*string, error) {
	key, v, ok := lookup(doc, keys)
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, wrongType(key, v)
	}
	return &s, nil
}

// Int resolves a numeric field. JSON numbers arrive as float64; integral
// values are accepted, anything else is an error.
func Int(doc Document, def int, keys ...string) (int, error) {
	key, v, ok := lookup(doc, keys)
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return def, wrongType(key, v)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return def, wrongType(key, v)
		}
		return int(i), nil
	default:
		return def, wrongType(key, v)
	}
}

// Float resolves a fractional numeric field.
func Float(doc Document, def float64, keys ...string) (float64, error) {
	key, v, ok := lookup(doc, keys)
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return def, wrongType(key, v)
		}
		return f, nil
	default:
		return def, wrongType(key, v)
	}
}

// Bool resolves a boolean field.
func Bool(doc Document, def bool, keys ...string) (bool, error) {
	key, v, ok := lookup(doc, keys)
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, wrongType(key, v)
	}
	return b, nil
}

// Identifier resolves a stable id that backends serve either as a string or
// as an integral number. Both shapes are declared valid; the canonical form
// is always a string.
func Identifier(doc Document, keys ...string) (string, error) {
	key, v, ok := lookup(doc, keys)
	if !ok {
		return "", nil
	}
	switch id := v.(type) {
	case string:
		return id, nil
	case float64:
		if id != float64(int64(id)) {
			return "", wrongType(key, v)
		}
		return strconv.FormatInt(int64(id), 10), nil
	case json.Number:
		return id.String(), nil
	default:
		return "", wrongType(key, v)
	}
}

// Text resolves a field that backends serve either as a string or as a
// number (prices, mostly). Numbers are rendered in their shortest decimal
// form so the canonical value stays a textual amount.
func Text(doc Document, keys ...string) (*string, error) {
	key, v, ok := lookup(doc, keys)
	if !ok {
		return nil, nil
	}
	switch t := v.(type) {
	case string:
		return &t, nil
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s, nil
	case json.Number:
		s := t.String()
		return &s, nil
	default:
		return nil, wrongType(key, v)
	}
}

// Object resolves a nested object. A present value of any other shape
// degrades to absent rather than failing the whole document.
func Object(doc Document, keys ...string) (Document, bool) {
	_, v, ok := lookup(doc, keys)
	if !ok {
		return nil, false
	}
	obj, ok := v.(Document)
	if !ok {
		return nil, false
	}
	return obj, true
}

// List resolves a nested collection of objects. A malformed collection or
// malformed element degrades to absent / skipped, never a parse failure.
func List(doc Document, keys ...string) ([]Document, bool) {
	_, v, ok := lookup(doc, keys)
	if !ok {
		return nil, false
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	items := make([]Document, 0, len(raw))
	for _, el := range raw {
		if obj, ok := el.(Document); ok {
			items = append(items, obj)
		}
	}
	return items, true
}
