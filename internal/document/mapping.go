package document

import (
	"fmt"

	"carvel.dev/ytt/pkg/orderedmap"
)

// KeyedCollection is the read-only container view shared by a Mapping and
// the facades built on top of it.
type KeyedCollection interface {
	// Contains reports whether key is defined.
	Contains(key string) bool
	// Keys returns the keys in document order.
	Keys() []string
	// Len returns the number of keys.
	Len() int
	// Get returns the value stored under key, or a *KeyNotFoundError.
	Get(key string) (any, error)
}

var _ KeyedCollection = (*Mapping)(nil)

// Mapping is a parsed YAML mapping that remembers the order its keys
// appeared in. Nested mappings are also *Mapping; sequences are []any.
//
// A Mapping has no mutators once a loader has returned it, so it is safe to
// share between readers.
type Mapping struct {
	items *orderedmap.Map
}

func newMapping() *Mapping {
	return &Mapping{items: orderedmap.NewMap()}
}

func (m *Mapping) set(key string, value any) {
	m.items.Set(key, value)
}

// Contains reports whether key is defined in the mapping.
func (m *Mapping) Contains(key string) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Keys returns the mapping's keys in document order.
func (m *Mapping) Keys() []string {
	if m == nil || m.items == nil {
		return []string{}
	}
	keys := make([]string, 0, m.items.Len())
	m.items.Iterate(func(k, _ any) {
		keys = append(keys, k.(string))
	})
	return keys
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil || m.items == nil {
		return 0
	}
	return m.items.Len()
}

// Get returns the value for key. There is no default-value form; a missing
// key is a *KeyNotFoundError.
func (m *Mapping) Get(key string) (any, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// Lookup is the comma-ok form of Get.
func (m *Mapping) Lookup(key string) (any, bool) {
	if m == nil || m.items == nil {
		return nil, false
	}
	return m.items.Get(key)
}

// Iterate calls fn for every entry in document order.
func (m *Mapping) Iterate(fn func(key string, value any)) {
	if m == nil || m.items == nil {
		return
	}
	m.items.Iterate(func(k, v any) {
		fn(k.(string), v)
	})
}

// Map returns a deep copy of the mapping as plain Go maps and slices.
// Key order is lost; use it for comparison or for handing data to code
// that expects map[string]any.
func (m *Mapping) Map() map[string]any {
	out := make(map[string]any, m.Len())
	m.Iterate(func(k string, v any) {
		out[k] = Plain(v)
	})
	return out
}

// Plain converts a document value into plain Go values, replacing every
// *Mapping with map[string]any. The input is not modified.
func Plain(v any) any {
	switch typed := v.(type) {
	case *Mapping:
		return typed.Map()
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = Plain(item)
		}
		return out
	default:
		return v
	}
}

// KindOf names the YAML kind of a document value for error messages.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *Mapping:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float"
	default:
		return fmt.Sprintf("%T", v)
	}
}
