package document

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend names a YAML parser implementation.
type Backend string

const (
	// BackendYAMLv3 parses with gopkg.in/yaml.v3 via its node tree.
	BackendYAMLv3 Backend = "yaml.v3"
	// BackendGoccy parses with the github.com/goccy/go-yaml parser and builds
	// the tree from its AST.
	BackendGoccy Backend = "goccy"

	// DefaultBackend is used when no backend is configured.
	DefaultBackend = BackendYAMLv3
)

// Backends lists the supported backends.
func Backends() []Backend {
	return []Backend{BackendYAMLv3, BackendGoccy}
}

// ParseBackend resolves a configured backend name. An empty name selects
// DefaultBackend.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultBackend, nil
	}
	for _, b := range Backends() {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown parser backend %q (supported: %s, %s)", name, BackendYAMLv3, BackendGoccy)
}

func (b Backend) decoder() (func([]byte) (any, error), error) {
	switch b {
	case BackendYAMLv3, "":
		return decodeYAMLv3, nil
	case BackendGoccy:
		return decodeGoccy, nil
	default:
		return nil, fmt.Errorf("unknown parser backend %q", string(b))
	}
}

// ============================================================================
// gopkg.in/yaml.v3
// ============================================================================

func decodeYAMLv3(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, nil
	}

	// Decoding into a generic value applies yaml.v3's tag resolution,
	// duplicate-key check and alias-expansion limit before the tree is walked.
	var probe any
	if err := root.Decode(&probe); err != nil {
		return nil, err
	}

	return convertNode(&root)
}

func convertNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convertNode(n.Content[0])

	case yaml.AliasNode:
		return convertNode(n.Alias)

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := convertNode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.MappingNode:
		m := newMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]

			if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
				if err := mergeNode(m, valueNode); err != nil {
					return nil, err
				}
				continue
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &ParseError{
					Line:   keyNode.Line,
					Column: keyNode.Column,
					Msg:    "mapping keys must be scalars",
				}
			}

			v, err := convertNode(valueNode)
			if err != nil {
				return nil, err
			}
			m.set(keyNode.Value, v)
		}
		return m, nil

	case yaml.ScalarNode:
		return decodeScalar(n)

	default:
		return nil, &ParseError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf("unexpected YAML node kind %d", n.Kind)}
	}
}

// mergeNode applies a "<<" merge key. Keys already set explicitly win.
func mergeNode(m *Mapping, n *yaml.Node) error {
	v, err := convertNode(n)
	if err != nil {
		return err
	}
	if !mergeInto(m, v) {
		return &ParseError{Line: n.Line, Column: n.Column, Msg: errInvalidMerge}
	}
	return nil
}

const errInvalidMerge = "map merge requires map or sequence of maps as the value"

// mergeInto copies the keys of v, a mapping or a sequence of mappings, into
// m without overwriting keys m already has. It reports false when v has the
// wrong shape.
func mergeInto(m *Mapping, v any) bool {
	var sources []*Mapping
	switch typed := v.(type) {
	case *Mapping:
		sources = []*Mapping{typed}
	case []any:
		for _, item := range typed {
			src, ok := item.(*Mapping)
			if !ok {
				return false
			}
			sources = append(sources, src)
		}
	default:
		return false
	}

	for _, src := range sources {
		src.Iterate(func(k string, v any) {
			if !m.Contains(k) {
				m.set(k, v)
			}
		})
	}
	return true
}

// decodeScalar resolves a scalar node to a Go value. Both backends route
// every scalar through here, so they agree on typing: plain "2001-12-14" is
// a time.Time, plain "99999999999999999999" a float64, quoted text a string.
func decodeScalar(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeScalar(v), nil
}

// normalizeScalar folds the integer types the backends produce into int so
// both backends yield identical trees.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n)
		}
	}
	return v
}
