package document

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
	"gopkg.in/yaml.v3"
)

// Alias expansion limits, matching the ratios gopkg.in/yaml.v3 enforces.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(nodes int) float64 {
	switch {
	case nodes <= aliasRatioRangeLow:
		return 0.99
	case nodes >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(nodes-aliasRatioRangeLow)/aliasRatioRange)
	}
}

func decodeGoccy(data []byte) (any, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, err
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, nil
	}

	b := &astBuilder{anchors: map[string]anchored{}}
	v, _, err := b.build(file.Docs[0].Body)
	if err != nil {
		return nil, err
	}
	return v, nil
}

type anchored struct {
	value any
	size  int
}

// astBuilder turns a goccy AST into the document tree. Anchored values are
// shared between their aliases; nodes counts every node the tree would hold
// once aliases are expanded, aliased the share of those reached through an
// alias.
type astBuilder struct {
	anchors map[string]anchored
	nodes   int
	aliased int
}

// build returns the value of n and the number of nodes it expands to.
func (b *astBuilder) build(n ast.Node) (any, int, error) {
	switch n := n.(type) {
	case *ast.MappingNode:
		return b.buildMapping(n.Values)

	case *ast.MappingValueNode:
		return b.buildMapping([]*ast.MappingValueNode{n})

	case *ast.SequenceNode:
		b.nodes++
		out := make([]any, 0, len(n.Values))
		size := 1
		for _, item := range n.Values {
			v, itemSize, err := b.build(item)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, v)
			size += itemSize
		}
		return out, size, nil

	case *ast.AnchorNode:
		v, size, err := b.build(n.Value)
		if err != nil {
			return nil, 0, err
		}
		b.anchors[n.Name.GetToken().Value] = anchored{value: v, size: size}
		return v, size, nil

	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		target, ok := b.anchors[name]
		if !ok {
			return nil, 0, syntaxError(n, fmt.Sprintf("unknown anchor %q referenced", name))
		}
		b.nodes += target.size
		b.aliased += target.size
		if b.aliased > 100 && b.nodes > 1000 && float64(b.aliased)/float64(b.nodes) > allowedAliasRatio(b.nodes) {
			return nil, 0, syntaxError(n, "document contains excessive aliasing")
		}
		return target.value, target.size, nil

	case *ast.TagNode:
		if scalar, ok := scalarNode(n.Start.Value, n.Value); ok {
			b.nodes++
			v, err := b.scalar(n, scalar)
			return v, 1, err
		}
		return b.build(n.Value)

	case *ast.MappingKeyNode:
		return b.build(n.Value)

	case *ast.NullNode:
		b.nodes++
		return nil, 1, nil

	default:
		scalar, ok := scalarNode("", n)
		if !ok {
			return nil, 0, syntaxError(n, fmt.Sprintf("unexpected YAML node %s", n.Type()))
		}
		b.nodes++
		v, err := b.scalar(n, scalar)
		return v, 1, err
	}
}

// buildMapping applies "<<" merge keys where they appear; keys already in
// the mapping win over merged ones, and later explicit keys overwrite.
func (b *astBuilder) buildMapping(values []*ast.MappingValueNode) (any, int, error) {
	b.nodes++
	m := newMapping()
	size := 1

	for _, mv := range values {
		v, valueSize, err := b.build(mv.Value)
		if err != nil {
			return nil, 0, err
		}
		size += valueSize

		if mv.Key.IsMergeKey() {
			if !mergeInto(m, v) {
				return nil, 0, syntaxError(mv.Key, errInvalidMerge)
			}
			continue
		}

		key, err := keyText(mv.Key)
		if err != nil {
			return nil, 0, err
		}
		b.nodes++
		size++
		m.set(key, v)
	}
	return m, size, nil
}

func (b *astBuilder) scalar(at ast.Node, n *yaml.Node) (any, error) {
	v, err := decodeScalar(n)
	if err != nil {
		return nil, syntaxError(at, err.Error())
	}
	return v, nil
}

// scalarNode describes a goccy scalar as a yaml.v3 scalar node carrying the
// same tag, source text and quoting. It reports false for collections,
// anchors and aliases.
func scalarNode(tag string, n ast.Node) (*yaml.Node, bool) {
	out := &yaml.Node{Kind: yaml.ScalarNode, Tag: tag}
	switch n := n.(type) {
	case *ast.StringNode:
		out.Value = n.Value
		switch n.Token.Type {
		case token.SingleQuoteType:
			out.Style = yaml.SingleQuotedStyle
		case token.DoubleQuoteType:
			out.Style = yaml.DoubleQuotedStyle
		}
	case *ast.LiteralNode:
		out.Value = n.Value.Value
		out.Style = yaml.LiteralStyle
	case *ast.NullNode:
		if n.Token.Type != token.ImplicitNullType {
			out.Value = n.Token.Value
		}
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		out.Value = n.GetToken().Value
	default:
		return nil, false
	}
	return out, true
}

// keyText returns the source text of a mapping key, the same string
// yaml.v3 reports as the key node's value.
func keyText(n ast.Node) (string, error) {
	switch k := n.(type) {
	case *ast.MappingKeyNode:
		return keyText(k.Value)
	case *ast.AnchorNode:
		return keyText(k.Value)
	case *ast.TagNode:
		return keyText(k.Value)
	}
	scalar, ok := scalarNode("", n)
	if !ok {
		return "", syntaxError(n, "mapping keys must be scalars")
	}
	return scalar.Value, nil
}

func syntaxError(n ast.Node, msg string) *ParseError {
	err := &ParseError{Msg: msg}
	if tk := n.GetToken(); tk != nil && tk.Position != nil {
		err.Line = tk.Position.Line
		err.Column = tk.Position.Column
	}
	return err
}
