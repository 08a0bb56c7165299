package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nauticalab/tosca-profile/internal/document"
)

// marshalYAML encodes a document value as YAML, keeping mapping keys in
// document order.
func marshalYAML(v any) ([]byte, error) {
	node, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toYAMLNode(v any) (*yaml.Node, error) {
	switch typed := v.(type) {
	case *document.Mapping:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		typed.Iterate(func(key string, value any) {
			if err != nil {
				return
			}
			var valueNode *yaml.Node
			valueNode, err = toYAMLNode(value)
			if err != nil {
				return
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				valueNode,
			)
		})
		if err != nil {
			return nil, err
		}
		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			itemNode, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil

	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode %s value: %w", document.KindOf(v), err)
		}
		return node, nil
	}
}
