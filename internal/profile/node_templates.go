package profile

import (
	"fmt"

	"github.com/nauticalab/tosca-profile/internal/document"
	"github.com/nauticalab/tosca-profile/internal/validation"
)

// NodeTemplates is the collection view of a node_templates section, keyed by
// template name.
type NodeTemplates struct {
	templates *document.Mapping
}

var _ document.KeyedCollection = (*NodeTemplates)(nil)

// NewNodeTemplates wraps an already fetched node_templates value. It does
// not load or parse anything. A value that is not a mapping is a
// *validation.TypeError.
func NewNodeTemplates(value any) (*NodeTemplates, error) {
	m, ok := value.(*document.Mapping)
	if !ok {
		return nil, &validation.TypeError{
			Value: value,
			Msg:   fmt.Sprintf("%s must be a mapping, got %s", SectionNodeTemplates, document.KindOf(value)),
		}
	}
	return &NodeTemplates{templates: m}, nil
}

// Templates returns the node_templates section as a collection.
func (p *Profile) Templates() (*NodeTemplates, error) {
	v, err := p.NodeTemplates()
	if err != nil {
		return nil, err
	}
	return NewNodeTemplates(v)
}

// Contains reports whether a template named name is defined.
func (n *NodeTemplates) Contains(name string) bool {
	return n.templates.Contains(name)
}

// Keys returns template names in document order.
func (n *NodeTemplates) Keys() []string {
	return n.templates.Keys()
}

// Len returns the number of templates.
func (n *NodeTemplates) Len() int {
	return n.templates.Len()
}

// Get returns the body of the named template.
func (n *NodeTemplates) Get(name string) (any, error) {
	v, ok := n.templates.Lookup(name)
	if !ok {
		return nil, &document.KeyNotFoundError{Key: name, Scope: "node template"}
	}
	return v, nil
}

// TemplateType returns the "type" of the named template.
func (n *NodeTemplates) TemplateType(name string) (string, error) {
	body, err := n.Get(name)
	if err != nil {
		return "", err
	}

	m, ok := body.(*document.Mapping)
	if !ok {
		return "", &validation.TypeError{
			Value: body,
			Msg:   fmt.Sprintf("node template %q must be a mapping, got %s", name, document.KindOf(body)),
		}
	}

	t, err := m.Get("type")
	if err != nil {
		return "", fmt.Errorf("node template %q: %w", name, err)
	}

	s, err := validation.ValidateString(t)
	if err != nil {
		return "", fmt.Errorf("node template %q type: %w", name, err)
	}
	return s, nil
}
