package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/tosca-profile/internal/document"
	"github.com/nauticalab/tosca-profile/internal/validation"
)

func parseTemplates(t *testing.T, content string) *NodeTemplates {
	t.Helper()
	doc, err := document.NewLoader().Parse([]byte(content), "inline")
	require.NoError(t, err)
	templates, err := New(doc).Templates()
	require.NoError(t, err)
	return templates
}

func TestNodeTemplates_SingleEntry(t *testing.T) {
	templates := parseTemplates(t, "node_templates:\n  web_server:\n    type: Compute\n")

	assert.Equal(t, 1, templates.Len())
	assert.True(t, templates.Contains("web_server"))
	assert.False(t, templates.Contains("missing"))

	body, err := templates.Get("web_server")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "Compute"}, document.Plain(body))

	_, err = templates.Get("missing")
	var notFound *document.KeyNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Key)
	assert.Equal(t, `node template "missing" not found`, err.Error())
}

func TestNodeTemplates_DocumentOrder(t *testing.T) {
	templates := parseTemplates(t, `node_templates:
  zookeeper: { type: Compute }
  app: { type: WebApplication }
  mysql: { type: Database }
`)
	assert.Equal(t, []string{"zookeeper", "app", "mysql"}, templates.Keys())
}

func TestNodeTemplates_SharesDocument(t *testing.T) {
	doc, err := document.NewLoader().Parse([]byte("node_templates:\n  a: { type: Compute }\n"), "inline")
	require.NoError(t, err)

	raw, err := New(doc).NodeTemplates()
	require.NoError(t, err)
	templates, err := NewNodeTemplates(raw)
	require.NoError(t, err)

	bodyA, err := templates.Get("a")
	require.NoError(t, err)
	direct, _ := raw.(*document.Mapping).Get("a")
	assert.Same(t, direct, bodyA)
}

func TestNewNodeTemplates_RejectsNonMapping(t *testing.T) {
	for _, v := range []any{nil, "web", []any{"a"}, 3} {
		_, err := NewNodeTemplates(v)
		var typeErr *validation.TypeError
		assert.True(t, errors.As(err, &typeErr), "value %v", v)
	}
}

func TestNodeTemplates_TemplateType(t *testing.T) {
	templates := parseTemplates(t, `node_templates:
  web: { type: Compute }
  untyped: { properties: {} }
  numeric: { type: 5 }
  scalar: just-a-string
`)

	kind, err := templates.TemplateType("web")
	require.NoError(t, err)
	assert.Equal(t, "Compute", kind)

	cases := []struct {
		name   string
		target any
	}{
		{"untyped", new(*document.KeyNotFoundError)},
		{"numeric", new(*validation.ValueError)},
		{"scalar", new(*validation.TypeError)},
		{"absent", new(*document.KeyNotFoundError)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := templates.TemplateType(tc.name)
			require.Error(t, err)
			assert.True(t, errors.As(err, tc.target), "got %T: %v", err, err)
		})
	}
}
