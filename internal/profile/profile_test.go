package profile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/tosca-profile/internal/document"
	"github.com/nauticalab/tosca-profile/internal/validation"
)

const minimalYAML = `tosca_definitions_version: tosca_simple_yaml_1_0
description: minimal
inputs:
  size: { type: string }
node_templates:
  web_server:
    type: Compute
outputs: {}
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SectionGetters(t *testing.T) {
	for _, backend := range document.Backends() {
		t.Run(string(backend), func(t *testing.T) {
			p, err := Load(writeTemplate(t, minimalYAML), document.WithBackend(backend))
			require.NoError(t, err)

			version, err := p.Version()
			require.NoError(t, err)
			assert.Equal(t, "tosca_simple_yaml_1_0", version)

			desc, err := p.Description()
			require.NoError(t, err)
			assert.Equal(t, "minimal", desc)

			inputs, err := p.Inputs()
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"size": map[string]any{"type": "string"}}, document.Plain(inputs))

			nodes, err := p.NodeTemplates()
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"web_server": map[string]any{"type": "Compute"}}, document.Plain(nodes))

			outputs, err := p.Outputs()
			require.NoError(t, err)
			assert.Equal(t, map[string]any{}, document.Plain(outputs))

			assert.Empty(t, p.MissingSections())
		})
	}
}

func TestLoad_GettersReturnStoredValue(t *testing.T) {
	p, err := Load(writeTemplate(t, minimalYAML))
	require.NoError(t, err)

	for _, s := range Sections {
		viaGetter, err := p.Section(s)
		require.NoError(t, err)
		viaGet, err := p.Get(string(s))
		require.NoError(t, err)
		assert.Equal(t, viaGet, viaGetter, "section %s", s)
	}
}

func TestSectionGetters_Missing(t *testing.T) {
	getters := map[Section]func(*Profile) (any, error){
		SectionVersion:       (*Profile).Version,
		SectionDescription:   (*Profile).Description,
		SectionInputs:        (*Profile).Inputs,
		SectionNodeTemplates: (*Profile).NodeTemplates,
		SectionOutputs:       (*Profile).Outputs,
	}

	for _, missing := range Sections {
		t.Run(string(missing), func(t *testing.T) {
			// Build a document without the section under test.
			var content string
			for _, s := range Sections {
				if s == missing {
					continue
				}
				content += string(s) + ": x\n"
			}
			doc, err := document.NewLoader().Parse([]byte(content), "inline")
			require.NoError(t, err)
			p := New(doc)

			for s, get := range getters {
				v, err := get(p)
				if s == missing {
					var notFound *document.KeyNotFoundError
					require.True(t, errors.As(err, &notFound), "getter for %s", s)
					assert.Equal(t, string(missing), notFound.Key)
					assert.Equal(t, "section", notFound.Scope)
					assert.Nil(t, v)
					continue
				}
				require.NoError(t, err, "getter for %s must not be affected", s)
				assert.Equal(t, "x", v)
			}

			assert.Equal(t, []Section{missing}, p.MissingSections())
		})
	}
}

func TestProfile_Container(t *testing.T) {
	content := "outputs: {}\nnode_templates: {}\ndescription: d\n"
	doc, err := document.NewLoader().Parse([]byte(content), "inline")
	require.NoError(t, err)
	p := New(doc)

	assert.Equal(t, []string{"outputs", "node_templates", "description"}, p.Keys())
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Contains("description"))
	assert.False(t, p.Contains("inputs"))

	_, err = p.Get("inputs")
	var notFound *document.KeyNotFoundError
	require.True(t, errors.As(err, &notFound))

	assert.Same(t, doc, p.Document())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		p, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Nil(t, p)

		var accessErr *document.AccessError
		assert.True(t, errors.As(err, &accessErr))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("invalid YAML", func(t *testing.T) {
		p, err := Load(writeTemplate(t, "node_templates: [oops\n"))
		require.Error(t, err)
		assert.Nil(t, p)

		var parseErr *document.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestLoad_Source(t *testing.T) {
	path := writeTemplate(t, minimalYAML)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Source())
}

func TestTemplates_NotAMapping(t *testing.T) {
	doc, err := document.NewLoader().Parse([]byte("node_templates: [a, b]\n"), "inline")
	require.NoError(t, err)

	_, err = New(doc).Templates()
	var typeErr *validation.TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Contains(t, err.Error(), "sequence")
}
