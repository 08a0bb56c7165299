// Package templates renders human-readable views of a loaded profile from
// embedded text templates.
package templates

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/nauticalab/tosca-profile/internal/document"
	"github.com/nauticalab/tosca-profile/internal/profile"
)

// Embed all templates at compile time
//
//go:embed *.tmpl
var templates embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Summary is the data passed to summary.tmpl. VersionNumber is Version as a
// semantic version, empty when Version is not a recognized definitions
// version.
type Summary struct {
	Source        string
	Version       string
	VersionNumber string
	Description   string
	Inputs        []string
	Outputs       []string
	Templates     []TemplateRow
	Missing       []string
}

// TemplateRow is one node template in a Summary.
type TemplateRow struct {
	Name string
	Type string
}

// NewSummary collects the summary data for p. Sections that are missing or
// not mappings show up empty rather than failing the summary.
func NewSummary(p *profile.Profile) *Summary {
	s := &Summary{
		Source:  p.Source(),
		Inputs:  sectionKeys(p, profile.SectionInputs),
		Outputs: sectionKeys(p, profile.SectionOutputs),
	}

	if v, err := p.Version(); err == nil && v != nil {
		s.Version = fmt.Sprint(v)
		if number, err := p.DefinitionsVersion(); err == nil {
			s.VersionNumber = number.String()
		}
	}
	if v, err := p.Description(); err == nil && v != nil {
		s.Description = fmt.Sprint(v)
	}

	if nodes, err := p.Templates(); err == nil {
		for _, name := range nodes.Keys() {
			kind, err := nodes.TemplateType(name)
			if err != nil {
				kind = "unknown type"
			}
			s.Templates = append(s.Templates, TemplateRow{Name: name, Type: kind})
		}
	}

	for _, missing := range p.MissingSections() {
		s.Missing = append(s.Missing, string(missing))
	}
	return s
}

func sectionKeys(p *profile.Profile, name profile.Section) []string {
	v, err := p.Section(name)
	if err != nil {
		return nil
	}
	m, ok := v.(*document.Mapping)
	if !ok {
		return nil
	}
	return m.Keys()
}

// Renderer writes rendered templates to an output stream.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a new template renderer
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out: out,
	}
}

// RenderSummary renders the summary view of p.
func (r *Renderer) RenderSummary(p *profile.Profile) error {
	return r.RenderTemplate("summary", NewSummary(p))
}

// RenderTemplate renders the embedded template <templateName>.tmpl with data.
func (r *Renderer) RenderTemplate(templateName string, data any) error {
	// Read from embedded filesystem
	templateContent, err := templates.ReadFile(templateName + ".tmpl")
	if err != nil {
		return fmt.Errorf("template %s not found: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(templateContent))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	if err := tmpl.Execute(r.out, data); err != nil {
		return fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return nil
}
