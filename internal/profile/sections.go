package profile

import (
	"github.com/nauticalab/tosca-profile/internal/document"
)

// Section is one of the recognized top-level keys of a template.
type Section string

const (
	SectionVersion       Section = "tosca_definitions_version"
	SectionDescription   Section = "description"
	SectionInputs        Section = "inputs"
	SectionNodeTemplates Section = "node_templates"
	SectionOutputs       Section = "outputs"
)

// Sections lists the recognized sections in canonical order.
var Sections = []Section{
	SectionVersion,
	SectionDescription,
	SectionInputs,
	SectionNodeTemplates,
	SectionOutputs,
}

// Section returns the raw value of a section. There is no default: a
// missing section is a *document.KeyNotFoundError with Scope "section".
func (p *Profile) Section(name Section) (any, error) {
	v, ok := p.doc.Lookup(string(name))
	if !ok {
		return nil, &document.KeyNotFoundError{Key: string(name), Scope: "section"}
	}
	return v, nil
}

// Version returns the tosca_definitions_version section.
func (p *Profile) Version() (any, error) {
	return p.Section(SectionVersion)
}

// Description returns the description section.
func (p *Profile) Description() (any, error) {
	return p.Section(SectionDescription)
}

// Inputs returns the inputs section.
func (p *Profile) Inputs() (any, error) {
	return p.Section(SectionInputs)
}

// NodeTemplates returns the raw node_templates section. Use Templates for
// the collection view.
func (p *Profile) NodeTemplates() (any, error) {
	return p.Section(SectionNodeTemplates)
}

// Outputs returns the outputs section.
func (p *Profile) Outputs() (any, error) {
	return p.Section(SectionOutputs)
}

// MissingSections returns the recognized sections the document does not
// define, in canonical order.
func (p *Profile) MissingSections() []Section {
	var missing []Section
	for _, s := range Sections {
		if !p.doc.Contains(string(s)) {
			missing = append(missing, s)
		}
	}
	return missing
}
