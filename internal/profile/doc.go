// Package profile exposes a loaded TOSCA-style template through named
// sections. It adds no validation of section contents: a section is either
// present, and returned exactly as parsed, or absent, and reported with a
// *document.KeyNotFoundError.
//
// # Basic Usage
//
//	p, err := profile.Load("./templates/web.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	desc, _ := p.Description()
//	templates, err := p.Templates()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range templates.Keys() {
//	    kind, _ := templates.TemplateType(name)
//	    fmt.Printf("%s (%s)\n", name, kind)
//	}
//
// # Optional Sections
//
// Every section is required at this layer. Callers that treat a section as
// optional check for the error themselves:
//
//	outputs, err := p.Outputs()
//	var notFound *document.KeyNotFoundError
//	if errors.As(err, &notFound) {
//	    outputs = nil
//	}
//
// [Profile] and [NodeTemplates] both implement [document.KeyedCollection]
// and hold a reference to the parsed mapping rather than a copy.
package profile
