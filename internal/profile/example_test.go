package profile_test

import (
	"fmt"
	"log"

	"github.com/nauticalab/tosca-profile/internal/profile"
)

// ExampleLoad demonstrates loading a template and walking its node
// templates in document order.
func ExampleLoad() {
	p, err := profile.Load("testdata/web.yaml")
	if err != nil {
		log.Fatal(err)
	}

	desc, err := p.Description()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Description: %s\n", desc)

	templates, err := p.Templates()
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range templates.Keys() {
		kind, err := templates.TemplateType(name)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("Template: %s (%s)\n", name, kind)
	}

	// Output:
	// Description: Web server with a database backend
	// Template: web_server (Compute)
	// Template: db (Database)
}
