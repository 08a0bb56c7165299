// Package document loads TOSCA-style template files into an ordered,
// read-only mapping. It is the leaf of the profile stack: it knows how to
// read a file and parse it as YAML, and nothing about what the sections of
// a template mean.
//
// # Basic Usage
//
//	loader := document.NewLoader()
//	doc, err := loader.Load("./templates/web.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, key := range doc.Keys() {
//	    fmt.Println(key) // document order, not sorted
//	}
//
// # Parser Backends
//
// Two YAML parsers are supported and selected once when the loader is built:
//
//	document.NewLoader(document.WithBackend(document.BackendGoccy))
//
// [BackendYAMLv3] (gopkg.in/yaml.v3) is the default. Both backends decode
// into generic values only, so a document can never instantiate arbitrary
// Go types, alias expansion is bounded, and both produce the same [Mapping]
// tree for the same input.
//
// # Errors
//
// A load either returns a complete [Mapping] or fails with one of:
//
//   - [*AccessError] when the file cannot be opened or read. It unwraps to
//     the underlying fs error, so errors.Is(err, fs.ErrNotExist) works.
//   - [*ParseError] when the contents are not a YAML mapping. The parser's
//     own diagnostic is carried in Msg (and Line/Column when known).
//
// Lookups on a [Mapping] fail with [*KeyNotFoundError].
package document
