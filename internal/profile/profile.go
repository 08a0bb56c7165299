package profile

import (
	"github.com/nauticalab/tosca-profile/internal/document"
)

// Profile is a read-only view over a loaded template document.
type Profile struct {
	source string
	doc    *document.Mapping
}

var _ document.KeyedCollection = (*Profile)(nil)

// Load reads and parses the template at path. Loader errors are returned
// unchanged (*document.AccessError or *document.ParseError).
func Load(path string, opts ...document.Option) (*Profile, error) {
	doc, err := document.NewLoader(opts...).Load(path)
	if err != nil {
		return nil, err
	}
	return &Profile{source: path, doc: doc}, nil
}

// New wraps an already parsed document.
func New(doc *document.Mapping) *Profile {
	return &Profile{doc: doc}
}

// Source returns the path the profile was loaded from, if any.
func (p *Profile) Source() string {
	return p.source
}

// Document returns the underlying mapping.
func (p *Profile) Document() *document.Mapping {
	return p.doc
}

// Contains reports whether key is a top-level key of the document.
func (p *Profile) Contains(key string) bool {
	return p.doc.Contains(key)
}

// Keys returns the top-level keys in document order.
func (p *Profile) Keys() []string {
	return p.doc.Keys()
}

// Len returns the number of top-level keys.
func (p *Profile) Len() int {
	return p.doc.Len()
}

// Get returns the top-level value for key.
func (p *Profile) Get(key string) (any, error) {
	return p.doc.Get(key)
}
