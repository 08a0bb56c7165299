package document

import (
	"fmt"
	"io"
	"os"
)

// Loader reads template files and parses them into a Mapping. The parser
// backend is fixed when the Loader is built.
type Loader struct {
	backend Backend
}

// Option configures a Loader.
type Option func(*Loader)

// WithBackend selects the YAML parser backend.
func WithBackend(b Backend) Option {
	return func(l *Loader) {
		l.backend = b
	}
}

// NewLoader creates a loader using DefaultBackend unless overridden.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{backend: DefaultBackend}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Backend returns the parser backend the loader uses.
func (l *Loader) Backend() Backend {
	return l.backend
}

// Load reads the file at path and parses it. Every call re-reads the file;
// nothing is cached.
func (l *Loader) Load(path string) (*Mapping, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newAccessError("open", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return l.LoadReader(file, path)
}

// LoadReader reads r to the end and parses the contents. name is used in
// error messages.
func (l *Loader) LoadReader(r io.Reader, name string) (*Mapping, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newAccessError("read", name, err)
	}
	return l.Parse(data, name)
}

// Parse parses data as a YAML mapping. The result is either a complete
// Mapping or an error, never both.
func (l *Loader) Parse(data []byte, name string) (*Mapping, error) {
	decode, err := l.backend.decoder()
	if err != nil {
		return nil, err
	}

	root, err := decode(data)
	if err != nil {
		return nil, newParseError(name, err)
	}

	switch doc := root.(type) {
	case *Mapping:
		return doc, nil
	case nil:
		return nil, &ParseError{Source: name, Msg: "document is empty"}
	default:
		return nil, &ParseError{
			Source: name,
			Msg:    fmt.Sprintf("document root must be a mapping, got %s", KindOf(root)),
		}
	}
}
