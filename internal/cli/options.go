package cli

import (
	"errors"
	"log/slog"

	"github.com/nauticalab/tosca-profile/internal/document"
	"github.com/nauticalab/tosca-profile/internal/profile"
)

// ErrValidationFailed is returned when a command ran to completion but
// found problems it already reported.
var ErrValidationFailed = errors.New("validation failed")

// Options holds the settings shared by every command that reads a template
type Options struct {
	Files   []string `validate:"required,min=1,dive,required"`
	Backend document.Backend
	Verbose bool
}

// check validates opts before a command runs.
func (opts Options) check() error {
	if err := validate.Struct(opts); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadProfile loads one template with the configured backend.
func (opts Options) loadProfile(path string) (*profile.Profile, error) {
	slog.Debug("loading template", "file", path, "parser", opts.Backend)
	p, err := profile.Load(path, document.WithBackend(opts.Backend))
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded template", "file", path, "keys", p.Len())
	return p, nil
}
