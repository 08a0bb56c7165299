package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nauticalab/tosca-profile/internal/document"
	"github.com/nauticalab/tosca-profile/internal/profile"
)

// ValidateResult is the outcome of checking one template file. Warnings do
// not make the file invalid.
type ValidateResult struct {
	File     string
	Missing  []string
	Warnings []string
	Err      error
}

// IsValid reports whether the file loaded and defines every section.
func (r ValidateResult) IsValid() bool {
	return r.Err == nil && len(r.Missing) == 0
}

// ValidateFile loads one template and reports which recognized sections it
// is missing. Only key presence is checked.
func ValidateFile(opts Options, path string) ValidateResult {
	result := ValidateResult{File: path}

	p, err := opts.loadProfile(path)
	if err != nil {
		result.Err = err
		return result
	}

	for _, s := range p.MissingSections() {
		result.Missing = append(result.Missing, string(s))
	}
	if p.Contains(string(profile.SectionVersion)) {
		if _, err := p.DefinitionsVersion(); err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		}
	}
	return result
}

// ValidateRun validates every file in opts and prints the results to out.
// It returns ErrValidationFailed if any file is invalid.
func ValidateRun(out io.Writer, opts Options) error {
	if err := opts.check(); err != nil {
		return err
	}

	var failed int
	for _, path := range opts.Files {
		result := ValidateFile(opts, path)
		printValidateResult(out, result, opts.Verbose)
		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "⚠️  %s: %s\n", result.File, warning)
		}
		if !result.IsValid() {
			failed++
		}
	}

	if len(opts.Files) > 1 {
		fmt.Fprintf(out, "\n✅ Valid: %d\n", len(opts.Files)-failed)
		if failed > 0 {
			fmt.Fprintf(out, "❌ Invalid: %d\n", failed)
		}
	}

	if failed > 0 {
		return ErrValidationFailed
	}
	return nil
}

// printValidateResult prints one result in a user-friendly format
func printValidateResult(out io.Writer, result ValidateResult, verbose bool) {
	var (
		accessErr *document.AccessError
		parseErr  *document.ParseError
	)

	switch {
	case result.Err == nil && len(result.Missing) == 0:
		fmt.Fprintf(out, "✅ %s is valid\n", result.File)

	case errors.As(result.Err, &accessErr):
		fmt.Fprintf(out, "❌ Cannot read %s: %v\n", result.File, accessErr.Err)

	case errors.As(result.Err, &parseErr):
		fmt.Fprintf(out, "❌ Invalid YAML: %v\n", parseErr)
		if verbose && parseErr.Line > 0 {
			fmt.Fprintf(out, "   Position: line %d, column %d\n", parseErr.Line, parseErr.Column)
		}

	case result.Err != nil:
		fmt.Fprintf(out, "❌ Error: %s: %v\n", result.File, result.Err)

	default:
		fmt.Fprintf(out, "❌ %s is missing sections: %s\n", result.File, strings.Join(result.Missing, ", "))
		if verbose {
			fmt.Fprintln(out, "\n💡 Suggestions:")
			fmt.Fprintf(out, "   • Add the missing top-level keys to %s\n", result.File)
		}
	}
}
