package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nauticalab/tosca-profile/internal/git"
	"github.com/nauticalab/tosca-profile/internal/profile"
	"github.com/nauticalab/tosca-profile/internal/templates"
)

// ShowOptions holds configuration for the show command
type ShowOptions struct {
	Options
	// Section, when set, prints only that section as YAML.
	Section string
	// Provenance adds Git information about each file to the summary.
	Provenance bool
}

func sectionNames() string {
	names := make([]string, len(profile.Sections))
	for i, s := range profile.Sections {
		names[i] = string(s)
	}
	return strings.Join(names, " ")
}

// ShowRun prints a summary of each template, or one section of it.
func ShowRun(out io.Writer, opts ShowOptions) error {
	if err := opts.check(); err != nil {
		return err
	}
	if err := validate.Var(opts.Section, "omitempty,oneof="+sectionNames()); err != nil {
		return fmt.Errorf("unknown section %q (expected one of: %s)", opts.Section, sectionNames())
	}

	for i, path := range opts.Files {
		if i > 0 {
			fmt.Fprintln(out)
		}

		p, err := opts.loadProfile(path)
		if err != nil {
			return err
		}

		if opts.Section != "" {
			if err := printSection(out, p, profile.Section(opts.Section)); err != nil {
				return err
			}
			continue
		}

		if err := templates.NewRenderer(out).RenderSummary(p); err != nil {
			return err
		}
		if opts.Provenance {
			printProvenance(out, path)
		}
	}
	return nil
}

func printSection(out io.Writer, p *profile.Profile, name profile.Section) error {
	v, err := p.Section(name)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Source(), err)
	}
	data, err := marshalYAML(v)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Source(), err)
	}
	_, err = out.Write(data)
	return err
}

func printProvenance(out io.Writer, path string) {
	info, err := git.GetSourceInfo(path)
	if err != nil {
		slog.Debug("provenance lookup failed", "file", path, "error", err)
		fmt.Fprintf(out, "⚠️  Provenance unavailable: %v\n", err)
		return
	}

	state := "committed"
	switch {
	case info.Untracked:
		state = "untracked"
	case info.Modified:
		state = "modified"
	}

	fmt.Fprintf(out, "Provenance:\n")
	fmt.Fprintf(out, "  Path:   %s (%s)\n", info.Path, state)
	fmt.Fprintf(out, "  Commit: %s\n", info.CommitHash)
	fmt.Fprintf(out, "  Branch: %s\n", info.Branch)
	if len(info.Tags) > 0 {
		fmt.Fprintf(out, "  Tags:   %s\n", strings.Join(info.Tags, ", "))
	}
}
