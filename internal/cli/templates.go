package cli

import (
	"fmt"
	"io"
)

// TemplatesRun lists the node templates of each file in document order.
func TemplatesRun(out io.Writer, opts Options) error {
	if err := opts.check(); err != nil {
		return err
	}

	for _, path := range opts.Files {
		p, err := opts.loadProfile(path)
		if err != nil {
			return err
		}

		nodes, err := p.Templates()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if len(opts.Files) > 1 {
			fmt.Fprintf(out, "%s:\n", path)
		}
		for _, name := range nodes.Keys() {
			kind, err := nodes.TemplateType(name)
			if err != nil {
				if opts.Verbose {
					fmt.Fprintf(out, "⚠️  %v\n", err)
				}
				kind = "-"
			}
			fmt.Fprintf(out, "%s\t%s\n", name, kind)
		}
	}
	return nil
}
