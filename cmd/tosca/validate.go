package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nauticalab/tosca-profile/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that templates load and define every section",
	Long: `Validate one or more templates.

This command checks for:
- Files that are missing or unreadable
- Malformed YAML, or a document whose root is not a mapping
- Missing top-level sections (tosca_definitions_version, description,
  inputs, node_templates, outputs)

Section contents are not checked.

Examples:
  tosca validate web.yaml
  tosca validate templates/*.yaml --parser goccy`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := cli.ValidateRun(os.Stdout, baseOptions(args))
		if errors.Is(err, cli.ErrValidationFailed) {
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}
