package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nauticalab/tosca-profile/internal/cli"
)

var (
	// Show command flags
	showSection    string
	showProvenance bool
)

var showCmd = &cobra.Command{
	Use:   "show <file>...",
	Short: "Print a template summary or one of its sections",
	Long: `Print a summary of each template: version, description, input and
output names, and node templates in document order.

With --section, print only that section as YAML instead.

Examples:
  tosca show web.yaml
  tosca show web.yaml --section node_templates
  tosca show web.yaml --provenance`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ShowOptions{
			Options:    baseOptions(args),
			Section:    showSection,
			Provenance: showProvenance,
		}
		if err := cli.ShowRun(os.Stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	showCmd.Flags().StringVarP(&showSection, "section", "s", "", "Print only this section as YAML")
	showCmd.Flags().BoolVar(&showProvenance, "provenance", false, "Include Git commit, branch and tags for each file")
}
