package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nauticalab/tosca-profile/internal/cli"
)

var templatesCmd = &cobra.Command{
	Use:   "templates <file>...",
	Short: "List node templates and their types",
	Long: `List the node templates of each file in document order, one per line
as "<name>\t<type>".

Examples:
  tosca templates web.yaml
  tosca templates web.yaml | cut -f2 | sort -u`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.TemplatesRun(os.Stdout, baseOptions(args)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
