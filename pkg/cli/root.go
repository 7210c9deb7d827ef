// Package cli implements the chaos command surface: one-off injection,
// full experiment runs and result reporting.
package cli

import (
	"github.com/spf13/cobra"
)

// New assembles the root chaos command
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "chaos",
		Short:         "aumai-chaos fault injection for testing agent resilience",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInjectCommand())
	root.AddCommand(newRunCommand())
	root.AddCommand(newReportCommand())
	return root
}
