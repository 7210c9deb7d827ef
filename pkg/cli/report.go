package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	var experimentID string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display the results of a completed chaos experiment",
		Long: "Display the results of a completed chaos experiment.\n\n" +
			"Results live in the scheduler's process and do not survive a restart;\n" +
			"to persist a run, redirect `chaos run --json-output` to a file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(),
				"Note: the scheduler is in-process, results persist only within a session.\n"+
					"Use `chaos run --json-output > result.json` to persist results.")
			return errors.Errorf("no persistent result found for experiment-id: %s", experimentID)
		},
	}

	cmd.Flags().StringVar(&experimentID, "experiment-id", "", "id of the experiment to report on")
	_ = cmd.MarkFlagRequired("experiment-id")
	return cmd
}
