package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/invincible-jha/aumai-chaos/pkg/experiment"
	"github.com/invincible-jha/aumai-chaos/pkg/scheduler"
	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

func newRunCommand() *cobra.Command {
	var (
		experimentPath string
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a chaos experiment defined in a YAML/JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := experiment.Load(experimentPath)
			if err != nil {
				return errors.Wrap(err, "unable to load experiment")
			}

			sched := scheduler.New()
			experimentID, err := sched.Schedule(*def)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Running experiment '%s' (id=%s) for %ds...\n",
				def.Name, experimentID, def.DurationSeconds)

			result, err := sched.Run(cmd.Context(), experimentID)
			if err != nil {
				return errors.Wrap(err, "experiment failed")
			}

			if jsonOutput {
				raw, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&experimentPath, "experiment", "", "path to experiment definition (YAML or JSON)")
	cmd.Flags().BoolVar(&jsonOutput, "json-output", false, "emit results as JSON")
	_ = cmd.MarkFlagRequired("experiment")
	return cmd
}

func printResult(cmd *cobra.Command, result *types.RunResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nStatus    : %s\n", result.Status)
	fmt.Fprintf(out, "Start     : %s\n", result.StartTime.Format("2006-01-02T15:04:05Z07:00"))
	if result.EndTime != nil {
		fmt.Fprintf(out, "End       : %s\n", result.EndTime.Format("2006-01-02T15:04:05Z07:00"))
	} else {
		fmt.Fprintf(out, "End       : n/a\n")
	}
	fmt.Fprintf(out, "Summary   :\n")
	fmt.Fprintf(out, "  total_faults_fired: %d\n", result.Summary.TotalFaultsFired)
	fmt.Fprintf(out, "  duration_seconds: %.2f\n", result.Summary.DurationSeconds)
	for kind, count := range result.Summary.FaultsByKind {
		fmt.Fprintf(out, "  faults_by_kind.%s: %d\n", kind, count)
	}
	for kind, count := range result.Summary.ErrorsByKind {
		fmt.Fprintf(out, "  errors_by_kind.%s: %d\n", kind, count)
	}
	fmt.Fprintf(out, "Observations: %d recorded\n", len(result.Observations))
}
