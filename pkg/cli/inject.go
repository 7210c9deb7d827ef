package cli

import (
	"fmt"
	"strings"

	"github.com/kyokomi/emoji"
	"github.com/spf13/cobra"

	"github.com/invincible-jha/aumai-chaos/pkg/cerrors"
	"github.com/invincible-jha/aumai-chaos/pkg/injector"
	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

func newInjectCommand() *cobra.Command {
	var (
		faultKind  string
		durationMs int
		errorCode  int
		message    string
		target     string
	)

	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Perform a one-off fault injection immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := types.ParseFaultKind(faultKind)
			if err != nil {
				return err
			}

			spec := types.NewFaultSpec(kind)
			spec.DurationMs = &durationMs
			spec.ErrorCode = &errorCode
			spec.ErrorMessage = message
			spec.AffectedTargets = []string{target}

			fmt.Fprintf(cmd.OutOrStdout(), "Injecting '%s' fault into target '%s'...\n", kind, target)

			fired, err := injector.New().Inject(spec)
			switch {
			case err != nil && cerrors.GetErrorType(err) == cerrors.ErrorTypeConfiguration:
				return err
			case err != nil:
				fmt.Fprintln(cmd.OutOrStdout(), emoji.Sprintf("Fault raised :boom: %s: %v", cerrors.GetErrorType(err), err))
			case fired:
				fmt.Fprintln(cmd.OutOrStdout(), emoji.Sprint("Fault injection complete, no error raised :thumbsup:"))
			}
			return nil
		},
	}

	kinds := make([]string, 0, len(types.Kinds()))
	for _, k := range types.Kinds() {
		kinds = append(kinds, string(k))
	}
	cmd.Flags().StringVar(&faultKind, "fault", "", "fault kind to inject, one of: "+strings.Join(kinds, ", "))
	cmd.Flags().IntVar(&durationMs, "duration-ms", 500, "duration for latency faults (ms)")
	cmd.Flags().IntVar(&errorCode, "error-code", 500, "error code for error faults")
	cmd.Flags().StringVar(&message, "message", "Injected fault", "error message")
	cmd.Flags().StringVar(&target, "target", "*", "target label")
	_ = cmd.MarkFlagRequired("fault")
	return cmd
}
