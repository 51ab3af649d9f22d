package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hb/internal/wire"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	var lastLine string
	var neverLine string
	var leniency int64

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Start tracking a new heartbeat",
		Long: `Start tracking a new heartbeat. The last line template must contain
exactly one %s, which is filled with the elapsed time when rendered.

Examples:
  hb add backup --last "backup ran %s ago" --never "backup has never run"
  hb add water-plants --last "plants watered %s ago" --never "plants never watered" --leniency 259200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HeartbeatAdapter()
			return adapter.Add(cmd.Context(), args[0], lastLine, neverLine, leniency)
		},
	}

	cmd.Flags().StringVar(&lastLine, "last", "", "template shown once pinged, with one %s for the elapsed time")
	cmd.Flags().StringVar(&neverLine, "never", "", "line shown verbatim while never pinged")
	cmd.Flags().Int64Var(&leniency, "leniency", 0, "seconds before the heartbeat counts as overdue (0 = never)")
	cmd.MarkFlagRequired("last")
	cmd.MarkFlagRequired("never")

	return cmd
}
