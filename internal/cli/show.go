package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/hb/internal/wire"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show CODE",
		Short: "Show when an action was last done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HeartbeatAdapter()
			return adapter.Show(cmd.Context(), args[0], time.Now())
		},
	}
}
