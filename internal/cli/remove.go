package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hb/internal/wire"
)

// RemoveCmd returns the remove command
func RemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove CODE",
		Short: "Stop tracking a heartbeat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HeartbeatAdapter()
			return adapter.Remove(cmd.Context(), args[0])
		},
	}
}
