package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/hb/internal/wire"
)

// PingCmd returns the ping command
func PingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping CODE",
		Short: "Record that an action was just done",
		Long:  `Record now as the last time the heartbeat's action was performed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HeartbeatAdapter()
			return adapter.Ping(cmd.Context(), args[0], time.Now())
		},
	}
}
