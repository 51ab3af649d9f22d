package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hb/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked heartbeats",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HeartbeatAdapter()
			return adapter.List(cmd.Context())
		},
	}
}
