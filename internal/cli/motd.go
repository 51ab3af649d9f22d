package cli

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hb/internal/config"
	"github.com/example/hb/internal/wire"
)

// MotdCmd returns the motd command
func MotdCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "motd",
		Short: "Print the heartbeat summary for terminal startup",
		Long: `Print every tracked heartbeat with its elapsed time. Overdue and
never-pinged heartbeats are highlighted in red. Add 'hb motd' to your shell
startup file to see it when a terminal opens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			} else if dir, err := config.DefaultDir(); err == nil {
				if cfg, err := config.Load(dir); err == nil && cfg.NoColor {
					color.NoColor = true
				}
			}

			adapter := wire.HeartbeatAdapter()
			return adapter.Motd(cmd.Context(), time.Now())
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	return cmd
}
