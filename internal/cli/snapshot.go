package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hb/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all heartbeats to a JSON snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HeartbeatAdapter()
			return adapter.Export(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "heartbeats.json", "snapshot file to write")

	return cmd
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load heartbeats from a JSON snapshot",
		Long: `Load heartbeats from a JSON snapshot written by 'hb export'. Every
record is validated before anything is inserted; with --replace the existing
heartbeats are dropped first, otherwise duplicate codes fail the import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HeartbeatAdapter()
			return adapter.Import(cmd.Context(), args[0], replace)
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "drop existing heartbeats before importing")

	return cmd
}
