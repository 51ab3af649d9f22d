package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hb/internal/cli"
	"github.com/example/hb/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hb",
		Short:   "hb - track when you last did things",
		Version: version.String(),
		Long: `hb tracks discrete "last performed" events (heartbeats), each identified
by a code, and reports how long ago each one was last recorded. Run 'hb motd'
from your shell startup to see the summary.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.RemoveCmd())
	rootCmd.AddCommand(cli.PingCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.MotdCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
