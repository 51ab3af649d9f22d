package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/hb/internal/config"
	"github.com/example/hb/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the hb database",
		Long:  `Initialize the hb database at ~/.hb/hb.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing hb database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			fmt.Println("✓ Config file created at ~/.hb/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  hb add backup --last \"backup ran %s ago\" --never \"backup has never run\"")
			fmt.Println("  hb motd")

			return nil
		},
	}
}

// initConfig creates the initial config.json file if it doesn't exist yet.
func initConfig() error {
	dir, err := config.DefaultDir()
	if err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(dir, "config.json")); err == nil {
		return nil // Already exists, skip
	}

	return config.Save(dir, &config.Config{Version: config.CurrentVersion})
}
