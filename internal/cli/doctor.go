package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hb/internal/config"
	"github.com/example/hb/internal/core/heartbeat"
	"github.com/example/hb/internal/db"
	"github.com/example/hb/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the hb environment",
		Long: `Health check for hb.

Validates:
- Data directory (~/.hb/)
- Database file openable and schema up to date
- Stored records satisfy the data model (templates, leniency)

Examples:
  hb doctor              # Run full health check
  hb doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDataDir(),
				checkDatabase(),
				checkRecords(cmd),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'hb init' to set up a fresh environment.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDataDir validates the data directory exists
func checkDataDir() CheckResult {
	dir, err := config.DefaultDir()
	if err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: "  Cannot get home directory"}
	}

	if _, err := os.Stat(dir); err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: fmt.Sprintf("  %s missing - run 'hb init'", dir)}
	}

	return CheckResult{Name: "Data directory", Status: "✓"}
}

// checkDatabase validates the database opens and the schema is current
func checkDatabase() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	var version int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  schema version unreadable: %v", err)}
	}

	return CheckResult{Name: "Database", Status: "✓"}
}

// checkRecords validates every stored record against the data model
func checkRecords(cmd *cobra.Command) CheckResult {
	beats, err := wire.HeartbeatService().List(cmd.Context())
	if err != nil {
		return CheckResult{Name: "Records", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	bad := ""
	for _, h := range beats {
		if err := heartbeat.Validate(h.Code, h.LastLine, h.NeverLine, h.LeniencySeconds); err != nil {
			bad += fmt.Sprintf("  %v\n", err)
		}
	}
	if bad != "" {
		return CheckResult{Name: "Records", Status: "✗", Details: bad}
	}

	return CheckResult{Name: "Records", Status: "✓"}
}
