package db

// SchemaSQL is the complete schema for fresh hb installs.
// This is the single source of truth for the database schema. Tests build
// their in-memory databases from GetSchemaSQL() so repository code and test
// schemas cannot drift. Keep it in sync with migrations when either changes.
const SchemaSQL = `
-- Heartbeats: one row per tracked action. Insertion order (rowid) is the
-- display order. last_ping is epoch seconds; NULL = never pinged.
CREATE TABLE IF NOT EXISTS heartbeats (
	code TEXT PRIMARY KEY,
	last_line TEXT NOT NULL,
	never_line TEXT NOT NULL,
	leniency_seconds INTEGER NOT NULL DEFAULT 0 CHECK(leniency_seconds >= 0),
	last_ping INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install or pre-versioning database. If the heartbeats table
		// already exists, migrations bring it up to date; otherwise create
		// the modern schema directly and mark all migrations applied.
		var oldTableCount int
		err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='heartbeats'").Scan(&oldTableCount)
		if err != nil {
			return err
		}

		if oldTableCount > 0 {
			return RunMigrations()
		}

		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, migration := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
