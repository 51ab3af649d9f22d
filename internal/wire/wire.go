// Package wire provides dependency injection for the hb application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/hb/internal/adapters/cli"
	"github.com/example/hb/internal/adapters/persistence"
	"github.com/example/hb/internal/adapters/sqlite"
	"github.com/example/hb/internal/app"
	"github.com/example/hb/internal/db"
	"github.com/example/hb/internal/ports/primary"
)

var (
	heartbeatService primary.HeartbeatService
	once             sync.Once
)

// HeartbeatService returns the singleton HeartbeatService instance.
func HeartbeatService() primary.HeartbeatService {
	once.Do(initServices)
	return heartbeatService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	repo := sqlite.NewHeartbeatRepository(database)
	snapshots := persistence.NewSnapshotStore()

	heartbeatService = app.NewHeartbeatService(repo, snapshots)
}

// HeartbeatAdapter returns a new HeartbeatAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func HeartbeatAdapter() *cliadapter.HeartbeatAdapter {
	return HeartbeatAdapterWithOutput(os.Stdout)
}

// HeartbeatAdapterWithOutput returns a new HeartbeatAdapter writing to the
// given output. This variant allows testing or alternate output destinations.
func HeartbeatAdapterWithOutput(out io.Writer) *cliadapter.HeartbeatAdapter {
	once.Do(initServices)
	return cliadapter.NewHeartbeatAdapter(heartbeatService, out)
}
