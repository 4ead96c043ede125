// Command vacuumsimd runs the vacuum cleaning simulator as an HTTP daemon:
// it builds a controller from a config file, serves the query/command API
// over it, and records each run's outcome to the run log database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/vacuumsim/internal/api"
	"github.com/banshee-data/vacuumsim/internal/controller"
	"github.com/banshee-data/vacuumsim/internal/fsutil"
	"github.com/banshee-data/vacuumsim/internal/monitoring"
	"github.com/banshee-data/vacuumsim/internal/runlog"
	"github.com/banshee-data/vacuumsim/internal/security"
	"github.com/banshee-data/vacuumsim/internal/timeutil"
	"github.com/banshee-data/vacuumsim/internal/version"
)

// clock supplies wall-clock reads for run-log bookkeeping, swappable in tests.
var clock timeutil.Clock = timeutil.RealClock{}

// configFS supplies config-file reads, swappable in tests.
var configFS fsutil.FileSystem = fsutil.OSFileSystem{}

var (
	listen      = flag.String("listen", ":8090", "Listen address for the HTTP API")
	configFile  = flag.String("config", "", "Path to JSON controller configuration file (optional)")
	dbPath      = flag.String("db-path", "vacuumsim_runs.db", "Path to the run log SQLite database")
	versionFlag = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if *versionFlag {
		fmt.Printf("vacuumsimd v%s (git SHA: %s)\n", version.Version, version.GitSHA)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	store, err := runlog.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open run log: %v", err)
	}
	defer store.Close()

	container, err := api.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to build initial controller: %v", err)
	}

	server := api.NewServer(container, store)
	httpServer := &http.Server{Addr: *listen, Handler: server.ServeMux()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runID := uuid.New()
	startedAt := clock.Now()
	monitoring.Logf("starting vacuumsimd run %s, listening on %s", runID, *listen)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	monitoring.Logf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		monitoring.Logf("warning: graceful shutdown failed: %v", err)
	}

	recordFinalRun(container, store, runID, startedAt)
}

func loadConfig(path string) (*controller.Config, error) {
	if path == "" {
		return controller.EmptyConfig(), nil
	}
	if err := security.ValidateExportPath(path); err != nil {
		return nil, fmt.Errorf("refusing to read config: %w", err)
	}
	data, err := configFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return controller.ParseConfig(data)
}

func recordFinalRun(container *api.Container, store *runlog.Store, runID uuid.UUID, startedAt time.Time) {
	ctrl, err := container.Current()
	if err != nil {
		monitoring.Logf("warning: could not snapshot final controller state: %v", err)
		return
	}

	seed, _ := ctrl.Config.GetRandomSeed()
	_, err = store.RecordRun(runlog.RunRecord{
		RoomType:           ctrl.Config.GetRoomType(),
		CleaningMode:       ctrl.Mode.String(),
		RandomSeed:         seed,
		StartedAt:          startedAt,
		FinishedAt:         clock.Now(),
		Steps:              ctrl.Steps,
		FinalState:         ctrl.State.String(),
		CleaningPercentage: ctrl.Environment.CleaningPercentage(),
		TotalDistance:      ctrl.Agent.Stats.TotalDistance,
		BatteryCycles:      ctrl.Agent.Stats.BatteryCycles,
		StuckCount:         ctrl.Agent.Stats.StuckCount,
		ErrorsEncountered:  ctrl.Agent.Stats.ErrorsEncountered,
	})
	if err != nil {
		monitoring.Logf("warning: failed to record run %s: %v", runID, err)
	}
}
