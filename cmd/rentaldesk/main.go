package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/lululale/zoom-car-rental/internal/config"
	"github.com/lululale/zoom-car-rental/internal/fleet"
	"github.com/lululale/zoom-car-rental/internal/jobs"
	"github.com/lululale/zoom-car-rental/internal/logger"
	"github.com/lululale/zoom-car-rental/internal/repository"
	"github.com/lululale/zoom-car-rental/internal/repository/file"
	"github.com/lululale/zoom-car-rental/internal/repository/postgres"
	"github.com/lululale/zoom-car-rental/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific scan once and exit ('overdue-rentals', 'pending-inspections', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Zoom Car Rental desk...", "log_level", cfg.Log.Level, "store_type", cfg.Store.Type)

	// Load the fleet catalog
	var catalog *fleet.Catalog
	if cfg.Fleet.Path != "" {
		catalog, err = fleet.Load(cfg.Fleet.Path)
		if err != nil {
			logger.Error("Failed to load fleet catalog", "error", err, "path", cfg.Fleet.Path)
			log.Fatalf("Failed to load fleet catalog: %v", err)
		}
	} else {
		catalog = fleet.Default()
	}
	logger.Info("Fleet catalog loaded", "vehicles", len(catalog.List("all")))

	// Open the ledger store
	var store repository.Store
	switch cfg.Store.Type {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		store = postgres.NewStore(db)
		logger.Info("Database connection established")
	default:
		fileStore, err := file.Open(cfg.Store.Path)
		if err != nil {
			logger.Error("Failed to open ledger file", "error", err, "path", cfg.Store.Path)
			log.Fatalf("Failed to open ledger file: %v", err)
		}
		store = fileStore
		logger.Info("Ledger file loaded", "path", cfg.Store.Path)
	}

	logLedgerSummary(store)

	// Initialize job runner
	jobRunner := jobs.NewJobRunner(store, cfg)

	// Run-once mode: execute the requested scan and exit
	if *runOnce != "" {
		switch *runOnce {
		case "overdue-rentals":
			jobRunner.RunOverdueRentalScan()
		case "pending-inspections":
			jobRunner.RunPendingInspectionScan()
		case "all":
			jobRunner.RunAllScans()
		default:
			log.Fatalf("Unknown scan: %s", *runOnce)
		}
		return
	}

	// Start the scheduler
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig)

	sched.Stop()
	logger.Info("Shutdown complete")
}

// logLedgerSummary reports the size of each collection at startup.
func logLedgerSummary(store repository.Store) {
	ctx := context.Background()

	reservations, err := store.Reservations().List(ctx)
	if err != nil {
		logger.Error("Failed to read reservations", "error", err)
		return
	}
	rentals, _ := store.Rentals().List(ctx)
	returns, _ := store.Returns().List(ctx)
	inspections, _ := store.Inspections().List(ctx)

	logger.Info("Ledger loaded",
		"reservations", len(reservations),
		"rentals", len(rentals),
		"returns", len(returns),
		"inspections", len(inspections))
}
