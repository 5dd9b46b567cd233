package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amoreland/tiller/internal/cli"
	"github.com/amoreland/tiller/internal/coverage"
	"github.com/amoreland/tiller/internal/db"
	"github.com/amoreland/tiller/internal/flow"
	"github.com/amoreland/tiller/internal/repository"
	"github.com/amoreland/tiller/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tiller/tiller.db
	dbPath := os.Getenv("TILLER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tiller", "tiller.db")
	}

	// Flow definition: built-in unless TILLER_FLOW points at a JSON file.
	var (
		def *flow.Definition
		err error
	)
	if flowPath := os.Getenv("TILLER_FLOW"); flowPath != "" {
		def, err = coverage.LoadFlowFile(flowPath)
	} else {
		def, err = coverage.LoadFlow()
	}
	if err != nil {
		return fmt.Errorf("loading flow definition: %w", err)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	statusRepo := repository.NewSQLiteStatusRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	checklistRepo := repository.NewSQLiteChecklistRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Status:    service.NewStatusService(uow, statusRepo),
		Records:   service.NewRecordService(uow, recordRepo),
		Checklist: service.NewChecklistService(uow, checklistRepo),
		Flow:      def,
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
