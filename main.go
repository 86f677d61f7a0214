package main

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/briangreenhill/fittrack/internal/activity"
	"github.com/briangreenhill/fittrack/internal/config"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	w := os.Stdout
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.Error("Error opening database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := activity.Migrate(context.Background(), db); err != nil {
		logger.Error("Error preparing database", slog.Any("error", err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	activityService := activity.NewService(db, logger, activity.NewMetrics(registry))

	if err := run(w, os.Args[1:], cfg, logger, activityService, registry); err != nil {
		var unsupported *activity.UnsupportedWorkoutError
		if errors.As(err, &unsupported) {
			logger.Error("Unsupported workout", slog.String("code", unsupported.Code))
		} else {
			logger.Error("Error running fittrack", slog.Any("error", err))
		}
		db.Close()
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, cfg *config.Config, logger *slog.Logger, activityService *activity.Service, gatherer prometheus.Gatherer) error {
	cli := activity.NewCLI(w, logger, activityService, gatherer, cfg.Addr, args)

	if err := cli.Run(args); err != nil {
		return err
	}

	return nil
}
