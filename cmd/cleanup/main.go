// Command cleanup purges autosave snapshots that nobody has touched for
// longer than workflow.autosave_retention_days. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres/autosave"
	"github.com/heartmarshall/dossier-backend/internal/app"
	"github.com/heartmarshall/dossier-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.Workflow.AutosaveRetentionDays)

	deleted, err := autosave.New(pool).DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("autosave purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("autosave purge completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
