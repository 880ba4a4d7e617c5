// liftlog-import loads a JSON export of the original browser app's data
// (workout logs, optional program and settings) into the store. Derived
// stats are recomputed on import, so stale or missing volume/PR fields in
// the export are corrected.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// export mirrors the browser app's localStorage payloads.
type export struct {
	Logs     []models.WorkoutLog `json:"logs"`
	Program  []models.WorkoutDay `json:"program,omitempty"`
	Settings *models.Settings    `json:"settings,omitempty"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	filePath := flag.String("file", "", "path to JSON export file (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without writing to the store")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *filePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-import -config config.yaml -file export.json [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Error("failed to read export file", "path", *filePath, "error", err)
		os.Exit(1)
	}

	var exp export
	if err := json.Unmarshal(data, &exp); err != nil {
		log.Error("failed to parse export file", "error", err)
		os.Exit(1)
	}
	log.Info("export parsed", "logs", len(exp.Logs), "program_days", len(exp.Program))

	if *dryRun {
		log.Info("DRY RUN mode — nothing will be written to the store")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := storage.RunMigrations(cfg.Storage.DataDir); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DataDir, log)
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	// Oldest first, so each log's PRs are computed against the sessions
	// that actually preceded it.
	sort.SliceStable(exp.Logs, func(i, j int) bool { return exp.Logs[i].Date < exp.Logs[j].Date })

	var imported, skipped int
	for _, l := range exp.Logs {
		if _, err := store.UpsertLog(ctx, l); err != nil {
			log.Warn("skipping log", "date", l.Date, "dayId", l.DayID, "error", err)
			skipped++
			continue
		}
		imported++
	}

	if len(exp.Program) > 0 {
		if _, err := store.SaveProgram(ctx, exp.Program); err != nil {
			log.Error("failed to import program", "error", err)
			os.Exit(1)
		}
		log.Info("program imported", "days", len(exp.Program))
	}

	if exp.Settings != nil {
		if err := store.SaveSettings(ctx, *exp.Settings); err != nil {
			log.Error("failed to import settings", "error", err)
			os.Exit(1)
		}
		log.Info("settings imported")
	}

	log.Info("import complete", "imported", imported, "skipped", skipped)
}
