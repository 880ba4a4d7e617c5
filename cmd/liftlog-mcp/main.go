// liftlog-mcp serves the workout store to MCP clients (AI assistants) over
// stdio. It opens the same database as the main server; run migrations first
// via liftlog or liftlog -migrate-only.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/claude/liftlog/internal/config"
	liftlogmcp "github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Logs go to stderr: stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

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

	mcpServer := liftlogmcp.New(store, Version, log)
	log.Info("MCP server starting on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
