// Package mcp exposes the workout store to AI assistants over the Model
// Context Protocol. All tools are read-only; writes stay behind the HTTP API.
package mcp

import (
	"log/slog"

	"github.com/claude/liftlog/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(store *storage.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog workout tracking server. Query workout logs, personal records, training volume, and the current program."),
	)

	h := &handlers{store: store, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutLogs, Handler: h.getWorkoutLogs},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetTrainingVolume, Handler: h.getTrainingVolume},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetNextWorkout, Handler: h.getNextWorkout},
		server.ServerTool{Tool: toolGetSettings, Handler: h.getSettings},
	)

	s.AddResources(
		server.ServerResource{Resource: resRecentLogs, Handler: h.recentLogs},
		server.ServerResource{Resource: resProgram, Handler: h.program},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store *storage.Store
	log   *slog.Logger
}

// --- Resource definitions ---

var resRecentLogs = mcp.NewResource(
	"liftlog://recent_logs",
	"Recent Workout Logs",
	mcp.WithResourceDescription("Workout logs from the last 14 days with volume, set counts, and personal records"),
	mcp.WithMIMEType("application/json"),
)

var resProgram = mcp.NewResource(
	"liftlog://program",
	"Workout Program",
	mcp.WithResourceDescription("The current workout program: days, exercises, and targets"),
	mcp.WithMIMEType("application/json"),
)
