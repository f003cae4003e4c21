// Package mcp exposes the workout tracker to MCP clients over stdio. This
// is the host-integration surface of the tracker: editors and assistants
// call these tools instead of touching the documents directly.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Workout Tracker", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Workout tracker over a date-keyed record store. Query weeks, stats, and progress series; log workouts; move entries between dates; stamp illness periods; manage the exercise library. Dates are ISO strings (YYYY-MM-DD)."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetWeek, Handler: h.getWeek},
		server.ServerTool{Tool: toolGetRange, Handler: h.getRange},
		server.ServerTool{Tool: toolGetProgress, Handler: h.getProgress},
		server.ServerTool{Tool: toolGetStats, Handler: h.getStats},
		server.ServerTool{Tool: toolGetMonthStats, Handler: h.getMonthStats},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolListMuscleGroups, Handler: h.listMuscleGroups},
		server.ServerTool{Tool: toolLogWorkout, Handler: h.logWorkout},
		server.ServerTool{Tool: toolMoveWorkout, Handler: h.moveWorkout},
		server.ServerTool{Tool: toolMarkIllness, Handler: h.markIllness},
		server.ServerTool{Tool: toolDeleteWorkout, Handler: h.deleteWorkout},
		server.ServerTool{Tool: toolGetLibrary, Handler: h.getLibrary},
		server.ServerTool{Tool: toolRecordOneRM, Handler: h.recordOneRM},
	)

	s.AddResources(
		server.ServerResource{Resource: resCurrentWeek, Handler: h.currentWeek},
		server.ServerResource{Resource: resStats, Handler: h.statsResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resCurrentWeek = mcp.NewResource(
	"workout://current_week",
	"Current Week",
	mcp.WithResourceDescription("Entries for the Monday-to-Sunday week containing today"),
	mcp.WithMIMEType("application/json"),
)

var resStats = mcp.NewResource(
	"workout://stats",
	"Workout Statistics",
	mcp.WithResourceDescription("Status tallies, per-muscle-group counts, and the known exercise and group names"),
	mcp.WithMIMEType("application/json"),
)
