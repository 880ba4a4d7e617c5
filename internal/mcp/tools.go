package mcp

import (
	"context"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// defaultDateRange returns start/end log dates (YYYY-MM-DD, inclusive),
// defaulting to the last 30 days.
func defaultDateRange(startStr, endStr string) (string, string, error) {
	end := time.Now()
	if endStr != "" {
		t, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return "", "", err
		}
		end = t
	}

	start := end.AddDate(0, 0, -30)
	if startStr != "" {
		t, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return "", "", err
		}
		start = t
	}

	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}

// --- Tool definitions ---

var toolGetWorkoutLogs = mcp.NewTool("get_workout_logs",
	mcp.WithDescription("Retrieve saved workout logs with sets, total volume, completed set counts, and personal records. Dates filter on the log's calendar date."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("All-time best valid weight per exercise, with the date each record was set."),
)

var toolGetTrainingVolume = mcp.NewTool("get_training_volume",
	mcp.WithDescription("Per-session training volume (sum of weight x reps over completed sets), oldest first, for charting or trend analysis."),
	mcp.WithString("limit", mcp.Description("Number of most recent sessions to include. Defaults to 14.")),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("The current workout program: days with their exercises and set/weight targets."),
)

var toolGetNextWorkout = mcp.NewTool("get_next_workout",
	mcp.WithDescription("The recommended next program day, based on the most recently logged session."),
)

var toolGetSettings = mcp.NewTool("get_settings",
	mcp.WithDescription("User settings: rest durations and membership dates."),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutLogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultDateRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format, want YYYY-MM-DD: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(h.store.LogsBetween(ctx, start, end))
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.store.PersonalRecords(ctx))
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getTrainingVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 14
	if l := req.GetString("limit", ""); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			return mcp.NewToolResultError("limit must be a positive integer"), nil
		}
		limit = parsed
	}

	result, err := mcp.NewToolResultJSON(h.store.VolumeSeries(ctx, limit))
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.store.Program(ctx))
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getNextWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(map[string]string{"dayId": h.store.NextRecommendedDayID(ctx)})
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.store.Settings(ctx))
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}
