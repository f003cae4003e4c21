package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TheReshkin/workout-tracker/internal/dateutil"
	"github.com/TheReshkin/workout-tracker/internal/models"
	"github.com/TheReshkin/workout-tracker/internal/workoutdata"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetWeek = mcp.NewTool("get_week",
	mcp.WithDescription("Entries for the Monday-to-Sunday week containing a date. Returns the seven dates in order with any entries present."),
	mcp.WithString("date", mcp.Description("Any date inside the week (YYYY-MM-DD). Defaults to today.")),
)

var toolGetRange = mcp.NewTool("get_range",
	mcp.WithDescription("Entries whose date falls within an inclusive range."),
	mcp.WithString("start", mcp.Required(), mcp.Description("Range start (YYYY-MM-DD)")),
	mcp.WithString("end", mcp.Required(), mcp.Description("Range end (YYYY-MM-DD)")),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Progress points (one per set of every completed workout), sorted by date. Optionally filter by exact exercise name and/or muscle group."),
	mcp.WithString("exercise", mcp.Description("Exact exercise name filter")),
	mcp.WithString("group", mcp.Description("Muscle group (entry type) filter")),
)

var toolGetStats = mcp.NewTool("get_stats",
	mcp.WithDescription("Overall statistics: totals per status and per muscle group across all entries."),
)

var toolGetMonthStats = mcp.NewTool("get_month_stats",
	mcp.WithDescription("Workout counts for one calendar month: total, completed, and per-type tallies."),
	mcp.WithNumber("year", mcp.Required(), mcp.Description("Calendar year, e.g. 2025")),
	mcp.WithNumber("month", mcp.Required(), mcp.Description("Month number 1-12")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("Deduplicated, sorted names of all exercises appearing in the workout data."),
)

var toolListMuscleGroups = mcp.NewTool("list_muscle_groups",
	mcp.WithDescription("Deduplicated, sorted muscle group (type) labels appearing in the workout data."),
)

var toolLogWorkout = mcp.NewTool("log_workout",
	mcp.WithDescription("Create or replace the entry at a date. The entry is a JSON object with status (planned|done|skipped|illness), type, and optional exercises/notes/duration."),
	mcp.WithString("date", mcp.Required(), mcp.Description("Entry date (YYYY-MM-DD)")),
	mcp.WithString("entry", mcp.Required(), mcp.Description("JSON-encoded workout entry")),
)

var toolMoveWorkout = mcp.NewTool("move_workout",
	mcp.WithDescription("Move the workout at one date to another. The source is relabeled skipped with a moved_to reference; any entry at the target date is overwritten."),
	mcp.WithString("from", mcp.Required(), mcp.Description("Source date (YYYY-MM-DD)")),
	mcp.WithString("to", mcp.Required(), mcp.Description("Target date (YYYY-MM-DD)")),
)

var toolMarkIllness = mcp.NewTool("mark_illness",
	mcp.WithDescription("Stamp every date in an inclusive range as an illness day, overwriting any prior entries in the range."),
	mcp.WithString("start", mcp.Required(), mcp.Description("Period start (YYYY-MM-DD)")),
	mcp.WithString("end", mcp.Required(), mcp.Description("Period end (YYYY-MM-DD)")),
	mcp.WithString("reason", mcp.Description("Reason recorded on each stamped day")),
)

var toolDeleteWorkout = mcp.NewTool("delete_workout",
	mcp.WithDescription("Delete the entry at a date. Unknown dates are a no-op."),
	mcp.WithString("date", mcp.Required(), mcp.Description("Entry date (YYYY-MM-DD)")),
)

var toolGetLibrary = mcp.NewTool("get_exercise_library",
	mcp.WithDescription("The exercise library: templates with muscle groups, defaults, and 1RM history."),
)

var toolRecordOneRM = mcp.NewTool("record_one_rm",
	mcp.WithDescription("Record a one-rep-max measurement for a library exercise. Appends to the history and updates the cached current value."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Library exercise name")),
	mcp.WithNumber("value", mcp.Required(), mcp.Description("Measured 1RM in kilograms")),
	mcp.WithString("date", mcp.Description("Measurement date (YYYY-MM-DD). Defaults to today.")),
	mcp.WithString("notes", mcp.Description("Optional note on the record")),
)

// --- Tool handlers ---

func (h *handlers) getWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day := time.Now()
	if s := req.GetString("date", ""); s != "" {
		day = dateutil.ParseDate(s)
		if day.IsZero() {
			return mcp.NewToolResultError("invalid date: " + s), nil
		}
	}

	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("get_week", err), nil
	}

	dates := dateutil.WeekDates(day)
	entries := models.WorkoutData{}
	for _, d := range dates {
		if e, ok := data[d]; ok {
			entries[d] = e
		}
	}
	return toolJSON(map[string]any{
		"week":    dateutil.WeekNumber(day),
		"dates":   dates,
		"entries": entries,
	})
}

func (h *handlers) getRange(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := req.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError("start parameter is required"), nil
	}
	end, err := req.RequireString("end")
	if err != nil {
		return mcp.NewToolResultError("end parameter is required"), nil
	}

	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("get_range", err), nil
	}
	return toolJSON(workoutdata.DataForDateRange(data, start, end))
}

func (h *handlers) getProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("get_progress", err), nil
	}
	points := workoutdata.ProgressData(data, req.GetString("exercise", ""), req.GetString("group", ""))
	return toolJSON(points)
}

func (h *handlers) getStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("get_stats", err), nil
	}
	return toolJSON(workoutdata.Stats(data))
}

func (h *handlers) getMonthStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := req.RequireInt("year")
	if err != nil {
		return mcp.NewToolResultError("year parameter is required"), nil
	}
	month, err := req.RequireInt("month")
	if err != nil {
		return mcp.NewToolResultError("month parameter is required"), nil
	}
	if month < 1 || month > 12 {
		return mcp.NewToolResultError("month must be 1-12"), nil
	}

	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("get_month_stats", err), nil
	}
	return toolJSON(workoutdata.MonthWorkoutStats(year, time.Month(month), data))
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("list_exercises", err), nil
	}
	return toolJSON(workoutdata.AllExercises(data))
}

func (h *handlers) listMuscleGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("list_muscle_groups", err), nil
	}
	return toolJSON(workoutdata.AllMuscleGroups(data))
}

func (h *handlers) logWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date parameter is required"), nil
	}
	if dateutil.ParseDate(date).IsZero() {
		return mcp.NewToolResultError("invalid date: " + date), nil
	}
	raw, err := req.RequireString("entry")
	if err != nil {
		return mcp.NewToolResultError("entry parameter is required"), nil
	}

	var entry models.WorkoutEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return mcp.NewToolResultError("invalid entry JSON: " + err.Error()), nil
	}

	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("log_workout", err), nil
	}
	if err := h.ds.SaveWorkoutData(workoutdata.SetEntry(data, date, entry)); err != nil {
		h.log.Error("mcp log_workout save", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}
	return toolJSON(map[string]any{"date": date, "saved": true})
}

func (h *handlers) moveWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from, err := req.RequireString("from")
	if err != nil {
		return mcp.NewToolResultError("from parameter is required"), nil
	}
	to, err := req.RequireString("to")
	if err != nil {
		return mcp.NewToolResultError("to parameter is required"), nil
	}

	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("move_workout", err), nil
	}
	if _, ok := data[from]; !ok {
		return mcp.NewToolResultError("no workout at " + from), nil
	}
	overwritten := false
	if _, ok := data[to]; ok {
		overwritten = true
	}

	if err := h.ds.SaveWorkoutData(workoutdata.Move(data, from, to)); err != nil {
		h.log.Error("mcp move_workout save", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}
	return toolJSON(map[string]any{"from": from, "to": to, "overwritten": overwritten})
}

func (h *handlers) markIllness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := req.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError("start parameter is required"), nil
	}
	end, err := req.RequireString("end")
	if err != nil {
		return mcp.NewToolResultError("end parameter is required"), nil
	}
	startDay := dateutil.ParseDate(start)
	endDay := dateutil.ParseDate(end)
	if startDay.IsZero() || endDay.IsZero() {
		return mcp.NewToolResultError("invalid date range"), nil
	}
	reason := req.GetString("reason", "")

	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("mark_illness", err), nil
	}
	next := workoutdata.MarkIllnessPeriod(data, start, end, reason)
	if err := h.ds.SaveWorkoutData(next); err != nil {
		h.log.Error("mcp mark_illness save", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}
	days := 0
	if !endDay.Before(startDay) {
		days = int(endDay.Sub(startDay).Hours()/24) + 1
	}
	return toolJSON(map[string]any{"start": start, "end": end, "days": days})
}

func (h *handlers) deleteWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date parameter is required"), nil
	}

	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return h.loadError("delete_workout", err), nil
	}
	_, existed := data[date]
	if err := h.ds.SaveWorkoutData(workoutdata.DeleteEntry(data, date)); err != nil {
		h.log.Error("mcp delete_workout save", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}
	return toolJSON(map[string]any{"date": date, "deleted": existed})
}

func (h *handlers) getLibrary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lib, err := h.ds.LoadExerciseLibrary()
	if err != nil {
		h.log.Error("mcp get_exercise_library", "error", err)
		return mcp.NewToolResultError("load failed: " + err.Error()), nil
	}
	return toolJSON(lib)
}

func (h *handlers) recordOneRM(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	value, err := req.RequireFloat("value")
	if err != nil {
		return mcp.NewToolResultError("value parameter is required"), nil
	}
	date := req.GetString("date", dateutil.FormatDate(time.Now()))

	lib, err := h.ds.LoadExerciseLibrary()
	if err != nil {
		h.log.Error("mcp record_one_rm", "error", err)
		return mcp.NewToolResultError("load failed: " + err.Error()), nil
	}
	if !lib.RecordOneRM(name, date, value, req.GetString("notes", "")) {
		return mcp.NewToolResultError("exercise not in library: " + name), nil
	}
	if err := h.ds.SaveExerciseLibrary(lib); err != nil {
		h.log.Error("mcp record_one_rm save", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}
	return toolJSON(map[string]any{"exercise": name, "date": date, "value": value})
}

// --- helpers ---

func toolJSON(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("encoding result: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) loadError(tool string, err error) *mcp.CallToolResult {
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("load failed: " + err.Error())
}
