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

func (h *handlers) currentWeek(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dates := dateutil.WeekDates(now)
	entries := models.WorkoutData{}
	for _, d := range dates {
		if e, ok := data[d]; ok {
			entries[d] = e
		}
	}

	return resourceJSON(req, map[string]any{
		"week":    dateutil.WeekNumber(now),
		"dates":   dates,
		"entries": entries,
	})
}

func (h *handlers) statsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := h.ds.LoadWorkoutData()
	if err != nil {
		return nil, err
	}

	return resourceJSON(req, map[string]any{
		"stats":         workoutdata.Stats(data),
		"exercises":     workoutdata.AllExercises(data),
		"muscle_groups": workoutdata.AllMuscleGroups(data),
	})
}

func resourceJSON(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
