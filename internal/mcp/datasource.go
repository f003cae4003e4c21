package mcp

import (
	"github.com/TheReshkin/workout-tracker/internal/models"
	"github.com/TheReshkin/workout-tracker/internal/store"
)

// DataSource abstracts the document gateway for MCP tools, so handlers can
// be tested against an in-memory implementation.
type DataSource interface {
	LoadWorkoutData() (models.WorkoutData, error)
	SaveWorkoutData(models.WorkoutData) error
	LoadExerciseLibrary() (*models.ExerciseLibrary, error)
	SaveExerciseLibrary(*models.ExerciseLibrary) error
}

// Compile-time check: *store.DocumentStore satisfies DataSource.
var _ DataSource = (*store.DocumentStore)(nil)
