// Package store is the document gateway. It reads and writes the workout
// and exercise-library documents, skips saves whose content is unchanged,
// and backs up the previous file before every real write. It never
// interprets document contents beyond handing text to the codec.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/TheReshkin/workout-tracker/internal/models"
	"github.com/TheReshkin/workout-tracker/internal/workoutdata"
	"github.com/google/uuid"
)

// DocumentStore owns the two persisted documents.
type DocumentStore struct {
	workoutPath string
	libraryPath string
	backupDir   string
	codec       *workoutdata.Codec
	state       *StateDB
	log         *slog.Logger
}

// New opens a DocumentStore over the given document paths, with save-state
// and backups kept under stateDir.
func New(workoutPath, libraryPath, stateDir string, log *slog.Logger) (*DocumentStore, error) {
	state, err := OpenStateDB(stateDir)
	if err != nil {
		return nil, err
	}
	return &DocumentStore{
		workoutPath: workoutPath,
		libraryPath: libraryPath,
		backupDir:   filepath.Join(stateDir, "backups"),
		codec:       workoutdata.NewCodec(log),
		state:       state,
		log:         log,
	}, nil
}

// Close closes the underlying state database.
func (s *DocumentStore) Close() error {
	return s.state.Close()
}

// LoadWorkoutData reads and parses the workout document. A missing file
// yields an empty map, not an error.
func (s *DocumentStore) LoadWorkoutData() (models.WorkoutData, error) {
	raw, err := os.ReadFile(s.workoutPath)
	if errors.Is(err, fs.ErrNotExist) {
		return models.WorkoutData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading workout document: %w", err)
	}
	return s.codec.ParseWorkoutData(string(raw)), nil
}

// SaveWorkoutData serializes and persists the record map.
func (s *DocumentStore) SaveWorkoutData(data models.WorkoutData) error {
	return s.saveDocument(s.workoutPath, s.codec.SerializeWorkoutData(data))
}

// LoadExerciseLibrary reads and parses the library document. A missing
// file yields an empty library.
func (s *DocumentStore) LoadExerciseLibrary() (*models.ExerciseLibrary, error) {
	raw, err := os.ReadFile(s.libraryPath)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewExerciseLibrary(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading exercise library: %w", err)
	}
	return s.codec.ParseExerciseLibrary(string(raw)), nil
}

// SaveExerciseLibrary serializes and persists the library.
func (s *DocumentStore) SaveExerciseLibrary(lib *models.ExerciseLibrary) error {
	return s.saveDocument(s.libraryPath, s.codec.SerializeExerciseLibrary(lib))
}

// RenderWorkoutData returns the document text that SaveWorkoutData would
// write, for callers that preview instead of persisting.
func (s *DocumentStore) RenderWorkoutData(data models.WorkoutData) string {
	return s.codec.SerializeWorkoutData(data)
}

// Init seeds the sample workout document and the default exercise library.
// Existing files are left untouched.
func (s *DocumentStore) Init() error {
	if _, err := os.Stat(s.workoutPath); errors.Is(err, fs.ErrNotExist) {
		if err := s.SaveWorkoutData(sampleWorkoutData()); err != nil {
			return err
		}
		s.log.Info("created workout document", "path", s.workoutPath)
	}
	if _, err := os.Stat(s.libraryPath); errors.Is(err, fs.ErrNotExist) {
		if err := s.SaveExerciseLibrary(models.DefaultLibrary()); err != nil {
			return err
		}
		s.log.Info("created exercise library", "path", s.libraryPath)
	}
	return nil
}

func (s *DocumentStore) saveDocument(path, content string) error {
	sum := hashContent([]byte(content))
	current, err := s.state.IsCurrent(path, int64(len(content)), sum)
	if err != nil {
		s.log.Warn("save-state lookup failed", "path", path, "error", err)
	} else if current {
		s.log.Debug("document unchanged, skipping save", "path", path)
		return nil
	}

	if err := s.backup(path); err != nil {
		s.log.Warn("backup failed", "path", path, "error", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := s.state.MarkSaved(path, int64(len(content)), sum); err != nil {
		s.log.Warn("recording save state failed", "path", path, "error", err)
	}
	return nil
}

// backup copies the current file at path, if any, into the backup dir under
// a uuid-suffixed name and registers it in the state database.
func (s *DocumentStore) backup(path string) error {
	prev, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return err
	}
	id := uuid.NewString()
	backupPath := filepath.Join(s.backupDir, filepath.Base(path)+"."+id)
	if err := os.WriteFile(backupPath, prev, 0o644); err != nil {
		return err
	}
	return s.state.RecordBackup(id, path, backupPath)
}

// sampleWorkoutData is the starter content written by Init: one completed
// chest day and one planned back day.
func sampleWorkoutData() models.WorkoutData {
	return models.WorkoutData{
		"2025-10-06": {
			Status: models.StatusDone,
			Type:   "chest",
			Exercises: []models.Exercise{
				{
					Name: "Bench Press",
					Sets: []models.WorkoutSet{
						{Reps: 10, Weight: 60},
						{Reps: 8, Weight: 65},
						{Reps: 6, Weight: 70},
					},
				},
				{
					Name: "Push-ups",
					Sets: []models.WorkoutSet{
						{Reps: 20},
						{Reps: 18},
						{Reps: 15},
					},
				},
			},
			Notes: "Solid chest session",
		},
		"2025-10-08": {
			Status: models.StatusPlanned,
			Type:   "back",
			Notes:  "Weighted pull-ups",
		},
	}
}
