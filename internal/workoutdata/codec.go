// Package workoutdata is the pure data layer of the tracker: it parses and
// renders the JSON block embedded in the workout document, derives
// statistics from the record map, and applies copy-on-write mutations.
// Nothing here touches storage; the gateway hands text in and out.
package workoutdata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/TheReshkin/workout-tracker/internal/models"
)

// fencedBlock matches the first ```workout fenced code block in a document.
var fencedBlock = regexp.MustCompile("(?s)```workout\\s*\\n(.*?)\\n```")

const (
	documentHeading = "# Workout Tracker Data"
	documentNotice  = "*This file holds workout data in a machine-managed format. Do not edit the block by hand.*"
)

// Codec converts between document text and the in-memory aggregates.
// Parse failures are logged and degrade to empty values so a broken
// document never takes down a caller.
type Codec struct {
	log *slog.Logger
}

// NewCodec returns a Codec logging through log.
func NewCodec(log *slog.Logger) *Codec {
	return &Codec{log: log}
}

// ParseWorkoutData extracts the workout block from document text and
// decodes it. A missing block or invalid JSON yields an empty map; callers
// cannot distinguish that from a truly empty document.
func (c *Codec) ParseWorkoutData(text string) models.WorkoutData {
	m := fencedBlock.FindStringSubmatch(text)
	if m == nil {
		if strings.TrimSpace(text) != "" {
			c.log.Warn("no workout block found in document")
		}
		return models.WorkoutData{}
	}

	var data models.WorkoutData
	if err := json.Unmarshal([]byte(m[1]), &data); err != nil {
		c.log.Error("parsing workout data", "error", err)
		return models.WorkoutData{}
	}
	if data == nil {
		return models.WorkoutData{}
	}
	for date, entry := range data {
		data[date] = normalizeEntry(entry)
	}
	return data
}

// SerializeWorkoutData renders the fixed document template: heading, the
// JSON-encoded map inside a workout fence, and the machine-managed notice.
// ParseWorkoutData(SerializeWorkoutData(d)) is structurally equal to d.
func (c *Codec) SerializeWorkoutData(data models.WorkoutData) string {
	if data == nil {
		data = models.WorkoutData{}
	}
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		c.log.Error("encoding workout data", "error", err)
		body = []byte("{}")
	}
	return fmt.Sprintf("%s\n\n```workout\n%s\n```\n\n%s\n", documentHeading, body, documentNotice)
}

// ParseExerciseLibrary decodes a library document, whose entire content is
// the JSON object. Invalid JSON yields an empty library.
func (c *Codec) ParseExerciseLibrary(text string) *models.ExerciseLibrary {
	if strings.TrimSpace(text) == "" {
		return models.NewExerciseLibrary()
	}
	var lib models.ExerciseLibrary
	if err := json.Unmarshal([]byte(text), &lib); err != nil {
		c.log.Error("parsing exercise library", "error", err)
		return models.NewExerciseLibrary()
	}
	if lib.Exercises == nil {
		lib.Exercises = map[string]models.ExerciseSpec{}
	}
	return &lib
}

// SerializeExerciseLibrary renders the library as indented JSON.
func (c *Codec) SerializeExerciseLibrary(lib *models.ExerciseLibrary) string {
	if lib == nil {
		lib = models.NewExerciseLibrary()
	}
	body, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		c.log.Error("encoding exercise library", "error", err)
		return `{"exercises":{}}`
	}
	return string(body)
}

// normalizeEntry maps malformed field values to defaults: unknown statuses
// become planned (Status decodes permissively already; this also covers
// entries built in code) and negative rep counts become 0.
func normalizeEntry(e models.WorkoutEntry) models.WorkoutEntry {
	if !e.Status.Valid() {
		e.Status = models.StatusPlanned
	}
	for i := range e.Exercises {
		sets := e.Exercises[i].Sets
		for j := range sets {
			if sets[j].Reps < 0 {
				sets[j].Reps = 0
			}
		}
	}
	return e
}
