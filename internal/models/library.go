package models

import "sort"

// Difficulty is the tier of an exercise template.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// OneRMRecord is one historical one-rep-max measurement.
type OneRMRecord struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"` // kilograms
	Notes string  `json:"notes,omitempty"`
}

// ExerciseSpec is library-level metadata describing a named exercise
// template, including suggested defaults and the 1RM history.
type ExerciseSpec struct {
	Group         string        `json:"group"`
	Category      string        `json:"category,omitempty"`
	Equipment     string        `json:"equipment,omitempty"`
	Difficulty    Difficulty    `json:"difficulty,omitempty"`
	MuscleGroups  []string      `json:"muscleGroups,omitempty"`
	Description   string        `json:"description,omitempty"`
	DefaultSets   int           `json:"default_sets,omitempty"`
	DefaultReps   int           `json:"default_reps,omitempty"`
	DefaultWeight float64       `json:"default_weight,omitempty"`
	IsCardio      bool          `json:"is_cardio,omitempty"`
	OneRMHistory  []OneRMRecord `json:"oneRMHistory,omitempty"`
	CurrentOneRM  float64       `json:"currentOneRM,omitempty"`
}

// ExerciseLibrary maps unique exercise names to their specs. It is an
// independent aggregate, persisted separately from the workout data.
type ExerciseLibrary struct {
	Exercises map[string]ExerciseSpec `json:"exercises"`
}

// NewExerciseLibrary returns an empty library with an initialized map.
func NewExerciseLibrary() *ExerciseLibrary {
	return &ExerciseLibrary{Exercises: map[string]ExerciseSpec{}}
}

// Add inserts or replaces the spec stored under name.
func (l *ExerciseLibrary) Add(name string, spec ExerciseSpec) {
	if l.Exercises == nil {
		l.Exercises = map[string]ExerciseSpec{}
	}
	l.Exercises[name] = spec
}

// Delete removes the named exercise. Unknown names are a no-op.
func (l *ExerciseLibrary) Delete(name string) {
	delete(l.Exercises, name)
}

// Categories returns the sorted set of categories present in the library.
func (l *ExerciseLibrary) Categories() []string {
	seen := map[string]bool{}
	for _, spec := range l.Exercises {
		if spec.Category != "" {
			seen[spec.Category] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// RecordOneRM appends a 1RM measurement to the named exercise's history and
// refreshes its cached current value. Returns false when the exercise is
// not in the library.
func (l *ExerciseLibrary) RecordOneRM(name, date string, value float64, notes string) bool {
	spec, ok := l.Exercises[name]
	if !ok {
		return false
	}
	spec.OneRMHistory = append(spec.OneRMHistory, OneRMRecord{Date: date, Value: value, Notes: notes})
	spec.CurrentOneRM = value
	l.Exercises[name] = spec
	return true
}

// DefaultLibrary returns the starter library seeded by the init command.
func DefaultLibrary() *ExerciseLibrary {
	lib := NewExerciseLibrary()
	for name, spec := range map[string]ExerciseSpec{
		"Bench Press":       {Group: "chest", Category: "chest", DefaultSets: 3, DefaultReps: 8},
		"Dumbbell Press":    {Group: "chest", Category: "chest", DefaultSets: 3, DefaultReps: 10},
		"Push-ups":          {Group: "chest", Category: "chest", DefaultSets: 3, DefaultReps: 15},
		"Pull-ups":          {Group: "back", Category: "back", DefaultSets: 3, DefaultReps: 8},
		"Barbell Row":       {Group: "back", Category: "back", DefaultSets: 3, DefaultReps: 8},
		"Deadlift":          {Group: "back", Category: "back", DefaultSets: 3, DefaultReps: 5},
		"Squat":             {Group: "legs", Category: "legs", DefaultSets: 4, DefaultReps: 10},
		"Leg Press":         {Group: "legs", Category: "legs", DefaultSets: 3, DefaultReps: 12},
		"Lunges":            {Group: "legs", Category: "legs", DefaultSets: 3, DefaultReps: 10},
		"Overhead Press":    {Group: "shoulders", Category: "shoulders", DefaultSets: 3, DefaultReps: 8},
		"Lateral Raise":     {Group: "shoulders", Category: "shoulders", DefaultSets: 3, DefaultReps: 12},
		"Biceps Curl":       {Group: "arms", Category: "arms", DefaultSets: 3, DefaultReps: 10},
		"Close-Grip Press":  {Group: "arms", Category: "arms", DefaultSets: 3, DefaultReps: 8},
		"Crunches":          {Group: "core", Category: "core", DefaultSets: 3, DefaultReps: 20},
		"Plank":             {Group: "core", Category: "core", DefaultSets: 3, DefaultReps: 1},
		"Running":           {Group: "cardio", Category: "cardio", IsCardio: true, DefaultSets: 1},
		"Cycling":           {Group: "cardio", Category: "cardio", IsCardio: true, DefaultSets: 1},
	} {
		lib.Add(name, spec)
	}
	return lib
}
