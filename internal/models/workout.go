// Package models defines the workout tracker's data model: the date-keyed
// record map persisted inside the workout document, and the exercise
// library persisted as a standalone JSON document.
package models

import "math"

// Fixed type labels for entries that carry no meaningful muscle group.
const (
	TypeOther   = "other"
	TypeIllness = "illness"
)

// WorkoutSet is one performed or planned set. A set has no identity beyond
// its position within the exercise's ordered sequence.
type WorkoutSet struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight,omitempty"`    // kilograms
	Duration  float64 `json:"duration,omitempty"`  // seconds, for cardio
	Distance  float64 `json:"distance,omitempty"`  // meters
	Intensity float64 `json:"intensity,omitempty"` // percent of 1RM, 0-100
	OneRM     float64 `json:"oneRM,omitempty"`     // 1RM snapshot at performance time
	Notes     string  `json:"notes,omitempty"`
}

// Volume is reps × weight; sets without a weight contribute 0.
func (s WorkoutSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// Exercise is a named movement performed within one workout. Set order
// matters: sets are numbered for display and mutation.
type Exercise struct {
	Name         string       `json:"name"`
	Sets         []WorkoutSet `json:"sets"`
	Notes        string       `json:"notes,omitempty"`
	CurrentOneRM float64      `json:"currentOneRM,omitempty"`
}

// WorkoutEntry is one calendar day's workout.
type WorkoutEntry struct {
	Status    Status     `json:"status"`
	Type      string     `json:"type"` // muscle group / category label
	Exercises []Exercise `json:"exercises,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Duration  int        `json:"duration,omitempty"` // total minutes
	MovedFrom string     `json:"moved_from,omitempty"`
	MovedTo   string     `json:"moved_to,omitempty"`
	Reason    string     `json:"reason,omitempty"` // for skipped/illness
}

// WorkoutData maps ISO date strings (YYYY-MM-DD) to entries. Absence of a
// key means no entry for that date; consumers sort dates explicitly.
type WorkoutData map[string]WorkoutEntry

// Clone returns a shallow copy of the map. Entries are value copies, so
// mutating an entry in the clone never touches the original map, while
// exercise slices stay shared until replaced.
func (d WorkoutData) Clone() WorkoutData {
	out := make(WorkoutData, len(d))
	for date, entry := range d {
		out[date] = entry
	}
	return out
}

// IntensityForWeight derives the intensity percentage from a lifted weight
// and the exercise's one-rep max. Returns 0 when the 1RM is unknown.
func IntensityForWeight(weight, oneRM float64) float64 {
	if oneRM == 0 {
		return 0
	}
	return math.Round(weight / oneRM * 100)
}

// WeightForIntensity derives the working weight from an intensity
// percentage, rounded to two decimals. Returns 0 when the 1RM is unknown.
func WeightForIntensity(intensity, oneRM float64) float64 {
	if oneRM == 0 {
		return 0
	}
	return math.Round(intensity/100*oneRM*100) / 100
}
