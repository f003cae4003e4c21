package workoutdata

import (
	"sort"
	"time"

	"github.com/TheReshkin/workout-tracker/internal/dateutil"
	"github.com/TheReshkin/workout-tracker/internal/models"
)

// DataForDateRange returns the sub-map whose keys fall within
// [startDate, endDate] inclusive, compared as calendar dates. Keys that do
// not parse as dates are skipped.
func DataForDateRange(data models.WorkoutData, startDate, endDate string) models.WorkoutData {
	start := dateutil.ParseDate(startDate)
	end := dateutil.ParseDate(endDate)

	out := models.WorkoutData{}
	if start.IsZero() || end.IsZero() {
		return out
	}
	for dateStr, entry := range data {
		d := dateutil.ParseDate(dateStr)
		if d.IsZero() {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			out[dateStr] = entry
		}
	}
	return out
}

// Volume sums reps × weight over all exercises and sets of an entry.
// Entries with no exercises yield 0.
func Volume(entry models.WorkoutEntry) float64 {
	var total float64
	for _, ex := range entry.Exercises {
		for _, set := range ex.Sets {
			total += set.Volume()
		}
	}
	return total
}

// AllExercises returns the deduplicated, sorted union of exercise names
// across all entries.
func AllExercises(data models.WorkoutData) []string {
	seen := map[string]bool{}
	for _, entry := range data {
		for _, ex := range entry.Exercises {
			seen[ex.Name] = true
		}
	}
	return sortedKeys(seen)
}

// AllMuscleGroups returns the deduplicated, sorted union of type labels
// across all entries.
func AllMuscleGroups(data models.WorkoutData) []string {
	seen := map[string]bool{}
	for _, entry := range data {
		if entry.Type != "" {
			seen[entry.Type] = true
		}
	}
	return sortedKeys(seen)
}

// ProgressPoint is one set of one exercise on one date, flattened for
// progress charting.
type ProgressPoint struct {
	Date        string  `json:"date"`
	Value       float64 `json:"value"` // weight, or 0 for bodyweight sets
	Exercise    string  `json:"exercise"`
	MuscleGroup string  `json:"muscleGroup"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight,omitempty"`
	Volume      float64 `json:"volume"`
}

// ProgressData emits one point per set of every done entry, optionally
// restricted to an exact exercise name and/or entry type. The result is
// sorted ascending by date; set order within a date is preserved.
func ProgressData(data models.WorkoutData, exerciseFilter, groupFilter string) []ProgressPoint {
	var points []ProgressPoint
	for _, dateStr := range sortedDates(data) {
		entry := data[dateStr]
		if entry.Status != models.StatusDone || len(entry.Exercises) == 0 {
			continue
		}
		if groupFilter != "" && entry.Type != groupFilter {
			continue
		}
		for _, ex := range entry.Exercises {
			if exerciseFilter != "" && ex.Name != exerciseFilter {
				continue
			}
			for _, set := range ex.Sets {
				points = append(points, ProgressPoint{
					Date:        dateStr,
					Value:       set.Weight,
					Exercise:    ex.Name,
					MuscleGroup: entry.Type,
					Reps:        set.Reps,
					Weight:      set.Weight,
					Volume:      set.Volume(),
				})
			}
		}
	}
	return points
}

// MonthStats summarizes one calendar month of entries.
type MonthStats struct {
	TotalWorkouts     int            `json:"totalWorkouts"`
	CompletedWorkouts int            `json:"completedWorkouts"`
	WorkoutTypes      map[string]int `json:"workoutTypes"`
}

// MonthWorkoutStats tallies entries whose date falls in the given year and
// month. Blank types are counted under the fixed "other" label.
func MonthWorkoutStats(year int, month time.Month, data models.WorkoutData) MonthStats {
	stats := MonthStats{WorkoutTypes: map[string]int{}}
	for dateStr, entry := range data {
		d := dateutil.ParseDate(dateStr)
		if d.IsZero() || d.Year() != year || d.Month() != month {
			continue
		}
		stats.TotalWorkouts++
		if entry.Status == models.StatusDone {
			stats.CompletedWorkouts++
		}
		typ := entry.Type
		if typ == "" {
			typ = models.TypeOther
		}
		stats.WorkoutTypes[typ]++
	}
	return stats
}

// GeneralStats holds status tallies across the whole record map.
type GeneralStats struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Planned int `json:"planned"`
	Skipped int `json:"skipped"`
	Illness int `json:"illness"`
}

// OverallStats is the single-pass summary of a record map.
type OverallStats struct {
	General       GeneralStats   `json:"general"`
	ByMuscleGroup map[string]int `json:"byMuscleGroup"`
}

// Stats tallies status counts and per-type counts across all entries.
func Stats(data models.WorkoutData) OverallStats {
	stats := OverallStats{ByMuscleGroup: map[string]int{}}
	for _, entry := range data {
		stats.General.Total++
		switch entry.Status {
		case models.StatusDone:
			stats.General.Done++
		case models.StatusPlanned:
			stats.General.Planned++
		case models.StatusSkipped:
			stats.General.Skipped++
		case models.StatusIllness:
			stats.General.Illness++
		}
		typ := entry.Type
		if typ == "" {
			typ = models.TypeOther
		}
		stats.ByMuscleGroup[typ]++
	}
	return stats
}

// sortedDates returns the map's keys in ascending order. ISO date strings
// sort lexically in chronological order.
func sortedDates(data models.WorkoutData) []string {
	dates := make([]string, 0, len(data))
	for d := range data {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
