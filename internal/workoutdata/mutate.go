package workoutdata

import (
	"github.com/TheReshkin/workout-tracker/internal/dateutil"
	"github.com/TheReshkin/workout-tracker/internal/models"
)

// All mutations here are copy-on-write: the input map is never modified and
// the returned map is a fresh value. Overwrite confirmation, where wanted,
// is the calling layer's concern.

// Move relocates the entry at fromDate to toDate. The source entry keeps
// its exercises and notes but is relabeled skipped with a moved_to
// cross-reference; the copy written at toDate gains moved_from. An existing
// entry at toDate is overwritten unconditionally. When fromDate has no
// entry the map is returned unchanged.
func Move(data models.WorkoutData, fromDate, toDate string) models.WorkoutData {
	next := data.Clone()
	entry, ok := next[fromDate]
	if !ok {
		return next
	}

	moved := entry
	moved.MovedFrom = fromDate

	source := entry
	source.Status = models.StatusSkipped
	source.MovedTo = toDate

	next[fromDate] = source
	next[toDate] = moved
	return next
}

// MarkIllnessPeriod overwrites every date from startDate to endDate
// inclusive with an illness entry carrying the given reason, discarding any
// prior entries in the range. Unparsable bounds yield the input unchanged.
func MarkIllnessPeriod(data models.WorkoutData, startDate, endDate, reason string) models.WorkoutData {
	next := data.Clone()
	start := dateutil.ParseDate(startDate)
	end := dateutil.ParseDate(endDate)
	if start.IsZero() || end.IsZero() {
		return next
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		next[dateutil.FormatDate(d)] = models.WorkoutEntry{
			Status: models.StatusIllness,
			Type:   models.TypeIllness,
			Reason: reason,
		}
	}
	return next
}

// SetEntry writes entry at date, creating or replacing it.
func SetEntry(data models.WorkoutData, date string, entry models.WorkoutEntry) models.WorkoutData {
	next := data.Clone()
	next[date] = entry
	return next
}

// UpdateEntry replaces the entry at date only when one already exists.
func UpdateEntry(data models.WorkoutData, date string, entry models.WorkoutEntry) models.WorkoutData {
	next := data.Clone()
	if _, ok := next[date]; ok {
		next[date] = entry
	}
	return next
}

// DeleteEntry removes the entry at date. Unknown dates are a no-op.
func DeleteEntry(data models.WorkoutData, date string) models.WorkoutData {
	next := data.Clone()
	delete(next, date)
	return next
}
