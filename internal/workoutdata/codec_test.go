package workoutdata

import (
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/TheReshkin/workout-tracker/internal/models"
)

func newTestCodec() *Codec {
	return NewCodec(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// TestRoundTrip verifies parse(serialize(d)) is structurally equal to d.
func TestRoundTrip(t *testing.T) {
	c := newTestCodec()
	data := models.WorkoutData{
		"2025-10-06": {
			Status: models.StatusDone,
			Type:   "chest",
			Exercises: []models.Exercise{
				{
					Name: "Bench Press",
					Sets: []models.WorkoutSet{
						{Reps: 10, Weight: 60},
						{Reps: 8, Weight: 65, Intensity: 81, OneRM: 80},
					},
					CurrentOneRM: 80,
				},
			},
			Notes:    "felt strong",
			Duration: 55,
		},
		"2025-10-08": {
			Status: models.StatusPlanned,
			Type:   "back",
		},
		"2025-10-10": {
			Status: models.StatusSkipped,
			Type:   "legs",
			Reason: "travel",
		},
	}

	got := c.ParseWorkoutData(c.SerializeWorkoutData(data))
	if !reflect.DeepEqual(got, data) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, data)
	}
}

// TestParseResilience verifies parse-or-empty: no input variant yields an
// error or a nil map.
func TestParseResilience(t *testing.T) {
	c := newTestCodec()
	inputs := map[string]string{
		"empty":        "",
		"no block":     "# Notes\n\njust some text\n",
		"invalid json": "```workout\nnot json at all\n```",
		"other fence":  "```go\npackage main\n```",
	}

	for name, text := range inputs {
		got := c.ParseWorkoutData(text)
		if got == nil {
			t.Errorf("%s: returned nil map", name)
			continue
		}
		if len(got) != 0 {
			t.Errorf("%s: returned %d entries, want 0", name, len(got))
		}
	}
}

// TestParseFirstBlockWins verifies only the first workout block is read.
func TestParseFirstBlockWins(t *testing.T) {
	c := newTestCodec()
	text := "```workout\n{\"2025-10-06\": {\"status\": \"done\", \"type\": \"chest\"}}\n```\n\n" +
		"```workout\n{\"2025-10-07\": {\"status\": \"planned\", \"type\": \"back\"}}\n```\n"

	got := c.ParseWorkoutData(text)
	if len(got) != 1 {
		t.Fatalf("parsed %d entries, want 1", len(got))
	}
	if _, ok := got["2025-10-06"]; !ok {
		t.Error("entry from first block missing")
	}
}

// TestParseNormalizesMalformedFields verifies the validating decode:
// unknown statuses become planned and negative reps become 0.
func TestParseNormalizesMalformedFields(t *testing.T) {
	c := newTestCodec()
	text := "```workout\n{\"2025-10-06\": {\"status\": \"whatever\", \"type\": \"chest\", " +
		"\"exercises\": [{\"name\": \"Bench Press\", \"sets\": [{\"reps\": -5, \"weight\": 60}]}]}}\n```"

	got := c.ParseWorkoutData(text)
	entry, ok := got["2025-10-06"]
	if !ok {
		t.Fatal("entry missing")
	}
	if entry.Status != models.StatusPlanned {
		t.Errorf("status = %s, want planned", entry.Status)
	}
	if reps := entry.Exercises[0].Sets[0].Reps; reps != 0 {
		t.Errorf("reps = %d, want 0", reps)
	}
}

// TestSerializeTemplate verifies the fixed document shape: heading, fenced
// block, trailing notice.
func TestSerializeTemplate(t *testing.T) {
	c := newTestCodec()
	out := c.SerializeWorkoutData(models.WorkoutData{
		"2025-10-06": {Status: models.StatusPlanned, Type: "chest"},
	})

	if !strings.HasPrefix(out, "# Workout Tracker Data\n") {
		t.Errorf("missing heading, got %q", out[:40])
	}
	if !strings.Contains(out, "```workout\n") {
		t.Error("missing workout fence")
	}
	if !strings.Contains(out, "machine-managed") {
		t.Error("missing trailing notice")
	}
	if !strings.Contains(out, "  \"2025-10-06\"") {
		t.Error("JSON body is not 2-space indented")
	}
}

// TestLibraryRoundTrip verifies the library codec, whose document is the
// bare JSON object.
func TestLibraryRoundTrip(t *testing.T) {
	c := newTestCodec()
	lib := models.NewExerciseLibrary()
	lib.Add("Deadlift", models.ExerciseSpec{
		Group:        "back",
		Category:     "back",
		Difficulty:   models.DifficultyAdvanced,
		DefaultSets:  3,
		DefaultReps:  5,
		CurrentOneRM: 180,
		OneRMHistory: []models.OneRMRecord{{Date: "2025-09-01", Value: 180}},
	})

	got := c.ParseExerciseLibrary(c.SerializeExerciseLibrary(lib))
	if !reflect.DeepEqual(got, lib) {
		t.Errorf("library round trip mismatch:\ngot  %+v\nwant %+v", got, lib)
	}
}

// TestLibraryParseResilience verifies invalid library documents degrade to
// an empty library.
func TestLibraryParseResilience(t *testing.T) {
	c := newTestCodec()
	for _, text := range []string{"", "   ", "{broken", "[1,2,3]"} {
		lib := c.ParseExerciseLibrary(text)
		if lib == nil || lib.Exercises == nil {
			t.Fatalf("ParseExerciseLibrary(%q) returned nil library/map", text)
		}
		if len(lib.Exercises) != 0 {
			t.Errorf("ParseExerciseLibrary(%q) = %d exercises, want 0", text, len(lib.Exercises))
		}
	}
}
