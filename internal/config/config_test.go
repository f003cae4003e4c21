package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadMissingFile verifies a nonexistent config path yields defaults.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	def := Default()
	if cfg.WorkoutFile != def.WorkoutFile {
		t.Errorf("WorkoutFile = %q, want %q", cfg.WorkoutFile, def.WorkoutFile)
	}
	if cfg.DefaultView != "week" {
		t.Errorf("DefaultView = %q, want week", cfg.DefaultView)
	}
	if cfg.Language != "ru" {
		t.Errorf("Language = %q, want ru", cfg.Language)
	}
	if !cfg.AutoSave {
		t.Error("AutoSave = false, want true")
	}
	if len(cfg.WorkoutTypes) != 8 {
		t.Errorf("WorkoutTypes has %d labels, want 8", len(cfg.WorkoutTypes))
	}
}

// TestLoadYAMLOverrides verifies file values override defaults while
// unspecified fields keep them.
func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `workout_file: my-log.md
default_view: month
language: en
autosave: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WorkoutFile != "my-log.md" {
		t.Errorf("WorkoutFile = %q, want my-log.md", cfg.WorkoutFile)
	}
	if cfg.DefaultView != "month" {
		t.Errorf("DefaultView = %q, want month", cfg.DefaultView)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}
	if cfg.AutoSave {
		t.Error("AutoSave = true, want false")
	}
	if cfg.ExerciseLibraryFile != "exercises.json" {
		t.Errorf("ExerciseLibraryFile = %q, want default exercises.json", cfg.ExerciseLibraryFile)
	}
}

// TestLoadEnvOverrides verifies environment variables win over file values.
func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workout_file: from-file.md\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("WORKOUT_TRACKER_WORKOUT_FILE", "from-env.md")
	t.Setenv("WORKOUT_TRACKER_LANGUAGE", "en")
	t.Setenv("WORKOUT_TRACKER_AUTOSAVE", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WorkoutFile != "from-env.md" {
		t.Errorf("WorkoutFile = %q, want from-env.md", cfg.WorkoutFile)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}
	if cfg.AutoSave {
		t.Error("AutoSave = true, want false")
	}
}

// TestLoadRejectsInvalidValues verifies validation failures on bad view and
// language values.
func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad view", "default_view: dashboard\n"},
		{"bad language", "language: fr\n"},
		{"empty workout file", "workout_file: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() error = nil, want validation error")
			}
		})
	}
}

// TestLoadMalformedYAML verifies a parse error surfaces instead of silent
// defaults.
func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workout_file: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}
