// Package config holds the tracker's persisted settings record.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the settings record: document paths, default view, language,
// the autosave flag, and the user-extensible workout type labels.
type Config struct {
	WorkoutFile         string   `yaml:"workout_file"`
	ExerciseLibraryFile string   `yaml:"exercise_library_file"`
	StateDir            string   `yaml:"state_dir"`
	DefaultView         string   `yaml:"default_view"`
	Language            string   `yaml:"language"`
	AutoSave            bool     `yaml:"autosave"`
	WorkoutTypes        []string `yaml:"workout_types"`
}

// Views a CLI or host can open by default.
var validViews = map[string]bool{
	"week":     true,
	"month":    true,
	"year":     true,
	"progress": true,
	"library":  true,
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		WorkoutFile:         "workout-tracker.md",
		ExerciseLibraryFile: "exercises.json",
		StateDir:            ".workout-tracker",
		DefaultView:         "week",
		Language:            "ru",
		AutoSave:            true,
		WorkoutTypes:        []string{"chest", "back", "legs", "shoulders", "arms", "core", "cardio", "other"},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file yields the defaults. Env vars use the prefix
// WORKOUT_TRACKER_ and underscore-separated paths:
//
//	WORKOUT_TRACKER_WORKOUT_FILE, WORKOUT_TRACKER_LIBRARY_FILE,
//	WORKOUT_TRACKER_STATE_DIR, WORKOUT_TRACKER_DEFAULT_VIEW,
//	WORKOUT_TRACKER_LANGUAGE, WORKOUT_TRACKER_AUTOSAVE
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults apply
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WORKOUT_TRACKER_WORKOUT_FILE"); v != "" {
		cfg.WorkoutFile = v
	}
	if v := os.Getenv("WORKOUT_TRACKER_LIBRARY_FILE"); v != "" {
		cfg.ExerciseLibraryFile = v
	}
	if v := os.Getenv("WORKOUT_TRACKER_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("WORKOUT_TRACKER_DEFAULT_VIEW"); v != "" {
		cfg.DefaultView = v
	}
	if v := os.Getenv("WORKOUT_TRACKER_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("WORKOUT_TRACKER_AUTOSAVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AutoSave = b
		}
	}
}

func (c *Config) validate() error {
	if c.WorkoutFile == "" {
		return fmt.Errorf("workout_file is required")
	}
	if c.ExerciseLibraryFile == "" {
		return fmt.Errorf("exercise_library_file is required")
	}
	if c.StateDir == "" {
		return fmt.Errorf("state_dir is required")
	}
	if !validViews[c.DefaultView] {
		return fmt.Errorf("default_view %q is not one of week, month, year, progress, library", c.DefaultView)
	}
	if c.Language != "ru" && c.Language != "en" {
		return fmt.Errorf("language %q is not supported (ru, en)", c.Language)
	}
	return nil
}
