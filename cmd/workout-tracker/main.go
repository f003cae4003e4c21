package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/TheReshkin/workout-tracker/internal/config"
	"github.com/TheReshkin/workout-tracker/internal/dateutil"
	"github.com/TheReshkin/workout-tracker/internal/export"
	"github.com/TheReshkin/workout-tracker/internal/models"
	trackermcp "github.com/TheReshkin/workout-tracker/internal/mcp"
	"github.com/TheReshkin/workout-tracker/internal/store"
	"github.com/TheReshkin/workout-tracker/internal/workoutdata"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "init":
		err = runInit(args, log)
	case "show":
		err = runShow(args, log)
	case "stats":
		err = runStats(args, log)
	case "progress":
		err = runProgress(args, log)
	case "log":
		err = runLog(args, log)
	case "move":
		err = runMove(args, log)
	case "illness":
		err = runIllness(args, log)
	case "delete":
		err = runDelete(args, log)
	case "export":
		err = runExport(args, log)
	case "mcp":
		err = runMCP(args, log)
	case "version":
		fmt.Println("workout-tracker", Version)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Error(cmd+" failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: workout-tracker <command> [flags]

Commands:
  init      create the workout document and exercise library
  show      print a week or month of entries
  stats     print overall or monthly statistics
  progress  print progress points for an exercise or muscle group
  log       create or replace one date's entry from JSON
  move      move a workout to another date
  illness   stamp an illness period over a date range
  delete    delete one date's entry
  export    write the record map as CSV
  mcp       serve the tracker over MCP stdio
  version   print version and exit

Each command accepts -config <path> (default workout-tracker.yaml).`)
}

// openStore loads config and opens the document gateway.
func openStore(configPath string, log *slog.Logger) (*config.Config, *store.DocumentStore, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	ds, err := store.New(cfg.WorkoutFile, cfg.ExerciseLibraryFile, cfg.StateDir, log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, ds, nil
}

// persist saves the record map, or prints the rendered document instead
// when autosave is off.
func persist(cfg *config.Config, ds *store.DocumentStore, data models.WorkoutData) error {
	if !cfg.AutoSave {
		fmt.Print(ds.RenderWorkoutData(data))
		return nil
	}
	return ds.SaveWorkoutData(data)
}

func runInit(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	fs.Parse(args)

	_, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()
	return ds.Init()
}

func runShow(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	dateStr := fs.String("date", "", "date inside the week/month to show (YYYY-MM-DD, default today)")
	view := fs.String("view", "", "week or month (default from config)")
	fs.Parse(args)

	cfg, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	day := time.Now()
	if *dateStr != "" {
		day = dateutil.ParseDate(*dateStr)
		if day.IsZero() {
			return fmt.Errorf("invalid date %q", *dateStr)
		}
	}

	mode := *view
	if mode == "" {
		mode = cfg.DefaultView
	}

	data, err := ds.LoadWorkoutData()
	if err != nil {
		return err
	}

	var dates []string
	switch mode {
	case "month":
		fmt.Printf("%s %d\n", dateutil.MonthName(day, cfg.Language), day.Year())
		dates = dateutil.MonthDates(day)
	default:
		fmt.Printf("Week %d\n", dateutil.WeekNumber(day))
		dates = dateutil.WeekDates(day)
	}

	for _, d := range dates {
		t := dateutil.ParseDate(d)
		entry, ok := data[d]
		if !ok {
			fmt.Printf("  %s %s  -\n", dateutil.DayName(t, cfg.Language), d)
			continue
		}
		line := fmt.Sprintf("  %s %s  [%s] %s", dateutil.DayName(t, cfg.Language), d, entry.Status.Label(cfg.Language), entry.Type)
		if vol := workoutdata.Volume(entry); vol > 0 {
			line += fmt.Sprintf("  volume %.1f kg", vol)
		}
		if entry.MovedTo != "" {
			line += "  → " + entry.MovedTo
		}
		fmt.Println(line)
	}
	return nil
}

func runStats(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	monthStr := fs.String("month", "", "restrict to one month (YYYY-MM)")
	fs.Parse(args)

	cfg, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	data, err := ds.LoadWorkoutData()
	if err != nil {
		return err
	}

	if *monthStr != "" {
		t, err := time.Parse("2006-01", *monthStr)
		if err != nil {
			return fmt.Errorf("invalid month %q", *monthStr)
		}
		stats := workoutdata.MonthWorkoutStats(t.Year(), t.Month(), data)
		fmt.Printf("%s %d\n", dateutil.MonthName(t, cfg.Language), t.Year())
		fmt.Printf("  Workouts:  %d\n", stats.TotalWorkouts)
		fmt.Printf("  Completed: %d\n", stats.CompletedWorkouts)
		for typ, n := range stats.WorkoutTypes {
			fmt.Printf("  %-10s %d\n", typ, n)
		}
		return nil
	}

	stats := workoutdata.Stats(data)
	fmt.Println("Overall")
	fmt.Printf("  Total:   %d\n", stats.General.Total)
	fmt.Printf("  Done:    %d\n", stats.General.Done)
	fmt.Printf("  Planned: %d\n", stats.General.Planned)
	fmt.Printf("  Skipped: %d\n", stats.General.Skipped)
	fmt.Printf("  Illness: %d\n", stats.General.Illness)
	fmt.Println("By muscle group")
	for typ, n := range stats.ByMuscleGroup {
		fmt.Printf("  %-10s %d\n", typ, n)
	}
	return nil
}

func runProgress(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("progress", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	exercise := fs.String("exercise", "", "exact exercise name filter")
	group := fs.String("group", "", "muscle group filter")
	fs.Parse(args)

	_, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	data, err := ds.LoadWorkoutData()
	if err != nil {
		return err
	}

	points := workoutdata.ProgressData(data, *exercise, *group)
	if len(points) == 0 {
		fmt.Println("no progress data")
		return nil
	}
	for _, p := range points {
		fmt.Printf("%s  %-24s %3d reps  %6.1f kg  volume %7.1f\n",
			p.Date, p.Exercise, p.Reps, p.Weight, p.Volume)
	}
	return nil
}

func runLog(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	dateStr := fs.String("date", "", "entry date (YYYY-MM-DD, default today)")
	entryFile := fs.String("file", "-", "JSON entry file, or - for stdin")
	fs.Parse(args)

	date := *dateStr
	if date == "" {
		date = dateutil.FormatDate(time.Now())
	}
	if dateutil.ParseDate(date).IsZero() {
		return fmt.Errorf("invalid date %q", date)
	}

	var raw []byte
	var err error
	if *entryFile == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(*entryFile)
	}
	if err != nil {
		return fmt.Errorf("reading entry: %w", err)
	}

	var entry models.WorkoutEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return fmt.Errorf("parsing entry JSON: %w", err)
	}

	cfg, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	data, err := ds.LoadWorkoutData()
	if err != nil {
		return err
	}
	if err := persist(cfg, ds, workoutdata.SetEntry(data, date, entry)); err != nil {
		return err
	}
	log.Info("workout logged", "date", date, "status", entry.Status)
	return nil
}

func runMove(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("move", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	from := fs.String("from", "", "source date (YYYY-MM-DD)")
	to := fs.String("to", "", "target date (YYYY-MM-DD)")
	yes := fs.Bool("yes", false, "overwrite an occupied target date without asking")
	fs.Parse(args)

	if *from == "" || *to == "" {
		return fmt.Errorf("-from and -to are required")
	}

	cfg, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	data, err := ds.LoadWorkoutData()
	if err != nil {
		return err
	}
	if _, ok := data[*from]; !ok {
		return fmt.Errorf("no workout at %s", *from)
	}
	if _, ok := data[*to]; ok && !*yes {
		if !confirm(fmt.Sprintf("%s already has an entry. Overwrite?", *to)) {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := persist(cfg, ds, workoutdata.Move(data, *from, *to)); err != nil {
		return err
	}
	log.Info("workout moved", "from", *from, "to", *to)
	return nil
}

func runIllness(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("illness", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	start := fs.String("start", "", "period start (YYYY-MM-DD)")
	end := fs.String("end", "", "period end (YYYY-MM-DD, default start)")
	reason := fs.String("reason", "", "reason recorded on each day")
	fs.Parse(args)

	if *start == "" {
		return fmt.Errorf("-start is required")
	}
	if *end == "" {
		*end = *start
	}
	if dateutil.ParseDate(*start).IsZero() || dateutil.ParseDate(*end).IsZero() {
		return fmt.Errorf("invalid date range %s..%s", *start, *end)
	}

	cfg, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	data, err := ds.LoadWorkoutData()
	if err != nil {
		return err
	}
	if err := persist(cfg, ds, workoutdata.MarkIllnessPeriod(data, *start, *end, *reason)); err != nil {
		return err
	}
	log.Info("illness period marked", "start", *start, "end", *end)
	return nil
}

func runDelete(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	dateStr := fs.String("date", "", "entry date (YYYY-MM-DD)")
	fs.Parse(args)

	if *dateStr == "" {
		return fmt.Errorf("-date is required")
	}

	cfg, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	data, err := ds.LoadWorkoutData()
	if err != nil {
		return err
	}
	if err := persist(cfg, ds, workoutdata.DeleteEntry(data, *dateStr)); err != nil {
		return err
	}
	log.Info("workout deleted", "date", *dateStr)
	return nil
}

func runExport(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	out := fs.String("o", "workout-export.csv", "output CSV path, or - for stdout")
	fs.Parse(args)

	_, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	data, err := ds.LoadWorkoutData()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *out, err)
		}
		defer f.Close()
		w = f
	}
	if err := export.WriteCSV(w, data); err != nil {
		return err
	}
	if *out != "-" {
		log.Info("export written", "path", *out, "entries", len(data))
	}
	return nil
}

func runMCP(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	configPath := fs.String("config", "workout-tracker.yaml", "path to config file")
	fs.Parse(args)

	_, ds, err := openStore(*configPath, log)
	if err != nil {
		return err
	}
	defer ds.Close()

	log.Info("MCP server starting", "version", Version)
	return mcpserver.ServeStdio(trackermcp.New(ds, Version, log))
}

// confirm asks a yes/no question on the terminal.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
