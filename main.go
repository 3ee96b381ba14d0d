package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"metabolic-report/internal/analysis"
	"metabolic-report/internal/config"
	"metabolic-report/internal/logging"
	"metabolic-report/internal/service"
	"metabolic-report/internal/store"
	"metabolic-report/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

const usage = `Usage:
  metabolic [flags]                      browse scored reports
  metabolic [flags] score [-n] [-json] <extraction.json>...
  metabolic [flags] list [-limit N]

Flags:
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.json (default ~/.metabolic/config.json)")
	logLevel := flag.String("log-level", "", "override logging.level from the config")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	args := flag.Args()
	interactive := len(args) == 0

	// Never write log lines over the terminal UI
	logger := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Logging.File,
		LogToStdout:   cfg.Logging.Stdout && !interactive,
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.JSON,
	})

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tables := cfg.Tables()
	querySvc := service.NewQueryService(db)

	if interactive {
		app := tui.NewApp(querySvc, tui.Options{
			PageSize:   cfg.Display.PageSize,
			ChartWidth: cfg.Display.ChartWidth,
		})
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	switch args[0] {
	case "score":
		return runScore(ctx, args[1:], db, cfg, tables, logger)
	case "list":
		return runList(ctx, args[1:], querySvc)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// loadConfig reads the config, writing an example on first run
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}

	if errors.Is(err, config.ErrNoConfig) {
		if path != "" {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		if err := config.CreateExample(); err != nil {
			return nil, fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		log.Infof("no config file found, wrote defaults to %s/config.json", configDir)
		def := config.DefaultConfig()
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runScore(ctx context.Context, args []string, db *store.Store, cfg *config.Config, tables analysis.Tables, logger *log.Logger) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	noSave := fs.Bool("n", false, "score without saving")
	asJSON := fs.Bool("json", false, "print scores as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("score: no extraction files given")
	}

	st := db
	if *noSave {
		st = nil
	}
	svc := service.NewScoringService(st, tables, logger)

	result, err := svc.ScoreFiles(ctx, fs.Args(), nil)
	if err != nil {
		return err
	}

	for _, scored := range result.Scored {
		if *asJSON {
			if err := printJSON(scored); err != nil {
				return err
			}
			continue
		}
		fmt.Println(tui.RenderReport(service.DetailFromScored(scored), cfg.Display.ChartWidth))
	}

	for _, err := range result.Errors {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	if len(result.Scored) == 0 && len(result.Errors) > 0 {
		return fmt.Errorf("no reports scored (%d failed)", len(result.Errors))
	}
	return nil
}

type jsonReport struct {
	ID          string                  `json:"id,omitempty"`
	Name        string                  `json:"name"`
	Profile     analysis.PatientProfile `json:"profile"`
	Scores      analysis.CoreScoreSet   `json:"scores"`
	Fuel        analysis.FuelMix        `json:"fuel"`
	Provenance  analysis.Provenance     `json:"provenance"`
	DataQuality string                  `json:"data_quality"`
}

func printJSON(s *service.ScoredReport) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		ID:          s.Report.ID,
		Name:        s.Report.Name,
		Scores:      s.Report.Scores,
		Fuel:        s.Report.Fuel,
		Provenance:  s.Provenance,
		DataQuality: s.Report.DataQuality,
		Profile:     s.Report.Profile,
	})
}

func runList(ctx context.Context, args []string, q *service.QueryService) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	limit := fs.Int("limit", service.DefaultPageSize, "number of reports to show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reports, err := q.ListReports(ctx, *limit, 0)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("No reports yet.")
		return nil
	}

	for _, r := range reports {
		fmt.Printf("%-36s  %-24s  %3d  %-20s  %s\n", r.ID, r.Name, r.Overall, r.DataQuality, r.ScoredAgo)
	}
	return nil
}
