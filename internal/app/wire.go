package app

import (
	"io"
	"log/slog"
	"os"

	"flatland/internal/domain"
	"flatland/internal/metrics"
	"flatland/internal/services/survey"
)

// Wire bundles the logger, metrics and services for the CLI.
type Wire struct {
	Config  Config
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Survey  domain.SurveyService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stderr
	if cfg.LogOutput != nil {
		out = cfg.LogOutput
	}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	m := metrics.New()

	return &Wire{
		Config:  cfg,
		Log:     log,
		Metrics: m,
		Survey:  survey.New(log, m),
	}, nil
}

// Open returns the configured input stream. The caller closes it.
func (w *Wire) Open() (io.ReadCloser, error) {
	if w.Config.Input == "" || w.Config.Input == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(w.Config.Input)
}

// Flush writes the metrics textfile if one is configured.
func (w *Wire) Flush() error {
	if w.Config.MetricsFile == "" {
		return nil
	}
	if err := w.Metrics.WriteTextfile(w.Config.MetricsFile); err != nil {
		return err
	}
	w.Log.Debug("metrics written", "path", w.Config.MetricsFile)
	return nil
}
