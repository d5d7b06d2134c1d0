package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/synthlab/synthgridgo/internal/config"
	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/dag"
	"github.com/synthlab/synthgridgo/internal/metrics"
	"github.com/synthlab/synthgridgo/internal/registry"
	"github.com/synthlab/synthgridgo/internal/report"
)

// AppConfig holds all the necessary configuration for an App instance to run.
type AppConfig struct {
	ModelPath       string
	HealthcheckPort int
	LogFormat       string
	LogLevel        string

	// Workers is the number of concurrent checkpoint probes.
	Workers int
	// ProbeTimeout bounds each individual checkpoint probe.
	ProbeTimeout time.Duration
	// SkipCheckpoints disables checkpoint reachability verification.
	SkipCheckpoints bool

	// ReportFormat selects the operative configuration report encoding.
	ReportFormat report.Format
	// Quiet suppresses the operative configuration report.
	Quiet bool
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW         io.Writer
	config       *AppConfig
	logger       *slog.Logger
	loader       config.Loader
	registry     *registry.Registry
	metrics      *metrics.Metrics
	promRegistry *prometheus.Registry
	httpServer   *http.Server

	// model holds the component graph built by the most recent Run.
	model *dag.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, metrics
// registry, and component registry. Manifest or registration problems are
// programmer errors baked into the binary, so they panic rather than return.
func NewApp(outW io.Writer, appConfig *AppConfig, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	promRegistry := prometheus.NewRegistry()
	m := metrics.New(promRegistry)

	// Create and populate the registry from the compiled-in modules. Each
	// module contributes its Go constructors plus an embedded manifest.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
		filename, src := mod.Manifest()
		if err := reg.LoadManifest(ctx, filename, src); err != nil {
			panic(fmt.Errorf("failed to load embedded manifest %s: %w", filename, err))
		}
	}
	logger.Debug("All component modules registered.", "count", len(modules))

	// Validate the integrity of the registry: every manifest param must line
	// up with its Go params struct, in both directions.
	if err := reg.ValidateRegistry(ctx); err != nil {
		// A mismatch between manifest and code is a programmer error.
		panic(err)
	}
	logger.Debug("Registry validation passed.", "components", len(reg.Components()))

	return &App{
		outW:         outW,
		config:       appConfig,
		logger:       logger,
		loader:       loader,
		registry:     reg,
		metrics:      m,
		promRegistry: promRegistry,
	}
}

// Registry returns the application's component registry. This is primarily
// for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Metrics returns the application's metrics set. This is primarily for
// testing.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Model returns the component graph built by the last successful Run, or nil
// if no run has completed. This is primarily for testing.
func (a *App) Model() *dag.Model {
	return a.model
}
