package app

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/checkpoint"
	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/dag"
	"github.com/synthlab/synthgridgo/internal/metrics"
	"github.com/synthlab/synthgridgo/internal/report"
)

// Run executes the full model loading lifecycle: parse and merge the binding
// files, validate them against the registry, construct the component graph,
// verify checkpoint reachability, and print the operative configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.closeHealthcheckServer(ctx)
	}

	a.logger.Info("🚀 Loading model configuration...", "path", a.config.ModelPath)
	cfgModel, converter, err := a.loader.Load(ctx, a.config.ModelPath)
	if err != nil {
		a.metrics.RecordLoadFailure(metrics.StageParse)
		return fmt.Errorf("failed to load model configuration: %w", err)
	}
	a.metrics.AddFilesParsed(len(cfgModel.Files))
	a.metrics.AddBindingsMerged(cfgModel.Bindings.Len())
	a.logger.Debug("Binding files merged.",
		"files", len(cfgModel.Files),
		"bindings", cfgModel.Bindings.Len(),
		"model", cfgModel.Name,
	)

	if err := dag.ValidateStatic(ctx, cfgModel, a.registry); err != nil {
		a.metrics.RecordLoadFailure(metrics.StageValidate)
		return err
	}
	a.logger.Debug("Static validation passed.")

	model, err := dag.Build(ctx, cfgModel, converter, a.registry)
	if err != nil {
		a.metrics.RecordLoadFailure(metrics.StageBuild)
		return fmt.Errorf("failed to build component graph: %w", err)
	}
	a.metrics.AddComponentsBuilt(len(model.Instances))
	a.logger.Debug("Component graph built.", "instances", len(model.Instances))
	a.model = model

	if err := a.verifyCheckpoints(ctx, model); err != nil {
		a.metrics.RecordLoadFailure(metrics.StageCheckpoint)
		return err
	}

	a.logger.Info("🏁 Model loaded.",
		"model", model.Name,
		"root", model.RootRef.Marker(),
		"components", len(model.Instances),
	)

	if !a.config.Quiet {
		if err := report.Write(a.outW, a.config.ReportFormat, cfgModel, converter); err != nil {
			return fmt.Errorf("failed to render operative configuration: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// verifyCheckpoints probes every checkpoint reference carried by the built
// model, unless verification is disabled.
func (a *App) verifyCheckpoints(ctx context.Context, model *dag.Model) error {
	checkpoints := dag.CollectCheckpoints(model)
	if len(checkpoints) == 0 {
		a.logger.Debug("No checkpoint references to verify.")
		return nil
	}

	if a.config.SkipCheckpoints {
		a.logger.Warn("Checkpoint verification skipped.", "count", len(checkpoints))
		return nil
	}

	prober := checkpoint.New(checkpoint.Options{
		Timeout: a.config.ProbeTimeout,
		Workers: a.config.Workers,
	}, a.metrics)
	return prober.Verify(ctx, checkpoints)
}
