package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/crossedwires/internal/crossing"
	"github.com/specialistvlad/crossedwires/internal/ctxlog"
	"github.com/specialistvlad/crossedwires/internal/wire"
)

// Run loads the wires, evaluates them and writes the report.
func (a *App) Run(ctx context.Context) error {
	res, err := a.Solve(ctx)
	if err != nil {
		return err
	}
	return WriteReport(a.outW, res)
}

// Solve loads the wires and selects the closest crossings without writing
// anything to the output.
func (a *App) Solve(ctx context.Context) (crossing.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Solve started.", "input", a.config.InputPath, "workers", a.config.WorkerCount)

	wires, err := a.loader.Load(ctx, a.config.InputPath)
	if err != nil {
		return crossing.Result{}, fmt.Errorf("failed to load wires: %w", err)
	}
	a.logger.Info("Wires loaded.", "count", len(wires))
	if len(wires) > 2 {
		a.logger.Warn("More than two wires given, every pair will be compared.", "count", len(wires))
	}

	paths := make([]wire.Path, len(wires))
	for i, w := range wires {
		paths[i] = w.Path()
		a.logger.Debug("Wire traced.", "name", w.Name, "segments", paths[i].Len(), "length", paths[i].Distances[paths[i].Len()])
	}

	res, err := crossing.Evaluate(ctx, paths, crossing.WithWorkers(a.config.WorkerCount))
	if err != nil {
		return crossing.Result{}, fmt.Errorf("evaluation failed: %w", err)
	}
	a.logger.Info("Crossings evaluated.", "count", res.Count, "central", res.Central.String(), "wire", res.Wire.String())

	a.logger.Debug("App.Solve finished.")
	return res, nil
}
