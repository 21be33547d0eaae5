package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"flightline/internal/config"
	"flightline/internal/history"
	"flightline/internal/logging"
	"flightline/internal/preflight"
	"flightline/internal/runlock"
	"flightline/internal/toolrun"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var toolFlag string

	cmd := &cobra.Command{
		Use:   "run <input> <output> <resolution>",
		Short: "Invoke a geoprocessing tool and stream its progress",
		Long: `Run launches the configured external tool with the given input file,
output file, and grid resolution, relaying the tool's progress lines as they
arrive. The invocation is recorded in the history database when enabled.`,
		// Argument-count validation lives in the request validator so the
		// same error surfaces whether this runs from the CLI or a host.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runTool(cmd, cfg, toolFlag, args)
		},
	}

	cmd.Flags().StringVar(&toolFlag, "tool", "", "Tool binary name (defaults to tool.name from config)")
	return cmd
}

func runTool(cmd *cobra.Command, cfg *config.Config, toolName string, raw []string) error {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	req, err := toolrun.NewRequest(raw)
	if err != nil {
		return err
	}
	req.Palette = cfg.Tool.Palette
	req.Verbose = cfg.Tool.Verbose

	if toolName == "" {
		toolName = cfg.Tool.Name
	}

	if failure := preflight.FirstFailure(preflight.RunAll(cfg, toolName, req.OutputPath)); failure != nil {
		return fmt.Errorf("%s: %s", failure.Name, failure.Detail)
	}

	lock, err := runlock.Acquire(req.OutputPath)
	if err != nil {
		return err
	}
	defer lock.Release()

	exePath, err := toolrun.ResolveExecutable(cfg.Paths.ToolsDir, toolName)
	if err != nil {
		return err
	}
	var opts []toolrun.Option
	if cfg.Tool.TimeoutSeconds > 0 {
		opts = append(opts, toolrun.WithTimeout(time.Duration(cfg.Tool.TimeoutSeconds)*time.Second))
	}
	runner, err := toolrun.NewRunner(exePath, cfg.Paths.ToolsDir, opts...)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	record := newRecorder(runCtx, cfg, logger, toolName, req)
	logger.Info("invoking tool",
		"tool", toolName,
		"input", req.InputPath,
		"output", req.OutputPath,
		"resolution", req.Resolution)

	sink := toolrun.MultiSink{
		newConsoleSink(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		newLogSink(logger),
	}
	outcome := runner.Run(runCtx, req, sink)
	record.finish(outcome)

	if !outcome.OK {
		return fmt.Errorf("%s failed: %s", toolName, outcome.Reason)
	}
	return nil
}

// recorder writes invocation rows around a run; it degrades to logging when
// the history store is unavailable so a broken database never blocks a run.
type recorder struct {
	store  *history.Store
	logger *slog.Logger
	id     string
}

func newRecorder(ctx context.Context, cfg *config.Config, logger *slog.Logger, tool string, req toolrun.Request) *recorder {
	if !cfg.History.Enabled {
		return &recorder{logger: logger}
	}
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		logger.Warn("history store unavailable", "error", err)
		return &recorder{logger: logger}
	}
	rec := &recorder{store: store, logger: logger, id: uuid.NewString()}
	err = store.Begin(ctx, history.Invocation{
		ID:         rec.id,
		Tool:       tool,
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		Resolution: req.Resolution,
		StartedAt:  time.Now(),
	})
	if err != nil {
		logger.Warn("record invocation start", "error", err)
	}
	return rec
}

func (r *recorder) finish(outcome toolrun.Outcome) {
	if r.store == nil {
		return
	}
	defer r.store.Close()

	status := history.StatusSucceeded
	if !outcome.OK {
		status = history.StatusFailed
	}
	// Background context: the run context may already be cancelled.
	if err := r.store.Finish(context.Background(), r.id, status, outcome.Reason, time.Now()); err != nil {
		r.logger.Warn("record invocation outcome", "error", err)
	}
}
