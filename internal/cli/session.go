package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/internal/config"
	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/internal/metrics"
	"github.com/aretw0/tally/internal/presentation/tui"
	"github.com/aretw0/tally/pkg/runner"
	"github.com/aretw0/tally/pkg/theme"
)

// RunSession mounts the dashboard and drives it until the user leaves.
func RunSession(ctx context.Context, opts RunOptions, cfg config.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(opts.Stderr, level)

	th, err := theme.ByName(cfg.Theme)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	host, err := tally.New(
		tally.WithTheme(th),
		tally.WithLogger(logger),
		tally.WithLifecycleHooks(collector.Hooks()),
		tally.WithLifecycleHooks(logging.Hooks(logger)),
	)
	if err != nil {
		return fmt.Errorf("error initializing tally: %w", err)
	}
	defer host.Close()

	jsonMode := cfg.Mode == config.ModeJSON
	tty := isTerminal(opts.Stdout)

	if !jsonMode && cfg.Banner && tty {
		tui.PrintBanner(opts.Stdout, tally.Version)
	}

	r := runner.NewRunner(createRunnerOptions(logger, opts, th, jsonMode, tty)...)

	final, runErr := r.Run(ctx, host)

	summary, err := collector.Summary()
	if err != nil {
		logger.Warn("failed to gather metrics", "error", err)
	}
	logger.Info("session finished",
		"count", final.Count,
		"enabled", final.Enabled,
		"frames", summary.Frames,
		"ignored", summary.Ignored,
	)
	if !jsonMode {
		logCompletion(opts.Stdout, final, summary, runErr)
	}

	return runErr
}
