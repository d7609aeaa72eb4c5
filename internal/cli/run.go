package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/tally/internal/config"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ConfigPath string
	Theme      string // overrides config when set
	JSON       bool
	Debug      bool
	NoBanner   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Execute handles the 'run' command: it resolves configuration and starts a session.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.defaults()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	if opts.JSON {
		cfg.Mode = config.ModeJSON
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	if opts.NoBanner {
		cfg.Banner = false
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	if err := cfg.Validate(); err != nil {
		return err
	}

	return RunSession(ctx, opts, cfg)
}
