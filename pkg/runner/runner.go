package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/domain"
)

// MsgIncrementsDisabled is shown when an activation hits the disabled button.
const MsgIncrementsDisabled = "Increments are disabled. Type 'on' to allow them."

// Runner handles the render/input/dispatch loop of a tally.Host.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Input/Output is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	Logger *slog.Logger

	// Markdown renders the help text. If nil, help is printed raw.
	Markdown MarkdownRenderer

	// InterruptSource stops the loop when it is closed or receives a value.
	InterruptSource <-chan struct{}

	Input  io.Reader
	Output io.Writer
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives host until the user quits, input ends, ctx is cancelled or a
// signal arrives. It returns the final state. Ending the session is not an
// error; only IO and dispatch failures are.
// A handler implementing io.Closer is closed when Run returns.
func (r *Runner) Run(ctx context.Context, host *tally.Host) (domain.Snapshot, error) {
	handler := r.resolveHandler()
	if c, ok := handler.(io.Closer); ok {
		defer c.Close()
	}

	signals := NewSignalManager()
	defer signals.Stop()

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopSignals := context.AfterFunc(signals.Context(), cancel)
	defer stopSignals()
	if r.InterruptSource != nil {
		go func() {
			select {
			case <-r.InterruptSource:
				cancel()
			case <-loopCtx.Done():
			}
		}()
	}

	render := true
	for {
		if render {
			if _, err := handler.Output(loopCtx, host.Render(loopCtx)); err != nil {
				return host.Snapshot(), fmt.Errorf("output error: %w", err)
			}
			render = false
		}

		line, err := handler.Input(loopCtx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed")
				return host.Snapshot(), nil
			}
			signals.CheckRace()
			if loopCtx.Err() != nil {
				r.Logger.Debug("runner interrupted", "err", loopCtx.Err(), "signal", signals.Signal())
				return host.Snapshot(), nil
			}
			return host.Snapshot(), fmt.Errorf("input error: %w", err)
		}

		if line == "" {
			render = true
			continue
		}

		in, err := domain.ParseIntent(line)
		if err != nil {
			r.Logger.Debug("unparsed input", "input", line, "err", err)
			if err := handler.SystemOutput(loopCtx, fmt.Sprintf("Unknown command %q. Type 'help' for the key list.", line)); err != nil {
				return host.Snapshot(), fmt.Errorf("output error: %w", err)
			}
			continue
		}

		switch in.Type {
		case domain.IntentQuit:
			return host.Snapshot(), nil
		case domain.IntentHelp:
			if err := handler.SystemOutput(loopCtx, r.help()); err != nil {
				return host.Snapshot(), fmt.Errorf("output error: %w", err)
			}
			continue
		}

		out, err := host.Dispatch(loopCtx, in)
		if err != nil {
			return host.Snapshot(), fmt.Errorf("dispatch error: %w", err)
		}
		if !out.Accepted {
			if err := handler.SystemOutput(loopCtx, MsgIncrementsDisabled); err != nil {
				return host.Snapshot(), fmt.Errorf("output error: %w", err)
			}
			continue
		}
		render = true
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	r.Handler = NewTextHandler(r.Input, r.Output)
	return r.Handler
}

func (r *Runner) help() string {
	if r.Markdown == nil {
		return KeyHelp
	}
	out, err := r.Markdown(KeyHelp)
	if err != nil {
		r.Logger.Debug("help render failed", "err", err)
		return KeyHelp
	}
	return out
}
