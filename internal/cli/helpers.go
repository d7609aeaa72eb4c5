package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/tally/internal/metrics"
	"github.com/aretw0/tally/internal/presentation/tui"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/runner"
	"github.com/aretw0/tally/pkg/theme"
	"github.com/aretw0/tally/pkg/view"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the frame width for w, falling back to tui.DefaultWidth.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return tui.DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return tui.DefaultWidth
	}
	return min(width, 2*tui.DefaultWidth)
}

// createRunnerOptions prepares the functional options for the Runner.
func createRunnerOptions(logger *slog.Logger, opts RunOptions, th theme.Theme, jsonMode, tty bool) []runner.Option {
	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
	}

	if jsonMode {
		return append(runnerOpts, runner.WithInputHandler(runner.NewJSONHandler(opts.Stdin, opts.Stdout)))
	}

	vr := tui.NewViewRenderer(opts.Stdout, th, tui.WithWidth(terminalWidth(opts.Stdout)))
	handler := runner.NewTextHandler(opts.Stdin, opts.Stdout,
		runner.WithTextHandlerRenderer(func(n view.Node) (string, error) {
			return vr.Render(n), nil
		}),
		runner.WithClearScreen(tty),
	)
	return append(runnerOpts,
		runner.WithInputHandler(handler),
		runner.WithMarkdown(tui.NewMarkdownRenderer(tty, terminalWidth(opts.Stdout))),
	)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func logCompletion(w io.Writer, final domain.Snapshot, summary metrics.Summary, err error) {
	if err != nil {
		printSystemMessage(w, "Stopped with an error at %d points.", final.Count)
		return
	}
	printSystemMessage(w, "Finished with %d points (%d ignored activations, %d frames).",
		final.Count, int(summary.Ignored), int(summary.Frames))
}
