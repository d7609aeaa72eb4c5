/*
Package runner implements the host loop that drives a tally.Host from a terminal
or a structured stream.

It is the bridge between the composition (Host) and the outside world: each turn
renders the current frame, reads one line, parses it into an intent and
dispatches it. Rendering only happens again after an accepted transition, so the
output is a faithful log of state changes.

# Key Components

  - Runner: The main loop.
  - IOHandler: Decouples how frames are shown and intents are read.
  - TextHandler: Interactive terminal usage with a "> " prompt.
  - JSONHandler: NDJSON frames out, intents in.
  - SignalManager: SIGINT/SIGTERM handling for the input wait.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	final, err := r.Run(ctx, host)
*/
package runner
