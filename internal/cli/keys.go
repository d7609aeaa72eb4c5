package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/tally/internal/presentation/tui"
	"github.com/aretw0/tally/pkg/runner"
)

// ShowKeys renders the key bindings to w, styled only when w is a terminal.
func ShowKeys(w io.Writer) error {
	render := tui.NewMarkdownRenderer(isTerminal(w), terminalWidth(w))
	out, err := render(runner.KeyHelp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
