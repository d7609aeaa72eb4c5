package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the tally banner with a gradient.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"  _        _ _       ", "#818cf8"},
		{" | |_ __ _| | |_  _  ", "#a78bfa"},
		{" |  _/ _` | | | || | ", "#c084fc"},
		{"  \\__\\__,_|_|_|\\_, | ", "#e879f9"},
		{"               |__/  ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
