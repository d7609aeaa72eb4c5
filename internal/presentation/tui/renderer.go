package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// NewMarkdownRenderer returns a function that renders markdown using glamour.
// On a terminal it detects the background; otherwise it renders plain text.
func NewMarkdownRenderer(tty bool, width int) func(string) (string, error) {
	style := glamour.WithAutoStyle()
	if !tty {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
