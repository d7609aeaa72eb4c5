package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/aretw0/tally/pkg/theme"
	"github.com/aretw0/tally/pkg/view"
)

// DefaultWidth is the column budget used when the terminal size is unknown.
const DefaultWidth = 44

// ViewRenderer paints view trees as styled terminal text.
type ViewRenderer struct {
	theme theme.Theme
	lg    *lipgloss.Renderer
	width int
}

// ViewRendererOption configures a ViewRenderer.
type ViewRendererOption func(*ViewRenderer)

// WithWidth sets the total width of a rendered frame.
func WithWidth(width int) ViewRendererOption {
	return func(v *ViewRenderer) {
		if width > 0 {
			v.width = width
		}
	}
}

// WithColorProfile forces a colour profile instead of detecting one from the writer.
func WithColorProfile(p termenv.Profile) ViewRendererOption {
	return func(v *ViewRenderer) {
		v.lg.SetColorProfile(p)
	}
}

// NewViewRenderer creates a renderer whose colour profile follows w.
func NewViewRenderer(w io.Writer, th theme.Theme, opts ...ViewRendererOption) *ViewRenderer {
	v := &ViewRenderer{
		theme: th,
		lg:    lipgloss.NewRenderer(w),
		width: DefaultWidth,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Render paints the tree to a string.
func (v *ViewRenderer) Render(n view.Node) string {
	return v.render(n, v.width)
}

func (v *ViewRenderer) render(n view.Node, width int) string {
	switch n.Kind {
	case view.KindScaffold:
		inner := v.renderChildren(n.Children, width-4)
		return v.lg.NewStyle().Padding(1, 2).Render(strings.Join(inner, "\n"))
	case view.KindColumn:
		parts := make([]string, 0, 2*len(n.Children))
		for i, block := range v.renderChildren(n.Children, width) {
			if i > 0 {
				parts = append(parts, "")
			}
			parts = append(parts, block)
		}
		return lipgloss.PlaceHorizontal(width, align(n.Arrangement), lipgloss.JoinVertical(align(n.Arrangement), parts...))
	case view.KindCard:
		inner := v.renderChildren(n.Children, width-6)
		return v.lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(v.theme.Outline).
			Padding(1, 2).
			Width(width - 2).
			Align(lipgloss.Center).
			Render(lipgloss.JoinVertical(lipgloss.Center, inner...))
	case view.KindRow:
		return v.renderRow(n, width)
	case view.KindText:
		return v.textStyle(n.Style).Render(n.Text)
	case view.KindButton:
		return v.renderButton(n)
	case view.KindSwitch:
		return v.renderSwitch(n)
	default:
		return ""
	}
}

func (v *ViewRenderer) renderChildren(children []view.Node, width int) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		out = append(out, v.render(c, width))
	}
	return out
}

func (v *ViewRenderer) renderRow(n view.Node, width int) string {
	cells := v.renderChildren(n.Children, width)
	if len(cells) == 0 {
		return ""
	}
	if n.Arrangement != view.ArrangeSpaceBetween || len(cells) == 1 {
		return lipgloss.JoinHorizontal(lipgloss.Center, intersperse(cells, " ")...)
	}

	used := 0
	for _, c := range cells {
		used += lipgloss.Width(c)
	}
	gaps := len(cells) - 1
	gap := max((width-used)/gaps, 1)
	return lipgloss.JoinHorizontal(lipgloss.Center, intersperse(cells, strings.Repeat(" ", gap))...)
}

func (v *ViewRenderer) textStyle(s view.TextStyle) lipgloss.Style {
	base := v.lg.NewStyle()
	switch s {
	case view.StyleHeadline:
		return base.Bold(true).Foreground(v.theme.Primary)
	case view.StyleDisplay:
		return base.Bold(true).Foreground(v.theme.OnSurface)
	default:
		return base.Foreground(v.theme.OnSurface)
	}
}

func (v *ViewRenderer) renderButton(n view.Node) string {
	label := "[ " + n.Text + " ]"
	if !n.Enabled {
		return v.lg.NewStyle().Foreground(v.theme.Muted).Faint(true).Render(label)
	}
	return v.lg.NewStyle().Bold(true).Foreground(v.theme.OnPrimary).Background(v.theme.Primary).Render(label)
}

func (v *ViewRenderer) renderSwitch(n view.Node) string {
	if n.Checked {
		return v.lg.NewStyle().Bold(true).Foreground(v.theme.Accent).Render("(● ) ON")
	}
	return v.lg.NewStyle().Foreground(v.theme.Muted).Render("( ○) OFF")
}

func align(a view.Arrangement) lipgloss.Position {
	switch a {
	case view.ArrangeStart:
		return lipgloss.Left
	default:
		return lipgloss.Center
	}
}

func intersperse(items []string, sep string) []string {
	out := make([]string, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
