package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/tally/pkg/view"
)

// Overlay marks nodes to highlight on top of the structural diagram.
type Overlay struct {
	// Focus is the key of a control to emphasise (e.g. the last one used).
	Focus string
}

// GenerateMermaid produces a Mermaid flowchart of a view tree.
// It applies semantic shapes:
// - Containers: [Rectangle]
// - Text: (Rounded)
// - Button: [[Subroutine]]
// - Switch: {{Hexagon}}
// Disabled controls get the "disabled" class; Overlay.Focus gets "focus".
func GenerateMermaid(root view.Node, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var disabled []string
	focus := ""

	var walk func(n view.Node, id string)
	walk = func(n view.Node, id string) {
		opener, closer := "[", "]"
		switch n.Kind {
		case view.KindText:
			opener, closer = "(", ")"
		case view.KindButton:
			opener, closer = "[[", "]]"
		case view.KindSwitch:
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label(n), closer)

		if n.Interactive() && !n.Enabled {
			disabled = append(disabled, id)
		}
		if overlay != nil && n.Key != "" && n.Key == overlay.Focus {
			focus = id
		}

		for i, c := range n.Children {
			childID := fmt.Sprintf("%s_%d", id, i)
			fmt.Fprintf(&sb, "    %s --> %s\n", id, childID)
			walk(c, childID)
		}
	}
	walk(root, "n0")

	if len(disabled) > 0 || focus != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef disabled fill:#f3f4f6,stroke:#9ca3af,stroke-dasharray:4 2,color:#6b7280;\n")
		sb.WriteString("    classDef focus fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, id := range disabled {
			fmt.Fprintf(&sb, "    class %s disabled;\n", id)
		}
		if focus != "" {
			fmt.Fprintf(&sb, "    class %s focus;\n", focus)
		}
	}

	return sb.String()
}

func label(n view.Node) string {
	var text string
	switch n.Kind {
	case view.KindSwitch:
		text = "switch: off"
		if n.Checked {
			text = "switch: on"
		}
	case view.KindText, view.KindButton:
		text = n.Text
	default:
		text = string(n.Kind)
	}
	if n.Key != "" {
		text += " <br/> " + n.Key
	}
	// Mermaid labels are double quoted
	return strings.ReplaceAll(text, "\"", "'")
}
