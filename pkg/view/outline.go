package view

import (
	"fmt"
	"strings"
)

// Outline renders a tree as indented plain text, one node per line.
// Containers contribute indentation only.
func Outline(n Node) string {
	var sb strings.Builder
	outline(&sb, n, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func outline(sb *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case KindText:
		fmt.Fprintf(sb, "%s%s\n", indent, n.Text)
	case KindButton:
		state := ""
		if !n.Enabled {
			state = " (disabled)"
		}
		fmt.Fprintf(sb, "%s[%s]%s\n", indent, n.Text, state)
	case KindSwitch:
		state := "off"
		if n.Checked {
			state = "on"
		}
		fmt.Fprintf(sb, "%s<%s>\n", indent, state)
	case KindSpacer:
	default:
		for _, c := range n.Children {
			outline(sb, c, depth+1)
		}
	}
}
