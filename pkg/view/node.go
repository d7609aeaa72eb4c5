package view

// Kind identifies the type of a Node.
type Kind string

const (
	KindColumn Kind = "column"
	KindRow    Kind = "row"
	KindCard   Kind = "card"
	KindText   Kind = "text"
	KindButton Kind = "button"
	KindSwitch Kind = "switch"
	KindSpacer Kind = "spacer"

	// KindScaffold is the full-screen container a host mounts its root inside.
	KindScaffold Kind = "scaffold"
)

// TextStyle selects a typography role from the active theme.
type TextStyle string

const (
	StyleHeadline TextStyle = "headline"
	StyleDisplay  TextStyle = "display"
	StyleBody     TextStyle = "body"
)

// Arrangement controls how a container distributes its children.
type Arrangement string

const (
	ArrangeStart        Arrangement = "start"
	ArrangeCenter       Arrangement = "center"
	ArrangeSpaceBetween Arrangement = "space_between"
)

// Node is a description of UI. It is a value: copying a Node never shares
// mutable state, and callbacks are only reachable through its methods.
type Node struct {
	Kind        Kind        `json:"kind"`
	Key         string      `json:"key,omitempty"`
	Text        string      `json:"text,omitempty"`
	Style       TextStyle   `json:"style,omitempty"`
	Arrangement Arrangement `json:"arrangement,omitempty"`
	Enabled     bool        `json:"enabled"`
	Checked     bool        `json:"checked"`
	Children    []Node      `json:"children,omitempty"`

	onClick         func()
	onCheckedChange func(bool)
}

// Text returns a label.
func Text(text string, style TextStyle) Node {
	return Node{Kind: KindText, Text: text, Style: style}
}

// Button returns an activation control. The callback only fires while enabled.
func Button(key, label string, enabled bool, onClick func()) Node {
	return Node{Kind: KindButton, Key: key, Text: label, Enabled: enabled, onClick: onClick}
}

// Switch returns a binary control reflecting checked.
func Switch(key string, checked bool, onCheckedChange func(bool)) Node {
	return Node{Kind: KindSwitch, Key: key, Checked: checked, Enabled: true, onCheckedChange: onCheckedChange}
}

// Spacer returns an empty line.
func Spacer() Node {
	return Node{Kind: KindSpacer}
}

// Scaffold wraps content in a full-screen container.
func Scaffold(content Node) Node {
	return Node{Kind: KindScaffold, Children: []Node{content}}
}

// Column stacks children vertically.
func Column(children ...Node) Node {
	return Node{Kind: KindColumn, Arrangement: ArrangeCenter, Children: children}
}

// Row lays children out horizontally.
func Row(arrangement Arrangement, children ...Node) Node {
	return Node{Kind: KindRow, Arrangement: arrangement, Children: children}
}

// Card groups children inside an elevated surface.
func Card(children ...Node) Node {
	return Node{Kind: KindCard, Arrangement: ArrangeCenter, Children: children}
}

// Interactive reports whether the node accepts interaction.
func (n Node) Interactive() bool {
	return n.Kind == KindButton || n.Kind == KindSwitch
}

// Click activates a button. It returns false, without invoking the callback,
// when the node is not a button or the button is disabled.
func (n Node) Click() bool {
	if n.Kind != KindButton || !n.Enabled || n.onClick == nil {
		return false
	}
	n.onClick()
	return true
}

// SetChecked reports a new value for a switch.
func (n Node) SetChecked(v bool) bool {
	if n.Kind != KindSwitch || !n.Enabled || n.onCheckedChange == nil {
		return false
	}
	n.onCheckedChange(v)
	return true
}

// Toggle reports the inverse of the switch's current value.
func (n Node) Toggle() bool {
	return n.SetChecked(!n.Checked)
}

// Walk visits n and its descendants depth-first. Returning false from fn stops
// the walk.
func (n Node) Walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given key.
func (n Node) Find(key string) (Node, bool) {
	var found Node
	ok := false
	n.Walk(func(c Node) bool {
		if c.Key == key {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}
