package dashboard

import "github.com/aretw0/tally/pkg/view"

// ToggleView renders the settings row with a switch reflecting enabled.
func ToggleView(enabled bool, onChange func(bool)) view.Node {
	return view.Row(view.ArrangeSpaceBetween,
		view.Text(ToggleLabel, view.StyleBody),
		view.Switch(KeyEnabled, enabled, onChange),
	)
}
