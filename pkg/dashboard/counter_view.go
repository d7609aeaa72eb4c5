package dashboard

import (
	"fmt"

	"github.com/aretw0/tally/pkg/view"
)

// CounterView renders the current count and an activation button.
// The button only invokes onActivate while enabled is true.
func CounterView(count int, enabled bool, onActivate func()) view.Node {
	return view.Card(
		view.Text(fmt.Sprintf("Points: %d", count), view.StyleDisplay),
		view.Spacer(),
		view.Button(KeyIncrement, IncrementLabel, enabled, onActivate),
	)
}
