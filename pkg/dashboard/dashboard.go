package dashboard

import (
	"github.com/aretw0/tally/pkg/compose"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/view"
)

// Dashboard is the stateful root of the screen.
// A new instance always starts with count 0 and increments enabled.
type Dashboard struct {
	compose.StateBase

	count   int
	enabled bool
}

// New creates a Dashboard in its initial state.
func New() *Dashboard {
	s := domain.InitialSnapshot()
	return &Dashboard{count: s.Count, enabled: s.Enabled}
}

// Build describes the screen for the current state.
func (d *Dashboard) Build() view.Node {
	return view.Column(
		view.Text(Title, view.StyleHeadline),
		CounterView(d.count, d.enabled, d.increment),
		ToggleView(d.enabled, d.setEnabled),
	)
}

// Count returns the current counter value.
func (d *Dashboard) Count() int { return d.count }

// Enabled returns the current flag value.
func (d *Dashboard) Enabled() bool { return d.enabled }

// Snapshot returns a copy of the current state.
func (d *Dashboard) Snapshot() domain.Snapshot {
	return domain.Snapshot{Count: d.count, Enabled: d.enabled}
}

func (d *Dashboard) increment() {
	d.SetState(func() { d.count++ })
}

func (d *Dashboard) setEnabled(v bool) {
	d.SetState(func() { d.enabled = v })
}
