package domain

// Snapshot is an immutable copy of the dashboard state handed to views and hosts.
type Snapshot struct {
	// Count is the number of accepted activations since mount.
	Count int `json:"count"`

	// Enabled gates the activation control.
	Enabled bool `json:"enabled"`
}

// InitialSnapshot returns the state of a freshly mounted dashboard.
func InitialSnapshot() Snapshot {
	return Snapshot{Count: 0, Enabled: true}
}
