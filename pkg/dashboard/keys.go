package dashboard

// Control keys used by hosts to route intents into the tree.
const (
	KeyIncrement = "counter.increment"
	KeyEnabled   = "settings.enabled"
)

const (
	Title          = "Interactive Dashboard"
	IncrementLabel = "Increment Points"
	ToggleLabel    = "Allow Increments"
)
