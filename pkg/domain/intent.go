package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IntentType names the kind of interaction a user requested.
type IntentType string

const (
	IntentIncrement  IntentType = "increment"
	IntentSetEnabled IntentType = "set_enabled"
	IntentToggle     IntentType = "toggle"
	IntentHelp       IntentType = "help"
	IntentQuit       IntentType = "quit"
)

// Intent is a request travelling from the frontend to a control of the view tree.
type Intent struct {
	Type IntentType `json:"type"`

	// Value carries the requested flag for IntentSetEnabled.
	Value *bool `json:"value,omitempty"`
}

// Increment builds an activation intent.
func Increment() Intent { return Intent{Type: IntentIncrement} }

// Toggle builds an intent that flips the enabled switch.
func Toggle() Intent { return Intent{Type: IntentToggle} }

// SetEnabled builds an intent that sets the enabled switch to v.
func SetEnabled(v bool) Intent { return Intent{Type: IntentSetEnabled, Value: &v} }

// Quit builds an intent that stops the host loop.
func Quit() Intent { return Intent{Type: IntentQuit} }

var textCommands = map[string]Intent{
	"+":         Increment(),
	"i":         Increment(),
	"inc":       Increment(),
	"increment": Increment(),
	"t":         Toggle(),
	"toggle":    Toggle(),
	"on":        SetEnabled(true),
	"off":       SetEnabled(false),
	"h":         {Type: IntentHelp},
	"?":         {Type: IntentHelp},
	"help":      {Type: IntentHelp},
	"q":         Quit(),
	"quit":      Quit(),
	"exit":      Quit(),
}

// ParseIntent converts a line of user input into an Intent.
// It accepts the text commands as well as a JSON object or JSON string.
func ParseIntent(input string) (Intent, error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "{") {
		var in Intent
		if err := json.Unmarshal([]byte(input), &in); err != nil {
			return Intent{}, fmt.Errorf("%w: %v", ErrUnknownIntent, err)
		}
		return in, in.Validate()
	}

	if strings.HasPrefix(input, `"`) {
		var s string
		if err := json.Unmarshal([]byte(input), &s); err == nil {
			input = strings.TrimSpace(s)
		}
	}

	if in, ok := textCommands[strings.ToLower(input)]; ok {
		return in, nil
	}
	return Intent{}, fmt.Errorf("%w: %q", ErrUnknownIntent, input)
}

// Validate checks that the intent is well formed.
func (i Intent) Validate() error {
	switch i.Type {
	case IntentIncrement, IntentToggle, IntentHelp, IntentQuit:
		return nil
	case IntentSetEnabled:
		if i.Value == nil {
			return fmt.Errorf("%w: set_enabled requires a value", ErrUnknownIntent)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIntent, i.Type)
	}
}

func (i Intent) String() string {
	if i.Type == IntentSetEnabled && i.Value != nil {
		return fmt.Sprintf("%s(%t)", i.Type, *i.Value)
	}
	return string(i.Type)
}
