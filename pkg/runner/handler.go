package runner

import (
	"context"

	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/view"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// Output presents the actions to the user.
	// Returns true if the actions request input.
	Output(ctx context.Context, actions []domain.ActionRequest) (bool, error)

	// Input reads one line from the user.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (feedback, help).
	// This is distinct from frame rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms a view tree into printable text.
// This allows themed terminal rendering without coupling the runner to a style library.
type ContentRenderer func(view.Node) (string, error)

// MarkdownRenderer transforms markdown (help text) before output.
type MarkdownRenderer func(string) (string, error)
