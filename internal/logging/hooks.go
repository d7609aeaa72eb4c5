package logging

import (
	"context"
	"log/slog"

	"github.com/aretw0/tally/pkg/domain"
)

// Hooks returns lifecycle hooks that record every transition at debug level.
func Hooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.DebugContext(ctx, "transition",
				"intent", e.Intent.String(),
				"count", e.After.Count,
				"enabled", e.After.Enabled,
			)
		},
		OnIgnored: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.DebugContext(ctx, "ignored",
				"intent", e.Intent.String(),
				"count", e.Before.Count,
				"enabled", e.Before.Enabled,
			)
		},
		OnRecompose: func(ctx context.Context, e *domain.RecomposeEvent) {
			logger.DebugContext(ctx, "recompose", "frame", e.Frame)
		},
	}
}
