package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTransition EventType = "transition"
	EventIgnored    EventType = "ignored"
	EventRecompose  EventType = "recompose"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TransitionEvent describes an intent delivered to the dashboard.
type TransitionEvent struct {
	EventBase
	Intent Intent   `json:"intent"`
	Before Snapshot `json:"before"`
	After  Snapshot `json:"after"`
}

// RecomposeEvent is emitted after the view tree has been rebuilt.
type RecomposeEvent struct {
	EventBase
	Frame int      `json:"frame"`
	State Snapshot `json:"state"`
}

// LifecycleHooks defines callbacks for host observability.
type LifecycleHooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnIgnored    func(context.Context, *TransitionEvent)
	OnRecompose  func(context.Context, *RecomposeEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransition: chain(h.OnTransition, other.OnTransition),
		OnIgnored:    chain(h.OnIgnored, other.OnIgnored),
		OnRecompose:  chain(h.OnRecompose, other.OnRecompose),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
