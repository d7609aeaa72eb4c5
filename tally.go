package tally

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/compose"
	"github.com/aretw0/tally/pkg/dashboard"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/theme"
	"github.com/aretw0/tally/pkg/view"
)

// Host is the process-level entry point. It owns the composition and the single
// mounted Dashboard.
type Host struct {
	theme  theme.Theme
	hooks  domain.LifecycleHooks
	logger *slog.Logger

	owner *compose.Owner
	root  *dashboard.Dashboard
}

// Frame is the payload of a RENDER_VIEW action.
type Frame struct {
	Frame int             `json:"frame"`
	State domain.Snapshot `json:"state"`
	View  view.Node       `json:"view"`
}

// Outcome reports what happened to a dispatched intent.
type Outcome struct {
	Intent   domain.Intent   `json:"intent"`
	Accepted bool            `json:"accepted"`
	State    domain.Snapshot `json:"state"`
	Frame    int             `json:"frame"`
}

// Option defines a functional option for configuring the Host.
type Option func(*Host)

// WithTheme sets the visual theme installed on the scaffold.
func WithTheme(th theme.Theme) Option {
	return func(h *Host) {
		h.theme = th
	}
}

// WithLifecycleHooks registers observability hooks.
// Calling it more than once merges the hooks in order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(h *Host) {
		h.hooks = h.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the host.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// New installs the theme and mounts one Dashboard.
func New(opts ...Option) (*Host, error) {
	h := &Host{
		theme:  theme.Auto(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.owner = compose.NewOwner()
	h.owner.OnRebuild = func(frame int, _ view.Node) {
		h.logger.Debug("tree rebuilt", "frame", frame)
	}
	h.root = dashboard.New()
	if err := h.owner.Mount(h.root); err != nil {
		return nil, fmt.Errorf("failed to mount dashboard: %w", err)
	}
	h.emitRecompose(context.Background())

	return h, nil
}

// Theme returns the installed theme.
func (h *Host) Theme() theme.Theme {
	return h.theme
}

// Snapshot returns the current dashboard state.
func (h *Host) Snapshot() domain.Snapshot {
	return h.root.Snapshot()
}

// Frame returns the current frame, wrapped in the scaffold.
func (h *Host) Frame() Frame {
	return Frame{
		Frame: h.owner.Frame(),
		State: h.root.Snapshot(),
		View:  view.Scaffold(h.owner.Tree()),
	}
}

// Render returns the actions a frontend should perform for the current frame.
func (h *Host) Render(ctx context.Context) []domain.ActionRequest {
	return []domain.ActionRequest{
		{Type: domain.ActionRenderView, Payload: h.Frame()},
		{Type: domain.ActionRequestInput},
	}
}

// Dispatch delivers an intent to the matching control of the current tree and
// flushes the composition. An intent aimed at a disabled control is not an
// error: it is reported with Accepted=false.
func (h *Host) Dispatch(ctx context.Context, in domain.Intent) (Outcome, error) {
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}

	var key string
	var fire func(view.Node) bool
	switch in.Type {
	case domain.IntentIncrement:
		key, fire = dashboard.KeyIncrement, view.Node.Click
	case domain.IntentToggle:
		key, fire = dashboard.KeyEnabled, view.Node.Toggle
	case domain.IntentSetEnabled:
		v := *in.Value
		key, fire = dashboard.KeyEnabled, func(n view.Node) bool { return n.SetChecked(v) }
	default:
		return Outcome{}, fmt.Errorf("%w: %s is not a view intent", domain.ErrUnknownIntent, in.Type)
	}

	control, ok := h.owner.Tree().Find(key)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", domain.ErrControlNotFound, key)
	}

	before := h.root.Snapshot()
	accepted := fire(control)
	event := &domain.TransitionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
		Intent:    in,
		Before:    before,
	}

	if h.owner.Flush() {
		h.emitRecompose(ctx)
	}
	event.After = h.root.Snapshot()

	if accepted {
		if h.hooks.OnTransition != nil {
			h.hooks.OnTransition(ctx, event)
		}
	} else {
		event.Type = domain.EventIgnored
		if h.hooks.OnIgnored != nil {
			h.hooks.OnIgnored(ctx, event)
		}
	}

	return Outcome{
		Intent:   in,
		Accepted: accepted,
		State:    event.After,
		Frame:    h.owner.Frame(),
	}, nil
}

// Close unmounts the dashboard. The Host must not be used afterwards.
func (h *Host) Close() {
	h.owner.Unmount()
}

func (h *Host) emitRecompose(ctx context.Context) {
	if h.hooks.OnRecompose == nil {
		return
	}
	h.hooks.OnRecompose(ctx, &domain.RecomposeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRecompose},
		Frame:     h.owner.Frame(),
		State:     h.root.Snapshot(),
	})
}
