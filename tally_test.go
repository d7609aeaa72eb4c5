package tally_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/dashboard"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/theme"
	"github.com/aretw0/tally/pkg/view"
)

func newHost(t *testing.T, opts ...tally.Option) *tally.Host {
	t.Helper()
	host, err := tally.New(opts...)
	require.NoError(t, err)
	t.Cleanup(host.Close)
	return host
}

func dispatchAll(t *testing.T, host *tally.Host, intents ...domain.Intent) {
	t.Helper()
	for _, in := range intents {
		_, err := host.Dispatch(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestHost_InitialFrame(t *testing.T) {
	host := newHost(t)

	frame := host.Frame()
	assert.Equal(t, 1, frame.Frame)
	assert.Equal(t, domain.Snapshot{Count: 0, Enabled: true}, frame.State)
	assert.Equal(t, view.KindScaffold, frame.View.Kind)

	title := frame.View.Children[0].Children[0]
	assert.Equal(t, dashboard.Title, title.Text)
}

func TestHost_Render(t *testing.T) {
	host := newHost(t)

	actions := host.Render(context.Background())
	require.Len(t, actions, 2)
	assert.Equal(t, domain.ActionRenderView, actions[0].Type)
	assert.IsType(t, tally.Frame{}, actions[0].Payload)
	assert.Equal(t, domain.ActionRequestInput, actions[1].Type)
}

func TestHost_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		intents []domain.Intent
		want    domain.Snapshot
	}{
		{
			name:    "A: off, blocked activation, on, activate",
			intents: []domain.Intent{domain.SetEnabled(false), domain.Increment(), domain.SetEnabled(true), domain.Increment()},
			want:    domain.Snapshot{Count: 1, Enabled: true},
		},
		{
			name:    "B: activate three times",
			intents: []domain.Intent{domain.Increment(), domain.Increment(), domain.Increment()},
			want:    domain.Snapshot{Count: 3, Enabled: true},
		},
		{
			name:    "C: off, on, off",
			intents: []domain.Intent{domain.Toggle(), domain.Toggle(), domain.SetEnabled(false)},
			want:    domain.Snapshot{Count: 0, Enabled: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newHost(t)
			dispatchAll(t, host, tt.intents...)
			assert.Equal(t, tt.want, host.Snapshot())
		})
	}
}

func TestHost_DisabledActivationIsIgnored(t *testing.T) {
	host := newHost(t)
	dispatchAll(t, host, domain.Increment(), domain.SetEnabled(false))

	framesBefore := host.Frame().Frame
	out, err := host.Dispatch(context.Background(), domain.Increment())
	require.NoError(t, err)

	assert.False(t, out.Accepted)
	assert.Equal(t, 1, out.State.Count)
	assert.Equal(t, framesBefore, out.Frame, "ignored activation does not recompose")
}

func TestHost_Errors(t *testing.T) {
	host := newHost(t)

	_, err := host.Dispatch(context.Background(), domain.Quit())
	assert.ErrorIs(t, err, domain.ErrUnknownIntent)

	_, err = host.Dispatch(context.Background(), domain.Intent{Type: domain.IntentSetEnabled})
	assert.ErrorIs(t, err, domain.ErrUnknownIntent)

	_, err = host.Dispatch(context.Background(), domain.Intent{Type: "jump"})
	assert.ErrorIs(t, err, domain.ErrUnknownIntent)
}

func TestHost_Hooks(t *testing.T) {
	var transitions, ignored []domain.TransitionEvent
	var frames []int

	host := newHost(t,
		tally.WithTheme(theme.Dark()),
		tally.WithLifecycleHooks(domain.LifecycleHooks{
			OnTransition: func(_ context.Context, e *domain.TransitionEvent) { transitions = append(transitions, *e) },
			OnIgnored:    func(_ context.Context, e *domain.TransitionEvent) { ignored = append(ignored, *e) },
		}),
		tally.WithLifecycleHooks(domain.LifecycleHooks{
			OnRecompose: func(_ context.Context, e *domain.RecomposeEvent) { frames = append(frames, e.Frame) },
		}),
	)
	assert.Equal(t, "dark", host.Theme().Name)

	dispatchAll(t, host, domain.Increment(), domain.SetEnabled(false), domain.Increment())

	require.Len(t, transitions, 2)
	assert.Equal(t, domain.Snapshot{Count: 0, Enabled: true}, transitions[0].Before)
	assert.Equal(t, domain.Snapshot{Count: 1, Enabled: true}, transitions[0].After)
	assert.Equal(t, domain.EventTransition, transitions[0].Type)

	require.Len(t, ignored, 1)
	assert.Equal(t, domain.EventIgnored, ignored[0].Type)
	assert.Equal(t, ignored[0].Before, ignored[0].After)

	assert.Equal(t, []int{1, 2, 3}, frames)
}

func TestHost_RemountResets(t *testing.T) {
	first := newHost(t)
	dispatchAll(t, first, domain.Increment(), domain.Toggle())

	second := newHost(t)
	assert.Equal(t, domain.InitialSnapshot(), second.Snapshot())
}
