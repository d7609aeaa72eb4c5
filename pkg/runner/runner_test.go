package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/domain"
)

func newHost(t *testing.T) *tally.Host {
	t.Helper()
	host, err := tally.New()
	require.NoError(t, err)
	t.Cleanup(host.Close)
	return host
}

// runWith drives a runner in a goroutine so a broken loop fails instead of hanging.
func runWith(t *testing.T, r *Runner, host *tally.Host) domain.Snapshot {
	t.Helper()
	return runWithContext(t, t.Context(), r, host)
}

func runWithContext(t *testing.T, ctx context.Context, r *Runner, host *tally.Host) domain.Snapshot {
	t.Helper()
	type result struct {
		snap domain.Snapshot
		err  error
	}
	done := make(chan result, 1)
	go func() {
		snap, err := r.Run(ctx, host)
		done <- result{snap, err}
	}()

	select {
	case res := <-done:
		require.NoError(t, res.err)
		return res.snap
	case <-time.After(2 * time.Second):
		t.Fatal("Runner timed out")
		return domain.Snapshot{}
	}
}

func TestRunner_TextScenarioA(t *testing.T) {
	in := bytes.NewBufferString("off\ninc\non\n+\nquit\n")
	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewTextHandler(in, out)))

	final := runWith(t, r, newHost(t))

	assert.Equal(t, domain.Snapshot{Count: 1, Enabled: true}, final)
	text := out.String()
	assert.Contains(t, text, "Points: 0")
	assert.Contains(t, text, "[Increment Points] (disabled)")
	assert.Contains(t, text, "[System] "+MsgIncrementsDisabled)
	assert.Contains(t, text, "Points: 1")
}

func TestRunner_TextScenarioB_EOFEndsSession(t *testing.T) {
	in := bytes.NewBufferString("+\n+\n+")
	out := &bytes.Buffer{}
	r := NewRunner(WithIO(in, out))

	final := runWith(t, r, newHost(t))
	assert.Equal(t, domain.Snapshot{Count: 3, Enabled: true}, final)
	assert.Contains(t, out.String(), "Points: 3")
}

func TestRunner_RendersOnlyAfterAcceptedTransitions(t *testing.T) {
	in := bytes.NewBufferString("bogus\nhelp\nt\ninc\n")
	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewTextHandler(in, out)))

	final := runWith(t, r, newHost(t))
	assert.Equal(t, domain.Snapshot{Count: 0, Enabled: false}, final)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Interactive Dashboard"), "initial frame plus one for the toggle")
	assert.Contains(t, text, `Unknown command "bogus"`)
	assert.Contains(t, text, "# Keys")
}

func TestRunner_EmptyLineRedraws(t *testing.T) {
	in := bytes.NewBufferString("\n\nq\n")
	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewTextHandler(in, out)))

	runWith(t, r, newHost(t))
	assert.Equal(t, 3, strings.Count(out.String(), "Interactive Dashboard"))
}

func TestRunner_HelpUsesMarkdownRenderer(t *testing.T) {
	in := bytes.NewBufferString("?\n")
	out := &bytes.Buffer{}
	r := NewRunner(
		WithInputHandler(NewTextHandler(in, out)),
		WithMarkdown(func(md string) (string, error) { return "RENDERED", nil }),
	)

	runWith(t, r, newHost(t))
	assert.Contains(t, out.String(), "[System] RENDERED")
}

func TestRunner_Interrupt(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	interrupt := make(chan struct{})
	r := NewRunner(
		WithInputHandler(NewTextHandler(pr, io.Discard)),
		WithInterruptSource(interrupt),
	)

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(interrupt)
	}()

	final := runWith(t, r, newHost(t))
	assert.Equal(t, domain.InitialSnapshot(), final)
}

func TestRunner_JSONMode(t *testing.T) {
	in := bytes.NewBufferString(`{"type":"increment"}` + "\n" + `"toggle"` + "\n" + `{"type":"increment"}` + "\n" + `{"type":"quit"}` + "\n")
	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewJSONHandler(in, out)))

	final := runWith(t, r, newHost(t))
	assert.Equal(t, domain.Snapshot{Count: 1, Enabled: false}, final)

	var lines []map[string]any
	dec := json.NewDecoder(out)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}

	require.Len(t, lines, 4)
	assert.Equal(t, domain.ActionRenderView, lines[0]["type"])
	assert.EqualValues(t, 1, lines[0]["frame"])
	assert.Equal(t, map[string]any{"count": 1.0, "enabled": true}, lines[1]["state"])
	assert.Equal(t, map[string]any{"count": 1.0, "enabled": false}, lines[2]["state"])
	assert.Equal(t, domain.ActionSystemMessage, lines[3]["type"])
	assert.Equal(t, MsgIncrementsDisabled, lines[3]["payload"])
}

func TestRunner_JSONModeCancelledWhileIdle(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewJSONHandler(pr, out)))

	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	final := runWithContext(t, ctx, r, newHost(t))
	assert.Equal(t, domain.InitialSnapshot(), final)
	assert.Contains(t, out.String(), domain.ActionRenderView)
}

func TestRunner_JSONModeInterrupt(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var logs bytes.Buffer
	interrupt := make(chan struct{})
	r := NewRunner(
		WithInputHandler(NewJSONHandler(pr, io.Discard)),
		WithInterruptSource(interrupt),
		WithLogger(logging.NewWithWriter(&logs, slog.LevelDebug)),
	)

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(interrupt)
	}()

	final := runWith(t, r, newHost(t))
	assert.Equal(t, domain.InitialSnapshot(), final)
	assert.Contains(t, logs.String(), `msg="runner interrupted"`)
	assert.Contains(t, logs.String(), "signal=<nil>", "interrupt source is not an OS signal")
}

func TestRunner_JSONModeSkipsRejectedLines(t *testing.T) {
	in := bytes.NewBufferString(strings.Repeat("x", 300) + "\n" + `{"type":"increment"}` + "\n")
	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewJSONHandler(in, out)))

	final := runWith(t, r, newHost(t))
	assert.Equal(t, domain.Snapshot{Count: 1, Enabled: true}, final)
	assert.Contains(t, out.String(), ErrInputTooLarge.Error())
}

func TestRunner_ClosesHandler(t *testing.T) {
	handler := NewTextHandler(bytes.NewBufferString("q\n"), io.Discard)
	r := NewRunner(WithInputHandler(handler))

	runWith(t, r, newHost(t))

	_, err := handler.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
