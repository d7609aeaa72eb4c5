package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/view"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	clearScreen bool
	term        *termenv.Output

	pump *linePump
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the frame renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithClearScreen clears the terminal before each frame.
func WithClearScreen(clear bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.clearScreen = clear
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		term:   termenv.NewOutput(w),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.pump = newLinePump(h.Reader)
	return h
}

func (h *TextHandler) Output(ctx context.Context, actions []domain.ActionRequest) (bool, error) {
	needsInput := false
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderView:
			frame, ok := act.Payload.(tally.Frame)
			if !ok {
				return false, fmt.Errorf("unexpected payload %T for %s", act.Payload, act.Type)
			}
			if h.clearScreen {
				h.term.ClearScreen()
			}
			fmt.Fprintln(h.Writer, h.render(frame.View))
		case domain.ActionSystemMessage:
			if msg, ok := act.Payload.(string); ok {
				if err := h.SystemOutput(ctx, msg); err != nil {
					return false, err
				}
			}
		case domain.ActionRequestInput:
			needsInput = true
		}
	}
	return needsInput, nil
}

func (h *TextHandler) render(n view.Node) string {
	if h.Renderer != nil {
		if out, err := h.Renderer(n); err == nil {
			return out
		}
	}
	return view.Outline(n)
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		text, err := h.pump.next(ctx)
		if err != nil {
			return "", err
		}

		clean, err := SanitizeInput(strings.TrimSpace(text))
		if err != nil {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

// Close stops the input pump. Input returns io.EOF afterwards. A read already
// blocked on the reader is released only when the reader itself is closed.
func (h *TextHandler) Close() error {
	h.pump.close()
	return nil
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", strings.TrimSpace(msg))
	return err
}
