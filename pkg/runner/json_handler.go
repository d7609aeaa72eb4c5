package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder

	pump *linePump
}

// frameLine is the NDJSON shape of a RENDER_VIEW action.
type frameLine struct {
	Type string `json:"type"`
	tally.Frame
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	reader := bufio.NewReader(r)
	return &JSONHandler{
		Reader:  reader,
		Writer:  w,
		Encoder: json.NewEncoder(w),
		pump:    newLinePump(reader),
	}
}

func (h *JSONHandler) Output(ctx context.Context, actions []domain.ActionRequest) (bool, error) {
	needsInput := false
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderView:
			frame, ok := act.Payload.(tally.Frame)
			if !ok {
				return false, fmt.Errorf("unexpected payload %T for %s", act.Payload, act.Type)
			}
			if err := h.Encoder.Encode(frameLine{Type: act.Type, Frame: frame}); err != nil {
				return false, err
			}
		case domain.ActionRequestInput:
			needsInput = true
		default:
			if err := h.Encoder.Encode(act); err != nil {
				return false, err
			}
		}
	}
	return needsInput, nil
}

// Input reads one line. Intent parsing (JSON object, JSON string or plain text)
// is left to the runner. Lines rejected by SanitizeInput are reported as a
// SYSTEM_MESSAGE and skipped.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		text, err := h.pump.next(ctx)
		if err != nil {
			return "", err
		}

		clean, err := SanitizeInput(strings.TrimSpace(text))
		if err != nil {
			if err := h.SystemOutput(ctx, fmt.Sprintf("Rejected input: %v", err)); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

// Close stops the input pump. Input returns io.EOF afterwards.
func (h *JSONHandler) Close() error {
	h.pump.close()
	return nil
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(domain.ActionRequest{Type: domain.ActionSystemMessage, Payload: msg})
}
