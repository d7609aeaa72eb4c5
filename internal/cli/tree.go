package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/internal/presentation/graph"
	"github.com/aretw0/tally/pkg/dashboard"
	"github.com/aretw0/tally/pkg/domain"
)

// TreeOptions configures the tree export.
type TreeOptions struct {
	// Replay is a comma separated list of commands applied before export.
	Replay string
	Out    io.Writer
}

// ExportTree mounts a dashboard, replays commands and prints the view tree as Mermaid.
func ExportTree(ctx context.Context, opts TreeOptions) error {
	host, err := tally.New()
	if err != nil {
		return err
	}
	defer host.Close()

	overlay := &graph.Overlay{}
	for _, cmd := range strings.Split(opts.Replay, ",") {
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue
		}
		in, err := domain.ParseIntent(cmd)
		if err != nil {
			return err
		}
		if _, err := host.Dispatch(ctx, in); err != nil {
			return fmt.Errorf("replaying %q: %w", cmd, err)
		}
		overlay.Focus = controlKey(in)
	}

	_, err = fmt.Fprint(opts.Out, graph.GenerateMermaid(host.Frame().View, overlay))
	return err
}

func controlKey(in domain.Intent) string {
	if in.Type == domain.IntentIncrement {
		return dashboard.KeyIncrement
	}
	return dashboard.KeyEnabled
}
