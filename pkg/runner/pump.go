package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"
)

type inputResult struct {
	text string
	err  error
}

// linePump reads lines in the background so Input can honour context
// cancellation. A read already blocked on the underlying reader only returns
// when that reader is closed or delivers data; after close the goroutine exits
// at its next send.
type linePump struct {
	reader *bufio.Reader
	lines  chan inputResult
	done   chan struct{}

	startOnce sync.Once
	closeOnce sync.Once
}

func newLinePump(r *bufio.Reader) *linePump {
	return &linePump{
		reader: r,
		lines:  make(chan inputResult),
		done:   make(chan struct{}),
	}
}

func (p *linePump) run() {
	defer close(p.lines)
	for {
		text, err := p.reader.ReadString('\n')

		if text != "" && !p.send(inputResult{text: text}) {
			return
		}

		if err != nil {
			if err == io.EOF {
				return
			}
			if !p.send(inputResult{err: err}) {
				return
			}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (p *linePump) send(res inputResult) bool {
	select {
	case p.lines <- res:
		return true
	case <-p.done:
		return false
	}
}

// next returns the next raw line. It returns io.EOF once input ends or the
// pump is closed, and ctx.Err() when ctx is cancelled first.
func (p *linePump) next(ctx context.Context) (string, error) {
	p.startOnce.Do(func() { go p.run() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", io.EOF
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

func (p *linePump) close() {
	p.closeOnce.Do(func() { close(p.done) })
}
