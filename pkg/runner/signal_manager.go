package runner

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// SignalManager turns SIGINT/SIGTERM into context cancellation for the input wait
// and remembers which signal arrived.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	sigCh  chan os.Signal
	sigVal os.Signal
}

// NewSignalManager creates a new manager and immediately starts listening for signals.
func NewSignalManager() *SignalManager {
	sm := &SignalManager{sigCh: make(chan os.Signal, 1)}
	sm.ctx, sm.cancel = context.WithCancel(context.Background())

	signal.Notify(sm.sigCh, os.Interrupt, syscall.SIGTERM)
	go sm.listen()
	return sm
}

func (sm *SignalManager) listen() {
	select {
	case sig := <-sm.sigCh:
		sm.mu.Lock()
		sm.sigVal = sig
		sm.mu.Unlock()
		sm.cancel()
	case <-sm.ctx.Done():
	}
	signal.Stop(sm.sigCh)
}

// Context is cancelled when a signal arrives or Stop is called.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Signal returns the signal that cancelled the context, if any.
func (sm *SignalManager) Signal() os.Signal {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.sigVal
}

// Stop permanently stops the signal listener.
func (sm *SignalManager) Stop() {
	sm.cancel()
}

// CheckRace waits briefly to see if a context cancellation follows an error.
// On some terminals Ctrl+C surfaces as a read error slightly before the signal.
func (sm *SignalManager) CheckRace() {
	if sm.ctx.Err() != nil {
		return
	}
	select {
	case <-sm.ctx.Done():
	case <-time.After(100 * time.Millisecond):
	}
}
