package compose

import "github.com/aretw0/tally/pkg/view"

// Composable is implemented by any stateful root that can describe its UI.
type Composable interface {
	Build() view.Node
}

// stateful is satisfied by any struct that embeds StateBase.
type stateful interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides SetState and disposal for stateful roots.
//
//	type counter struct {
//	    compose.StateBase
//	    n int
//	}
//
//	func (c *counter) inc() { c.SetState(func() { c.n++ }) }
type StateBase struct {
	owner     *Owner
	disposers []func()
	disposed  bool
}

// SetState executes fn and schedules a rebuild of the owning tree.
// Safe to call after disposal (becomes a no-op).
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.owner != nil {
		s.owner.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup function run when the root is unmounted.
func (s *StateBase) OnDispose(cleanup func()) {
	if cleanup == nil {
		return
	}
	if s.disposed {
		cleanup()
		return
	}
	s.disposers = append(s.disposers, cleanup)
}

// IsDisposed returns true once the root has been unmounted.
func (s *StateBase) IsDisposed() bool {
	return s.disposed
}

// Mounted reports whether the state is attached to an Owner.
func (s *StateBase) Mounted() bool {
	return s.owner != nil && !s.disposed
}

func (s *StateBase) dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.disposers) - 1; i >= 0; i-- {
		s.disposers[i]()
	}
	s.disposers = nil
	s.owner = nil
}
