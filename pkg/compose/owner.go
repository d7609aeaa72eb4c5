package compose

import (
	"errors"

	"github.com/aretw0/tally/pkg/view"
)

// ErrAlreadyMounted is returned when Mount is called on an Owner that holds a root.
var ErrAlreadyMounted = errors.New("owner already has a mounted root")

// Owner holds one mounted root and the tree it last built.
type Owner struct {
	root  Composable
	base  *StateBase
	tree  view.Node
	dirty bool
	frame int

	// OnRebuild is called after every build, including the initial one.
	OnRebuild func(frame int, tree view.Node)
}

// NewOwner creates an empty Owner.
func NewOwner() *Owner {
	return &Owner{}
}

// Mount attaches root and performs the initial build.
// If root embeds StateBase, its SetState calls will schedule rebuilds on this Owner.
func (o *Owner) Mount(root Composable) error {
	if o.root != nil {
		return ErrAlreadyMounted
	}
	o.root = root
	if s, ok := root.(stateful); ok {
		o.base = s.state()
		o.base.owner = o
	}
	o.dirty = true
	o.Flush()
	return nil
}

// Unmount disposes the root state and clears the tree.
func (o *Owner) Unmount() {
	if o.base != nil {
		o.base.dispose()
	}
	o.root = nil
	o.base = nil
	o.tree = view.Node{}
	o.dirty = false
}

// MarkNeedsBuild schedules a rebuild on the next Flush.
func (o *Owner) MarkNeedsBuild() {
	o.dirty = true
}

// NeedsBuild reports whether a rebuild is pending.
func (o *Owner) NeedsBuild() bool {
	return o.dirty
}

// Flush rebuilds the tree if it is dirty and reports whether it did.
func (o *Owner) Flush() bool {
	if !o.dirty || o.root == nil {
		return false
	}
	o.dirty = false
	o.tree = o.root.Build()
	o.frame++
	if o.OnRebuild != nil {
		o.OnRebuild(o.frame, o.tree)
	}
	return true
}

// Tree returns the last built tree.
func (o *Owner) Tree() view.Node {
	return o.tree
}

// Frame returns the number of builds performed since mount.
func (o *Owner) Frame() int {
	return o.frame
}
