/*
Package compose is a small recomposition runtime for view trees.

A stateful root embeds StateBase and mutates its fields through SetState. The
Owner that mounted the root is marked dirty, and the next Flush rebuilds the whole
tree from the root's Build method. There is no diffing: every accepted transition
produces a complete new tree.

All methods must be called from a single goroutine (the host loop).
*/
package compose
