/*
Package view describes user interfaces as immutable trees of nodes.

A view function is a pure function of its parameters that returns a Node.
Interactive nodes (Button, Switch) carry a stable key and a callback supplied by
the caller; they never hold state of their own. Hosts locate a control with Find
and deliver interaction through Click, SetChecked or Toggle.
*/
package view
