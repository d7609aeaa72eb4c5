/*
Package dashboard implements the Interactive Dashboard screen.

Dashboard is the only stateful component: it owns the counter and the enabled
flag. CounterView and ToggleView are stateless view functions that receive a
snapshot of those values plus callbacks, and report interaction upward.
*/
package dashboard
