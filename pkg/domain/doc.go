/*
Package domain contains the core models shared by the tally host, the dashboard
and the runner.

It defines the observable state of the dashboard, the intents a host can deliver
to it, the action requests the host emits for rendering, and the lifecycle events
used for observability. The package is kept free of I/O so every other layer can
depend on it.

# Key Entities

  - Snapshot: a read-only copy of the dashboard state (count, enabled flag).
  - Intent: a user request routed to a control in the current view tree.
  - ActionRequest: a structural representation of what the host should render.
  - TransitionEvent: emitted after a transition is accepted or ignored.
*/
package domain
