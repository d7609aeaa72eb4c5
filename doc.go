/*
Package tally hosts the Interactive Dashboard: a single screen with a counter and
an enable switch, built from one stateful root view and two stateless children.

The Host mounts exactly one dashboard.Dashboard inside a full-screen scaffold and
exposes a render/dispatch cycle to frontends. After every intent the composition
is flushed, so each frame returned by Render reflects the latest accepted
transition.

# Usage

	host, err := tally.New(tally.WithTheme(theme.Dark()))
	if err != nil {
		log.Fatal(err)
	}
	defer host.Close()

	out, err := host.Dispatch(ctx, domain.Increment())
	// out.Accepted == true, out.State.Count == 1

Frontends (the text and NDJSON runners in pkg/runner) call Render to obtain the
action requests for the current frame and Dispatch to deliver parsed intents.
All calls must come from a single goroutine.
*/
package tally
