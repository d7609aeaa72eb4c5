package tally_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
)

// ExampleHost_Dispatch walks through mount, a blocked activation and a re-enable.
func ExampleHost_Dispatch() {
	host, err := tally.New()
	if err != nil {
		log.Fatal(err)
	}
	defer host.Close()

	ctx := context.Background()
	for _, in := range []domain.Intent{
		domain.SetEnabled(false),
		domain.Increment(),
		domain.SetEnabled(true),
		domain.Increment(),
	} {
		out, err := host.Dispatch(ctx, in)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-18s accepted=%-5t count=%d enabled=%t\n", in, out.Accepted, out.State.Count, out.State.Enabled)
	}

	// Output:
	// set_enabled(false) accepted=true  count=0 enabled=false
	// increment          accepted=false count=0 enabled=false
	// set_enabled(true)  accepted=true  count=0 enabled=true
	// increment          accepted=true  count=1 enabled=true
}
