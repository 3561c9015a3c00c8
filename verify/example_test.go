package verify_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dickson/dataset"
	"github.com/katalvlaran/dickson/verify"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRun
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build the full-period table for p = 5 and certify the three closed
//	forms against it. Every check is exact: integrality, membership in
//	the observed cardinality-2 indices {13, 17, 24}, and value-set
//	identity, plus the completeness invariant (exactly three indices).
func ExampleRun() {
	ds, err := dataset.Build(context.Background(), dataset.WithPrimes(5))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rep, err := verify.Run(context.Background(), ds)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(rep.AllPassed)
	fmt.Println(rep.Outcomes[0])
	// Output:
	// true
	// n1 = (p^2 + 1)/2 @ p=5: value=13 integral=true member=true set=true
}
