package autgroup_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcode/autgroup"
	"github.com/katalvlaran/lvlcode/bincode"
	"github.com/katalvlaran/lvlcode/binmat"
)

////////////////////////////////////////////////////////////////////////////////
// Helper builders for example codes
////////////////////////////////////////////////////////////////////////////////

// buildEvenWeightCode constructs the length-3 even weight code as the span
// of the basis
//
//	[1 0 1]
//	[0 1 1]
//
// whose four codewords are 000, 101, 011, 110.
func buildEvenWeightCode() *bincode.Linear {
	m, _ := binmat.FromRows([][]int{
		{1, 0, 1},
		{0, 1, 1},
	})
	c, _ := bincode.NewLinear(m)

	return c
}

// buildTwoSingletonCode constructs the nonlinear code holding the two
// codewords 1000 and 0010.
func buildTwoSingletonCode() *bincode.Nonlinear {
	m, _ := binmat.FromRows([][]int{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	})
	c, _ := bincode.NewNonlinear(m)

	return c
}

// ExampleSearch computes the automorphism group of the length-3 even weight
// code: every permutation of the three columns preserves the codeword set.
func ExampleSearch() {
	res, err := autgroup.Search(buildEvenWeightCode(), nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("order:", res.Order)
	fmt.Println("base:", res.Base)
	fmt.Println("canonical:", res.CanonicalLabeling)
	// Output:
	// order: 6
	// base: [0 1]
	// canonical: [0 1 2]
}

// ExampleSearch_generators lists the discovered automorphisms of the
// nonlinear code {1000, 0010}: columns 0/2 and columns 1/3 swap
// independently.
func ExampleSearch_generators() {
	res, err := autgroup.Search(buildTwoSingletonCode(), nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("order:", res.Order)
	for _, g := range res.Generators {
		fmt.Println("generator:", g)
	}
	// Output:
	// order: 4
	// generator: [2 1 0 3]
	// generator: [0 3 2 1]
	// generator: [2 3 0 1]
}

// ExampleSearch_base restricts the even weight code to relabelings fixing
// column 0; only the swap of columns 1 and 2 remains.
func ExampleSearch_base() {
	res, err := autgroup.Search(buildEvenWeightCode(), [][]int{{0}, {1, 2}}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("order:", res.Order)
	fmt.Println("generators:", res.Generators)
	// Output:
	// order: 2
	// generators: [[0 2 1]]
}
