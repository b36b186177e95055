// File: closure/example_test.go
package closure_test

import (
	"fmt"

	"github.com/katalvlaran/simplicia/closure"
	"github.com/katalvlaran/simplicia/simplex"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Close
////////////////////////////////////////////////////////////////////////////////

// ExampleClose walks the language-team scenario: one observed team of three
// languages, closed down to pairs and single languages.
// Scenario:
//
//   - {Danish, Dutch, German} observed twice (weight 2)
//   - the pair {Danish, German} also observed once on its own
//   - after Close, each pair carries the triangle's weight plus its own,
//     and each language sums its closed pairs
func ExampleClose() {
	s := simplex.NewStore()
	_ = s.Insert(2, []string{"Danish", "Dutch", "German"}, 2)
	_ = s.Insert(1, []string{"Danish", "German"}, 1)

	if err := closure.Close(s, nil); err != nil {
		fmt.Println("close failed:", err)
		return
	}

	for k := s.MaxDimension(); k >= 0; k-- {
		fmt.Printf("dimension %d:\n", k)
		for labels, w := range s.Rows(k) {
			fmt.Printf("  %v %g\n", labels, w)
		}
	}

	// Output:
	// dimension 2:
	//   [Danish Dutch German] 2
	// dimension 1:
	//   [Danish Dutch] 2
	//   [Danish German] 3
	//   [Dutch German] 2
	// dimension 0:
	//   [Danish] 5
	//   [Dutch] 4
	//   [German] 5
}

////////////////////////////////////////////////////////////////////////////////
// Example: Faces
////////////////////////////////////////////////////////////////////////////////

// ExampleFaces lists the immediate faces of a dimension-2 simplex.
func ExampleFaces() {
	for _, f := range closure.Faces(simplex.Labels{"Danish", "Dutch", "German"}) {
		fmt.Println(f)
	}

	// Output:
	// [Dutch German]
	// [Danish German]
	// [Danish Dutch]
}
