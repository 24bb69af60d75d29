package gammapath_test

import (
	"fmt"

	"github.com/katalvlaran/gammapath"
	"github.com/katalvlaran/gammapath/pathfile"
)

// ExampleFindPaths reconstructs the paths of a small 97Sr scheme and prints
// the file each one would be written to.
func ExampleFindPaths() {
	lines := []string{
		" 97SR    97RB B- DECAY",
		"97SR   L 0.0        1/2+",
		"97SR   L 167.0      3/2+",
		"97SR   G 167.0     2  100",
		"97SR   L 585.1      5/2+",
		"97SR   G 418.1     3  40",
		"97SR   G 585.1     3  60",
	}

	out, err := gammapath.FindPaths(lines, "97SR", 1.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range out.Paths {
		fmt.Println(pathfile.Filename("97Sr", p), p)
	}

	// Output:
	// 97Sr_167L_167g.ens 167.0 -[167.0]-> 0.0
	// 97Sr_585L_418g_167g.ens 585.1 -[418.1]-> 167.0 -[167.0]-> 0.0
	// 97Sr_585L_585g.ens 585.1 -[585.1]-> 0.0
}
