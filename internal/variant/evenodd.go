package variant

import (
	"math/rand"

	"sudoku_variants_go/internal/types"
)

type evenOdd struct{ base }

func (evenOdd) Info() Info {
	return Info{
		Type:        types.EvenOdd,
		Name:        "Even-Odd",
		Description: "Classic rules plus shaded cells hold even numbers and unshaded cells odd ones.",
		Sizes:       []int{4, 6, 9},
	}
}

func (evenOdd) ExtraValid(g *types.Grid, _ [][]int, row, col, val int) bool {
	// No mask before Finalize runs; the fill is unconstrained then.
	if g.EvenMask == nil {
		return true
	}
	if g.EvenMask[row][col] {
		return val%2 == 0
	}
	return val%2 == 1
}

// Finalize derives the shading from the solution's parity, so the mask is
// always satisfiable by the solution it ships with. This also repairs the
// mask after a classic-generator fallback.
func (evenOdd) Finalize(g *types.Grid, _ *rand.Rand) {
	mask := make([][]bool, g.Size)
	for r := 0; r < g.Size; r++ {
		mask[r] = make([]bool, g.Size)
		for c := 0; c < g.Size; c++ {
			mask[r][c] = g.Solution[r][c]%2 == 0
		}
	}
	g.EvenMask = mask
}

func (evenOdd) MaxAttempts() int { return 50 }
