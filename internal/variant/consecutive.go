package variant

import (
	"math/rand"

	"sudoku_variants_go/internal/types"
)

// markProbability is the chance that a genuinely consecutive neighbor
// pair in the solution receives a mark. Anything below 1.0 leaves the
// solution itself in violation of the strict two-sided rule, so every
// consecutive pair is marked.
const markProbability = 1.0

type consecutive struct{ base }

func (consecutive) Info() Info {
	return Info{
		Type:        types.Consecutive,
		Name:        "Consecutive",
		Description: "Marked neighbors must differ by exactly one; unmarked neighbors must not.",
		Sizes:       []int{4, 6, 9},
	}
}

func (consecutive) ExtraValid(g *types.Grid, board [][]int, row, col, val int) bool {
	// Marks are derived from the solution, so the fill runs unconstrained.
	if g.HMarks == nil || g.VMarks == nil {
		return true
	}

	check := func(neighbor int, marked bool) bool {
		if neighbor == 0 {
			return true
		}
		diff := val - neighbor
		if diff < 0 {
			diff = -diff
		}
		if marked {
			return diff == 1
		}
		return diff != 1
	}

	if col > 0 && !check(board[row][col-1], g.HMarks[row][col-1]) {
		return false
	}
	if col < g.Size-1 && !check(board[row][col+1], g.HMarks[row][col]) {
		return false
	}
	if row > 0 && !check(board[row-1][col], g.VMarks[row-1][col]) {
		return false
	}
	if row < g.Size-1 && !check(board[row+1][col], g.VMarks[row][col]) {
		return false
	}

	return true
}

func (consecutive) Finalize(g *types.Grid, rng *rand.Rand) {
	g.HMarks, g.VMarks = marksFromSolution(g.Solution, g.Size, rng, markProbability)
}

// marksFromSolution marks each neighbor pair whose solution values differ
// by one, with probability prob per pair.
func marksFromSolution(solution [][]int, size int, rng *rand.Rand, prob float64) (hMarks, vMarks [][]bool) {
	hMarks = make([][]bool, size)
	for r := 0; r < size; r++ {
		hMarks[r] = make([]bool, size-1)
		for c := 0; c < size-1; c++ {
			diff := solution[r][c] - solution[r][c+1]
			if diff == 1 || diff == -1 {
				hMarks[r][c] = rng.Float64() < prob
			}
		}
	}

	vMarks = make([][]bool, size-1)
	for r := 0; r < size-1; r++ {
		vMarks[r] = make([]bool, size)
		for c := 0; c < size; c++ {
			diff := solution[r][c] - solution[r+1][c]
			if diff == 1 || diff == -1 {
				vMarks[r][c] = rng.Float64() < prob
			}
		}
	}

	return hMarks, vMarks
}
