package generator

import (
	"math/rand"

	"sudoku_variants_go/internal/types"
)

// Per-variant clue floors applied while carving.
const (
	// asteriskRemovalCap is the share of the nine asterisk cells that may
	// be cleared, keeping at least 40% of them as clues.
	asteriskRemovalCap = 0.6
	// windowClueFloor is the minimum clue count kept in each windoku
	// window.
	windowClueFloor = 3
)

// carve removes cells from a solved grid in shuffled order until the
// difficulty target is reached, skipping removals that a variant guard
// forbids.
func carve(grid *types.Grid, difficulty types.Difficulty, rng *rand.Rand) {
	fraction, err := difficulty.RemovalFraction()
	if err != nil {
		fraction = 0.4
	}
	target := int(float64(grid.Size*grid.Size) * fraction)

	guard := guardFor(grid)
	removed := 0
	for _, pos := range rng.Perm(grid.Size * grid.Size) {
		if removed >= target {
			break
		}
		if !guard.canRemove(pos) {
			continue
		}
		guard.removed(pos)
		grid.Puzzle[pos/grid.Size][pos%grid.Size] = 0
		removed++
	}

	guard.restore(grid)
}

// removalGuard tracks a variant's clue floors during carving.
type removalGuard interface {
	canRemove(pos int) bool
	removed(pos int)
	// restore runs after the removal pass and may re-insert clues.
	restore(grid *types.Grid)
}

func guardFor(grid *types.Grid) removalGuard {
	switch grid.Variant {
	case types.Jigsaw:
		return newRegionGuard(grid, maxInt(1, grid.Size/3))
	case types.EvenOdd:
		return newRegionGuard(grid, maxInt(2, grid.Size/4))
	case types.Asterisk:
		return &asteriskGuard{
			grid: grid,
			cap:  int(float64(len(grid.AsteriskCells)) * asteriskRemovalCap),
		}
	case types.Windoku:
		return &windowGuard{grid: grid, left: makeCounts(len(grid.Windows), 9)}
	default:
		return noGuard{}
	}
}

type noGuard struct{}

func (noGuard) canRemove(int) bool { return true }

func (noGuard) removed(int) {}

func (noGuard) restore(*types.Grid) {}

// regionGuard keeps every region at or above a clue floor. Used by jigsaw
// (irregular regions) and even-odd (geometric boxes).
type regionGuard struct {
	grid  *types.Grid
	floor int
	left  []int
}

func newRegionGuard(grid *types.Grid, floor int) *regionGuard {
	return &regionGuard{
		grid:  grid,
		floor: floor,
		left:  makeCounts(len(grid.Regions), grid.Size),
	}
}

func (rg *regionGuard) canRemove(pos int) bool {
	idx := rg.grid.RegionIndex(pos)
	return idx >= 0 && rg.left[idx]-1 >= rg.floor
}

func (rg *regionGuard) removed(pos int) {
	rg.left[rg.grid.RegionIndex(pos)]--
}

// restore re-inserts one clue into any region carved down to zero. The
// floor makes that unreachable in the main pass; this is the safety net
// for floors of zero.
func (rg *regionGuard) restore(grid *types.Grid) {
	for i, n := range rg.left {
		if n > 0 {
			continue
		}
		cell := grid.Regions[i][0]
		r, c := cell/grid.Size, cell%grid.Size
		grid.Puzzle[r][c] = grid.Solution[r][c]
		rg.left[i]++
	}
}

// asteriskGuard caps how many of the nine asterisk cells may be cleared.
type asteriskGuard struct {
	grid    *types.Grid
	cap     int
	cleared int
}

func (ag *asteriskGuard) canRemove(pos int) bool {
	if !ag.isAsterisk(pos) {
		return true
	}
	return ag.cleared < ag.cap
}

func (ag *asteriskGuard) removed(pos int) {
	if ag.isAsterisk(pos) {
		ag.cleared++
	}
}

func (ag *asteriskGuard) restore(*types.Grid) {}

func (ag *asteriskGuard) isAsterisk(pos int) bool {
	for _, cell := range ag.grid.AsteriskCells {
		if cell == pos {
			return true
		}
	}
	return false
}

// windowGuard keeps every windoku window at or above windowClueFloor.
type windowGuard struct {
	grid *types.Grid
	left []int
}

func (wg *windowGuard) canRemove(pos int) bool {
	for i, window := range wg.grid.Windows {
		if contains(window, pos) && wg.left[i]-1 < windowClueFloor {
			return false
		}
	}
	return true
}

func (wg *windowGuard) removed(pos int) {
	for i, window := range wg.grid.Windows {
		if contains(window, pos) {
			wg.left[i]--
		}
	}
}

func (wg *windowGuard) restore(*types.Grid) {}

func contains(cells []int, pos int) bool {
	for _, c := range cells {
		if c == pos {
			return true
		}
	}
	return false
}

func makeCounts(n, v int) []int {
	counts := make([]int, n)
	for i := range counts {
		counts[i] = v
	}
	return counts
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
