// Package generator produces solved variant grids by randomized
// backtracking and carves them into puzzles.
package generator

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"sudoku_variants_go/internal/types"
	"sudoku_variants_go/internal/variant"
)

// ErrGenerationFailed is returned when the backtracking fill cannot
// complete a board within the retry and time budget.
var ErrGenerationFailed = fmt.Errorf("failed to generate a complete board")

// Generator builds puzzles for one variant/size combination.
type Generator struct {
	plugin     variant.Plugin
	size       int
	difficulty types.Difficulty
	rng        *rand.Rand
	maxTime    time.Duration
}

// New validates the variant/size combination and returns a generator.
func New(v types.Variant, size int) (*Generator, error) {
	plugin, err := variant.Lookup(v)
	if err != nil {
		return nil, err
	}
	if _, _, err := types.BoxDimensions(size); err != nil {
		return nil, err
	}
	if !variant.Supports(plugin, size) {
		return nil, fmt.Errorf("%w: variant %q does not support size %d",
			types.ErrUnsupportedSize, v, size)
	}

	return &Generator{
		plugin:     plugin,
		size:       size,
		difficulty: types.Easy,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		maxTime:    5 * time.Second,
	}, nil
}

// SetDifficulty selects the carving level.
func (g *Generator) SetDifficulty(d types.Difficulty) error {
	if _, err := d.RemovalFraction(); err != nil {
		return err
	}
	g.difficulty = d
	return nil
}

// SetRand replaces the random source, making generation reproducible.
func (g *Generator) SetRand(rng *rand.Rand) {
	if rng != nil {
		g.rng = rng
	}
}

// Generate produces a solved grid and carves it into a puzzle.
func (g *Generator) Generate() (*types.Grid, error) {
	grid, err := g.GenerateSolved()
	if err != nil {
		return nil, err
	}
	carve(grid, g.difficulty, g.rng)
	return grid, nil
}

// GenerateSolved produces a fully solved grid for the variant. Variants
// whose constraints can stall the solver retry from an empty board up to
// their budget; if every attempt fails the classic fill is used instead
// and the variant's rule may be left unsatisfied.
func (g *Generator) GenerateSolved() (*types.Grid, error) {
	maxAttempts := g.plugin.MaxAttempts()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		grid, err := g.setup()
		if err != nil {
			return nil, err
		}

		if g.solve(grid, g.plugin.ExtraValid, time.Now()) {
			g.finish(grid)
			return grid, nil
		}
		slog.Debug("backtracking attempt failed",
			"variant", grid.Variant, "size", g.size,
			"attempt", attempt, "maxAttempts", maxAttempts)
	}

	// Degrade to the unconstrained classic fill rather than failing hard.
	grid, err := g.setup()
	if err != nil {
		return nil, err
	}
	if !g.solve(grid, nil, time.Now()) {
		return nil, fmt.Errorf("%w: variant %q size %d", ErrGenerationFailed,
			grid.Variant, g.size)
	}
	slog.Warn("falling back to classic fill; variant rule may be unsatisfied",
		"variant", grid.Variant, "size", g.size, "attempts", maxAttempts)
	g.finish(grid)
	return grid, nil
}

func (g *Generator) setup() (*types.Grid, error) {
	grid, err := types.NewGrid(g.size, g.plugin.Info().Type)
	if err != nil {
		return nil, err
	}
	grid.Difficulty = g.difficulty
	if err := g.plugin.Prepare(grid, g.rng); err != nil {
		return nil, err
	}
	return grid, nil
}

// finish copies the fill into Solution and derives solution-dependent
// auxiliary data.
func (g *Generator) finish(grid *types.Grid) {
	grid.Solution = types.CopyBoard(grid.Puzzle)
	g.plugin.Finalize(grid, g.rng)
}

type extraRule func(g *types.Grid, board [][]int, row, col, val int) bool

// solve fills grid.Puzzle by depth-first backtracking with MRV cell
// selection and shuffled candidates.
func (g *Generator) solve(grid *types.Grid, extra extraRule, start time.Time) bool {
	if time.Since(start) > g.maxTime {
		return false
	}

	row, col, ok := g.findEmptyPositionWithMRV(grid, extra)
	if !ok {
		return true
	}

	for _, val := range g.shuffledValues() {
		if !g.placementValid(grid, extra, row, col, val) {
			continue
		}
		grid.Puzzle[row][col] = val
		if g.solve(grid, extra, start) {
			return true
		}
		grid.Puzzle[row][col] = 0
	}

	return false
}

func (g *Generator) placementValid(grid *types.Grid, extra extraRule, row, col, val int) bool {
	if !variant.BaseValid(grid, grid.Puzzle, row, col, val) {
		return false
	}
	if extra != nil && !extra(grid, grid.Puzzle, row, col, val) {
		return false
	}
	return true
}

// findEmptyPositionWithMRV returns the empty cell with the fewest legal
// candidates, or ok=false when the board is full.
func (g *Generator) findEmptyPositionWithMRV(grid *types.Grid, extra extraRule) (row, col int, ok bool) {
	minCandidates := g.size + 1

	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if grid.Puzzle[r][c] != 0 {
				continue
			}
			count := 0
			for val := 1; val <= g.size; val++ {
				if g.placementValid(grid, extra, r, c, val) {
					count++
				}
			}
			if count < minCandidates {
				minCandidates = count
				row, col, ok = r, c, true
			}
		}
	}

	return row, col, ok
}

func (g *Generator) shuffledValues() []int {
	vals := make([]int, g.size)
	for i := range vals {
		vals[i] = i + 1
	}
	g.rng.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	return vals
}
