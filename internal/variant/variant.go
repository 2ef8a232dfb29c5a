// Package variant implements the constraint plugins that layer each
// Sudoku rule set on top of the shared row/column/region rule.
package variant

import (
	"fmt"
	"math/rand"
	"sort"

	"sudoku_variants_go/internal/types"
)

// Info describes a variant for the selection layer.
type Info struct {
	Type        types.Variant `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Sizes       []int         `json:"sizes"`
}

// Plugin is the capability a variant adds to the shared engine.
type Plugin interface {
	Info() Info

	// Prepare attaches the variant's auxiliary data (regions, windows,
	// asterisk cells, symbol table) to the grid before solving.
	Prepare(g *types.Grid, rng *rand.Rand) error

	// ExtraValid reports whether placing val at (row, col) on board keeps
	// the variant's extra rule satisfied. The shared row/column/region
	// rule is checked separately by BaseValid.
	ExtraValid(g *types.Grid, board [][]int, row, col, val int) bool

	// Finalize derives auxiliary data that depends on the finished
	// solution (consecutive marks, even-odd shading).
	Finalize(g *types.Grid, rng *rand.Rand)

	// MaxAttempts is the retry budget for the backtracking fill; 1 for
	// variants whose constraints never stall the solver.
	MaxAttempts() int
}

// base provides the no-op defaults shared by most plugins.
type base struct{}

func (base) Prepare(*types.Grid, *rand.Rand) error { return nil }

func (base) ExtraValid(*types.Grid, [][]int, int, int, int) bool { return true }

func (base) Finalize(*types.Grid, *rand.Rand) {}

func (base) MaxAttempts() int { return 1 }

// ErrUnknownVariant is returned when a variant id is not registered.
var ErrUnknownVariant = fmt.Errorf("unknown variant")

var registry = map[types.Variant]Plugin{
	types.Classic:      classic{},
	types.Diagonal:     diagonal{},
	types.Alphabet:     alphabet{},
	types.ThaiAlphabet: thaiAlphabet{},
	types.EvenOdd:      evenOdd{},
	types.Consecutive:  consecutive{},
	types.Jigsaw:       jigsaw{},
	types.Asterisk:     asterisk{},
	types.Windoku:      windoku{},
}

// Lookup resolves a variant id to its plugin.
func Lookup(v types.Variant) (Plugin, error) {
	p, ok := registry[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return p, nil
}

// All returns the registered variants sorted by id, for the selection UI.
func All() []Info {
	infos := make([]Info, 0, len(registry))
	for _, p := range registry {
		infos = append(infos, p.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Type < infos[j].Type })
	return infos
}

// Supports reports whether the plugin allows the given board size.
func Supports(p Plugin, size int) bool {
	for _, s := range p.Info().Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// BaseValid checks the shared rule: val must not occur elsewhere in the
// same row, column or region. The cell's own current value never
// conflicts with itself.
func BaseValid(g *types.Grid, board [][]int, row, col, val int) bool {
	size := g.Size

	for x := 0; x < size; x++ {
		if board[row][x] == val && x != col {
			return false
		}
	}

	for x := 0; x < size; x++ {
		if board[x][col] == val && x != row {
			return false
		}
	}

	pos := row*size + col
	regionIdx := g.RegionIndex(pos)
	if regionIdx < 0 {
		return false
	}
	for _, cell := range g.Regions[regionIdx] {
		r, c := cell/size, cell%size
		if board[r][c] == val && cell != pos {
			return false
		}
	}

	return true
}
