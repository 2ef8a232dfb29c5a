package variant

import (
	"math/rand"

	"sudoku_variants_go/internal/types"
)

// asteriskCells are the nine fixed special cells of a 9×9 asterisk
// sudoku, as flat indices (center plus a ring around it).
var asteriskCells = []int{
	1*9 + 4,
	2*9 + 2, 2*9 + 6,
	4*9 + 1, 4*9 + 4, 4*9 + 7,
	6*9 + 2, 6*9 + 6,
	7*9 + 4,
}

type asterisk struct{ base }

func (asterisk) Info() Info {
	return Info{
		Type:        types.Asterisk,
		Name:        "Asterisk",
		Description: "Classic rules plus nine fixed star cells that contain every number exactly once.",
		Sizes:       []int{9},
	}
}

func (asterisk) Prepare(g *types.Grid, _ *rand.Rand) error {
	g.AsteriskCells = asteriskCells
	return nil
}

func (asterisk) ExtraValid(g *types.Grid, board [][]int, row, col, val int) bool {
	pos := row*g.Size + col
	member := false
	for _, cell := range g.AsteriskCells {
		if cell == pos {
			member = true
			break
		}
	}
	if !member {
		return true
	}

	for _, cell := range g.AsteriskCells {
		if cell == pos {
			continue
		}
		if board[cell/g.Size][cell%g.Size] == val {
			return false
		}
	}
	return true
}

func (asterisk) MaxAttempts() int { return 25 }
