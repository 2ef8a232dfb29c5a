package variant

import (
	"math/rand"

	"sudoku_variants_go/internal/types"
)

type windoku struct{ base }

func (windoku) Info() Info {
	return Info{
		Type:        types.Windoku,
		Name:        "Windoku",
		Description: "Classic rules plus four extra 3×3 windows that contain every number exactly once.",
		Sizes:       []int{9},
	}
}

// Prepare attaches the four windows: 3×3 blocks anchored at rows 1 and 5,
// columns 1 and 5.
func (windoku) Prepare(g *types.Grid, _ *rand.Rand) error {
	windows := make([][]int, 0, 4)
	for _, top := range []int{1, 5} {
		for _, left := range []int{1, 5} {
			window := make([]int, 0, 9)
			for r := top; r < top+3; r++ {
				for c := left; c < left+3; c++ {
					window = append(window, r*g.Size+c)
				}
			}
			windows = append(windows, window)
		}
	}
	g.Windows = windows
	return nil
}

func (windoku) ExtraValid(g *types.Grid, board [][]int, row, col, val int) bool {
	pos := row*g.Size + col
	for _, window := range g.Windows {
		member := false
		for _, cell := range window {
			if cell == pos {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		for _, cell := range window {
			if cell == pos {
				continue
			}
			if board[cell/g.Size][cell%g.Size] == val {
				return false
			}
		}
	}
	return true
}

func (windoku) MaxAttempts() int { return 25 }
