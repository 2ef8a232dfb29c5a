package variant

import "sudoku_variants_go/internal/types"

type diagonal struct{ base }

func (diagonal) Info() Info {
	return Info{
		Type:        types.Diagonal,
		Name:        "Diagonal",
		Description: "Classic rules plus both main diagonals contain every number exactly once.",
		Sizes:       []int{4, 6, 9},
	}
}

func (diagonal) ExtraValid(g *types.Grid, board [][]int, row, col, val int) bool {
	size := g.Size

	if row == col {
		for i := 0; i < size; i++ {
			if board[i][i] == val && i != row {
				return false
			}
		}
	}

	if row+col == size-1 {
		for i := 0; i < size; i++ {
			if board[i][size-1-i] == val && i != row {
				return false
			}
		}
	}

	return true
}
