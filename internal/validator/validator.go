// Package validator checks boards against a grid's variant rules. The
// board argument is the caller-owned play state; g supplies the variant
// and its auxiliary data.
package validator

import (
	"sudoku_variants_go/internal/types"
	"sudoku_variants_go/internal/variant"
)

// IsValidMove reports whether val can be placed at (row, col). Out of
// range positions or candidate values return false rather than an error.
func IsValidMove(g *types.Grid, board [][]int, row, col, val int) bool {
	if row < 0 || row >= g.Size || col < 0 || col >= g.Size {
		return false
	}
	if val < 1 || val > g.Size {
		return false
	}

	plugin, err := variant.Lookup(g.Variant)
	if err != nil {
		return false
	}
	return variant.BaseValid(g, board, row, col, val) &&
		plugin.ExtraValid(g, board, row, col, val)
}

// IsBoardComplete reports whether every cell is filled.
func IsBoardComplete(board [][]int) bool {
	for _, row := range board {
		for _, v := range row {
			if v == 0 {
				return false
			}
		}
	}
	return true
}

// ValidateBoard checks every filled cell by clearing it and re-validating
// its value as a fresh placement, so user-introduced conflicts surface
// through the same rule path as new moves.
func ValidateBoard(g *types.Grid, board [][]int) bool {
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			val := board[r][c]
			if val == 0 {
				continue
			}
			board[r][c] = 0
			ok := IsValidMove(g, board, r, c, val)
			board[r][c] = val
			if !ok {
				return false
			}
		}
	}
	return true
}

// IsBoardSolved reports whether the board is complete and conflict-free.
func IsBoardSolved(g *types.Grid, board [][]int) bool {
	return IsBoardComplete(board) && ValidateBoard(g, board)
}
