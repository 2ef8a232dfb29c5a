package variant

import "sudoku_variants_go/internal/types"

type classic struct{ base }

func (classic) Info() Info {
	return Info{
		Type:        types.Classic,
		Name:        "Classic",
		Description: "Each row, column and box contains every number exactly once.",
		Sizes:       []int{4, 6, 9},
	}
}
