package variant

import (
	"fmt"
	"math/rand"

	"sudoku_variants_go/internal/types"
)

type jigsaw struct{ base }

func (jigsaw) Info() Info {
	return Info{
		Type:        types.Jigsaw,
		Name:        "Jigsaw",
		Description: "Classic row and column rules with irregular regions instead of boxes.",
		Sizes:       []int{6, 9},
	}
}

// Prepare replaces the geometric boxes with a partition drawn uniformly
// from the fixed pattern library.
func (j jigsaw) Prepare(g *types.Grid, rng *rand.Rand) error {
	patterns, ok := jigsawPatterns[g.Size]
	if !ok {
		return fmt.Errorf("no jigsaw patterns for size %d", g.Size)
	}
	pattern := patterns[rng.Intn(len(patterns))]

	regions, err := regionsFromPattern(pattern, g.Size)
	if err != nil {
		return err
	}
	g.SetRegions(regions)
	return nil
}

func (jigsaw) MaxAttempts() int { return 7 }

// regionsFromPattern converts a row-string pattern (one digit label per
// cell) into flat-index regions, checking that every region ends up with
// exactly size cells.
func regionsFromPattern(pattern []string, size int) ([][]int, error) {
	if len(pattern) != size {
		return nil, fmt.Errorf("jigsaw pattern has %d rows, want %d", len(pattern), size)
	}

	regions := make([][]int, size)
	for r, row := range pattern {
		if len(row) != size {
			return nil, fmt.Errorf("jigsaw pattern row %d has %d cells, want %d", r, len(row), size)
		}
		for c := 0; c < size; c++ {
			label := int(row[c] - '0')
			if label < 0 || label >= size {
				return nil, fmt.Errorf("jigsaw pattern label %q out of range at (%d,%d)", row[c], r, c)
			}
			regions[label] = append(regions[label], r*size+c)
		}
	}

	for i, region := range regions {
		if len(region) != size {
			return nil, fmt.Errorf("jigsaw region %d has %d cells, want %d", i, len(region), size)
		}
	}

	return regions, nil
}
