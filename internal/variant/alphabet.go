package variant

import (
	"math/rand"

	"sudoku_variants_go/internal/types"
)

// latinSymbols and thaiSymbols hold nine symbols each; a grid of size N
// uses the first N.
var (
	latinSymbols = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	thaiSymbols  = []string{"ก", "ข", "ค", "ง", "จ", "ฉ", "ช", "ซ", "ฌ"}
)

type alphabet struct{ base }

func (alphabet) Info() Info {
	return Info{
		Type:        types.Alphabet,
		Name:        "Alphabet",
		Description: "Classic rules played with the first N Latin letters instead of numbers.",
		Sizes:       []int{4, 6, 9},
	}
}

func (alphabet) Prepare(g *types.Grid, _ *rand.Rand) error {
	g.Symbols = latinSymbols[:g.Size]
	return nil
}

type thaiAlphabet struct{ base }

func (thaiAlphabet) Info() Info {
	return Info{
		Type:        types.ThaiAlphabet,
		Name:        "Thai Alphabet",
		Description: "Classic rules played with the first N Thai consonants instead of numbers.",
		Sizes:       []int{4, 6, 9},
	}
}

func (thaiAlphabet) Prepare(g *types.Grid, _ *rand.Rand) error {
	g.Symbols = thaiSymbols[:g.Size]
	return nil
}
