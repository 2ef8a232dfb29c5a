package visualizer

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku_variants_go/internal/types"
)

func render(t *testing.T, g *types.Grid) string {
	t.Helper()
	var buf bytes.Buffer
	v := NewVisualizer(g)
	v.SetOutput(&buf)
	v.Print()
	return buf.String()
}

func TestPrintConsecutiveMarks(t *testing.T) {
	g, err := types.NewGrid(4, types.Consecutive)
	require.NoError(t, err)
	g.Puzzle[0] = []int{1, 2, 3, 4}

	g.HMarks = make([][]bool, 4)
	for i := range g.HMarks {
		g.HMarks[i] = make([]bool, 3)
	}
	g.VMarks = make([][]bool, 3)
	for i := range g.VMarks {
		g.VMarks[i] = make([]bool, 4)
	}
	g.HMarks[0][0] = true
	g.VMarks[0][2] = true

	out := render(t, g)

	// The horizontal mark sits between the joined cells; the vertical mark
	// gets its own line between the rows.
	assert.Contains(t, out, "1•2")
	assert.Equal(t, 2, strings.Count(out, "•"))
}

func TestPrintWithoutMarksHasNoBars(t *testing.T) {
	g, err := types.NewGrid(4, types.Classic)
	require.NoError(t, err)
	g.Puzzle[0] = []int{1, 2, 3, 4}

	out := render(t, g)
	assert.NotContains(t, out, "•")
}

func TestPrintEvenOddShadingSuffix(t *testing.T) {
	g, err := types.NewGrid(4, types.EvenOdd)
	require.NoError(t, err)
	g.Puzzle[0][0] = 2
	g.EvenMask = make([][]bool, 4)
	for i := range g.EvenMask {
		g.EvenMask[i] = make([]bool, 4)
	}
	g.EvenMask[0][0] = true

	out := render(t, g)
	assert.Contains(t, out, "2*")
}

func TestPrintThaiSymbolsKeepAlignment(t *testing.T) {
	g, err := types.NewGrid(4, types.ThaiAlphabet)
	require.NoError(t, err)
	g.Symbols = []string{"ก", "ข", "ค", "ง"}
	g.Puzzle[0] = []int{1, 2, 3, 4}
	// A shading mask widens cells to two columns, where byte-based
	// padding used to misalign the multi-byte symbols.
	g.EvenMask = make([][]bool, 4)
	for i := range g.EvenMask {
		g.EvenMask[i] = make([]bool, 4)
	}
	g.EvenMask[0][1] = true

	out := render(t, g)

	var width int
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "│") {
			continue
		}
		n := utf8.RuneCountInString(line)
		if width == 0 {
			width = n
		}
		assert.Equal(t, width, n, "misaligned row: %q", line)
	}
	require.NotZero(t, width)
}
