// Package visualizer prints grids to the terminal for the CLI.
package visualizer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"sudoku_variants_go/internal/types"
)

// Visualizer handles grid visualization.
type Visualizer struct {
	grid *types.Grid
	out  io.Writer
}

func NewVisualizer(grid *types.Grid) *Visualizer {
	return &Visualizer{grid: grid, out: os.Stdout}
}

// SetOutput redirects the printer, mainly for tests.
func (v *Visualizer) SetOutput(w io.Writer) {
	if w != nil {
		v.out = w
	}
}

// Print renders the puzzle. Jigsaw grids color cells by region; even-odd
// grids mark shaded cells; consecutive grids draw a bar between marked
// neighbors; other variants draw box borders.
func (v *Visualizer) Print() {
	if v.grid.Variant == types.Jigsaw {
		v.printRegions()
		return
	}
	v.printBoxes()
}

func (v *Visualizer) printBoxes() {
	size := v.grid.Size
	cellWidth := v.cellWidth()

	v.printHorizontalBorder(size, cellWidth)
	for i := 0; i < size; i++ {
		fmt.Fprint(v.out, "│ ")
		for j := 0; j < size; j++ {
			fmt.Fprint(v.out, v.pad(v.cellText(i, j)))
			fmt.Fprint(v.out, v.hSeparator(i, j))
			if (j+1)%v.grid.BoxWidth == 0 && j < size-1 {
				fmt.Fprint(v.out, "│ ")
			}
		}
		fmt.Fprintln(v.out, "│")
		if v.grid.VMarks != nil && i < size-1 {
			v.printVerticalMarks(i)
		}
		if (i+1)%v.grid.BoxHeight == 0 && i < size-1 {
			v.printHorizontalBorder(size, cellWidth)
		}
	}
	v.printHorizontalBorder(size, cellWidth)
}

// hSeparator is the gap printed after cell (row, col): a bar when a
// consecutive mark joins it to its right neighbor.
func (v *Visualizer) hSeparator(row, col int) string {
	if v.grid.HMarks != nil && col < v.grid.Size-1 && v.grid.HMarks[row][col] {
		return "•"
	}
	return " "
}

// printVerticalMarks draws the line between row and row+1, carrying a bar
// under every cell joined to its lower neighbor by a consecutive mark.
func (v *Visualizer) printVerticalMarks(row int) {
	size := v.grid.Size
	fmt.Fprint(v.out, "│ ")
	for j := 0; j < size; j++ {
		mark := ""
		if v.grid.VMarks[row][j] {
			mark = "•"
		}
		fmt.Fprint(v.out, v.pad(mark), " ")
		if (j+1)%v.grid.BoxWidth == 0 && j < size-1 {
			fmt.Fprint(v.out, "│ ")
		}
	}
	fmt.Fprintln(v.out, "│")
}

func (v *Visualizer) printHorizontalBorder(size, cellWidth int) {
	fmt.Fprint(v.out, "├")
	for i := 0; i < size; i++ {
		fmt.Fprint(v.out, strings.Repeat("─", cellWidth+1))
		if (i+1)%v.grid.BoxWidth == 0 && i < size-1 {
			fmt.Fprint(v.out, "┼")
		}
	}
	fmt.Fprintln(v.out, "┤")
}

func (v *Visualizer) printRegions() {
	size := v.grid.Size
	cellWidth := v.cellWidth()

	// ANSI background colors, one per region.
	colors := []string{
		"\033[41m", "\033[42m", "\033[43m", "\033[44m", "\033[45m",
		"\033[46m", "\033[47m", "\033[100m", "\033[101m",
	}
	reset := "\033[0m"

	borderWidth := size*(cellWidth+1) + 1
	fmt.Fprintln(v.out, "┌"+strings.Repeat("─", borderWidth)+"┐")
	for i := 0; i < size; i++ {
		fmt.Fprint(v.out, "│ ")
		for j := 0; j < size; j++ {
			region := v.grid.RegionIndex(i*size + j)
			color := colors[region%len(colors)]
			fmt.Fprintf(v.out, "%s%s%s ", color, v.pad(v.cellText(i, j)), reset)
		}
		fmt.Fprintln(v.out, "│")
	}
	fmt.Fprintln(v.out, "└"+strings.Repeat("─", borderWidth)+"┘")
}

// cellText renders one cell: its symbol, "." when empty, with an even-odd
// shading suffix when a mask is present.
func (v *Visualizer) cellText(row, col int) string {
	text := v.grid.SymbolFor(v.grid.Puzzle[row][col])
	if text == "" {
		text = "."
	}
	if v.grid.EvenMask != nil && v.grid.EvenMask[row][col] {
		text += "*"
	}
	return text
}

// pad right-pads to the cell width counting runes, not bytes, so
// multi-byte symbols keep the borders aligned.
func (v *Visualizer) pad(s string) string {
	if n := v.cellWidth() - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func (v *Visualizer) cellWidth() int {
	w := len(fmt.Sprint(v.grid.Size))
	if v.grid.EvenMask != nil {
		w++
	}
	return w
}
