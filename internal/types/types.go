package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Variant identifies a Sudoku rule set.
type Variant string

const (
	Classic      Variant = "classic"
	Diagonal     Variant = "diagonal"
	Alphabet     Variant = "alphabet"
	ThaiAlphabet Variant = "thai-alphabet"
	EvenOdd      Variant = "even-odd"
	Consecutive  Variant = "consecutive"
	Jigsaw       Variant = "jigsaw"
	Asterisk     Variant = "asterisk"
	Windoku      Variant = "windoku"
)

// Difficulty controls how many cells the carver removes.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// RemovalFraction returns the share of cells removed for this difficulty.
func (d Difficulty) RemovalFraction() (float64, error) {
	switch d {
	case Easy:
		return 0.4, nil
	case Medium:
		return 0.5, nil
	case Hard:
		return 0.6, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", d)
	}
}

// ErrUnsupportedSize is returned for board sizes outside {4, 6, 9}.
var ErrUnsupportedSize = fmt.Errorf("unsupported board size")

// BoxDimensions returns the box width and height for a board size.
// 4×4 and 9×9 use square boxes; 6×6 uses 2-row by 3-column boxes.
func BoxDimensions(size int) (width, height int, err error) {
	switch size {
	case 4:
		return 2, 2, nil
	case 6:
		return 3, 2, nil
	case 9:
		return 3, 3, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
}

// BoxOf returns the box-grid coordinates of a cell.
func BoxOf(row, col, size int) (boxRow, boxCol int, err error) {
	w, h, err := BoxDimensions(size)
	if err != nil {
		return 0, 0, err
	}
	return row / h, col / w, nil
}

// Grid holds a puzzle, its solution and all variant data needed to
// validate and render it.
type Grid struct {
	Size       int        `json:"size"`
	BoxWidth   int        `json:"boxWidth"`
	BoxHeight  int        `json:"boxHeight"`
	Variant    Variant    `json:"variant"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Puzzle     [][]int    `json:"grid"`
	Solution   [][]int    `json:"solution"`
	// Regions lists flat cell indices (row*Size+col) per region. For most
	// variants these are the geometric boxes; jigsaw replaces them with an
	// irregular partition.
	Regions [][]int `json:"regions"`

	// EvenMask marks cells that must hold an even value (even-odd only).
	EvenMask [][]bool `json:"evenMask,omitempty"`
	// HMarks[r][c] marks the edge between (r,c) and (r,c+1); VMarks[r][c]
	// the edge between (r,c) and (r+1,c). Consecutive only.
	HMarks [][]bool `json:"hMarks,omitempty"`
	VMarks [][]bool `json:"vMarks,omitempty"`
	// Windows holds the four extra 3×3 regions of windoku as flat indices.
	Windows [][]int `json:"windows,omitempty"`
	// AsteriskCells holds the nine fixed asterisk cells as flat indices.
	AsteriskCells []int `json:"asteriskCells,omitempty"`
	// Symbols maps value v to display symbol Symbols[v-1] for the alphabet
	// variants; empty for numeric variants.
	Symbols []string `json:"symbols,omitempty"`

	regionOf []int // lazy pos → region index cache
}

// NewGrid creates an empty grid for the given variant and size, with the
// geometric box partition attached.
func NewGrid(size int, variant Variant) (*Grid, error) {
	boxWidth, boxHeight, err := BoxDimensions(size)
	if err != nil {
		return nil, err
	}

	puzzle := make([][]int, size)
	solution := make([][]int, size)
	for i := range puzzle {
		puzzle[i] = make([]int, size)
		solution[i] = make([]int, size)
	}

	return &Grid{
		Size:      size,
		BoxWidth:  boxWidth,
		BoxHeight: boxHeight,
		Variant:   variant,
		Puzzle:    puzzle,
		Solution:  solution,
		Regions:   BoxRegions(size, boxWidth, boxHeight),
	}, nil
}

// BoxRegions builds the geometric box partition as flat cell indices.
func BoxRegions(size, boxWidth, boxHeight int) [][]int {
	regions := make([][]int, 0, size)
	for boxRow := 0; boxRow < size/boxHeight; boxRow++ {
		for boxCol := 0; boxCol < size/boxWidth; boxCol++ {
			region := make([]int, 0, size)
			for i := 0; i < boxHeight; i++ {
				for j := 0; j < boxWidth; j++ {
					row := boxRow*boxHeight + i
					col := boxCol*boxWidth + j
					region = append(region, row*size+col)
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// SetRegions replaces the region partition and invalidates the lookup cache.
func (g *Grid) SetRegions(regions [][]int) {
	g.Regions = regions
	g.regionOf = nil
}

// RegionIndex returns the index of the region containing cell pos, or -1.
func (g *Grid) RegionIndex(pos int) int {
	if g.regionOf == nil {
		g.regionOf = make([]int, g.Size*g.Size)
		for i := range g.regionOf {
			g.regionOf[i] = -1
		}
		for i, region := range g.Regions {
			for _, cell := range region {
				if cell >= 0 && cell < len(g.regionOf) {
					g.regionOf[cell] = i
				}
			}
		}
	}
	if pos < 0 || pos >= len(g.regionOf) {
		return -1
	}
	return g.regionOf[pos]
}

// SymbolFor renders a cell value using the variant's symbol table.
// Empty cells render as "".
func (g *Grid) SymbolFor(value int) string {
	if value == 0 {
		return ""
	}
	if len(g.Symbols) >= value {
		return g.Symbols[value-1]
	}
	return fmt.Sprint(value)
}

// ValueOf resolves a display symbol back to a cell value. Numeric grids
// accept "1".."N"; alphabet grids accept their symbol table. Returns
// false for anything outside the grid's alphabet.
func (g *Grid) ValueOf(symbol string) (int, bool) {
	if len(g.Symbols) > 0 {
		for i, s := range g.Symbols {
			if s == symbol {
				return i + 1, true
			}
		}
		return 0, false
	}
	v, err := strconv.Atoi(symbol)
	if err != nil {
		return 0, false
	}
	if v < 1 || v > g.Size {
		return 0, false
	}
	return v, true
}

// ValidateShape checks that a grid's variant data is structurally sound:
// a supported size, cell indices within the board and masks with the
// expected dimensions. Grids arriving over the wire go through this before
// any validation touches them.
func (g *Grid) ValidateShape() error {
	if _, _, err := BoxDimensions(g.Size); err != nil {
		return err
	}
	cells := g.Size * g.Size

	for _, group := range [][][]int{g.Regions, g.Windows, {g.AsteriskCells}} {
		for _, region := range group {
			for _, pos := range region {
				if pos < 0 || pos >= cells {
					return fmt.Errorf("cell index %d out of range", pos)
				}
			}
		}
	}

	if err := maskShape(g.EvenMask, g.Size, g.Size); err != nil {
		return fmt.Errorf("even mask: %w", err)
	}
	if err := maskShape(g.HMarks, g.Size, g.Size-1); err != nil {
		return fmt.Errorf("horizontal marks: %w", err)
	}
	if err := maskShape(g.VMarks, g.Size-1, g.Size); err != nil {
		return fmt.Errorf("vertical marks: %w", err)
	}
	return nil
}

// maskShape checks a rows×cols bool matrix; nil means absent and is fine.
func maskShape(mask [][]bool, rows, cols int) error {
	if mask == nil {
		return nil
	}
	if len(mask) != rows {
		return fmt.Errorf("want %d rows, got %d", rows, len(mask))
	}
	for i, row := range mask {
		if len(row) != cols {
			return fmt.Errorf("row %d: want %d cells, got %d", i, cols, len(row))
		}
	}
	return nil
}

// CopyBoard returns a deep copy of a cell matrix.
func CopyBoard(board [][]int) [][]int {
	out := make([][]int, len(board))
	for i := range board {
		out[i] = make([]int, len(board[i]))
		copy(out[i], board[i])
	}
	return out
}

// ToJSON converts the grid to JSON bytes.
func (g *Grid) ToJSON() ([]byte, error) {
	return json.Marshal(g)
}

// FromJSON creates a Grid from JSON bytes.
func FromJSON(data []byte) (*Grid, error) {
	var grid Grid
	err := json.Unmarshal(data, &grid)
	return &grid, err
}
