// Package grid implements the 2048 transition engine on rectangular boards:
// line merging, moves, legality, tile spawning and the scoring policies.
//
// A Board owns its cells. Every function that explores a hypothetical future
// (Successor, LegalMoves) works on a private clone, so the live board is
// only ever changed by ApplyMove and NewTile.
package grid

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Returned by HighestTile for a board without any tile
const NoTile = 0

// Point is a (row, col) cell coordinate
type Point struct {
	Row, Col int
}

// Board is a height x width grid, 0 is an empty cell, every other cell
// holds a power of two >= 2
type Board struct {
	height int
	width  int
	cells  []int // row-major
}

// Empty board of the given size
func NewBoard(height, width int) (Board, error) {
	if height <= 0 || width <= 0 {
		return Board{}, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidBoardState, height, width)
	}
	return Board{height: height, width: width, cells: make([]int, height*width)}, nil
}

// Builds a board from rows, all rows must share the same width and every
// cell must be 0 or a power of two >= 2
func FromRows(rows [][]int) (Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Board{}, fmt.Errorf("%w: empty rows", ErrInvalidBoardState)
	}

	b, err := NewBoard(len(rows), len(rows[0]))
	if err != nil {
		return Board{}, err
	}

	for r, row := range rows {
		if len(row) != b.width {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoardState, r, len(row), b.width)
		}
		copy(b.cells[r*b.width:], row)
	}

	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Same as FromRows, panics on invalid input. Meant for tests and literals.
func MustFromRows(rows [][]int) Board {
	b, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) Height() int { return b.height }
func (b Board) Width() int  { return b.width }

func (b Board) Get(row, col int) int {
	return b.cells[row*b.width+col]
}

// Set mutates the board in place, it does not validate the value
func (b *Board) Set(row, col, value int) {
	b.cells[row*b.width+col] = value
}

// Copy of the cells as rows
func (b Board) Rows() [][]int {
	rows := make([][]int, b.height)
	for r := range b.height {
		rows[r] = make([]int, b.width)
		copy(rows[r], b.cells[r*b.width:(r+1)*b.width])
	}
	return rows
}

// Independent snapshot, shares no memory with b
func (b Board) Clone() Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return Board{height: b.height, width: b.width, cells: cells}
}

func (b Board) Equal(other Board) bool {
	if b.height != other.height || b.width != other.width {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b Board) EmptyCells() []Point {
	empty := make([]Point, 0, len(b.cells))
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, Point{Row: i / b.width, Col: i % b.width})
		}
	}
	return empty
}

func (b Board) CountEmpty() int {
	n := 0
	for _, v := range b.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

func (b Board) Full() bool {
	return b.CountEmpty() == 0
}

// Maximum cell value, NoTile when the board has no tile
func (b Board) HighestTile() int {
	highest := NoTile
	for _, v := range b.cells {
		highest = max(highest, v)
	}
	return highest
}

func (b Board) SumTiles() int {
	sum := 0
	for _, v := range b.cells {
		sum += v
	}
	return sum
}

// Sum of log2(tile) over non-empty cells
func (b Board) SumLog2Tiles() int {
	sum := 0
	for _, v := range b.cells {
		if v != 0 {
			sum += bits.TrailingZeros(uint(v))
		}
	}
	return sum
}

// Checks dimensions and that every non-zero cell is a power of two >= 2
func (b Board) Validate() error {
	if b.height <= 0 || b.width <= 0 || len(b.cells) != b.height*b.width {
		return fmt.Errorf("%w: dimensions %dx%d with %d cells", ErrInvalidBoardState, b.height, b.width, len(b.cells))
	}
	for i, v := range b.cells {
		if v == 0 {
			continue
		}
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("%w: cell (%d,%d)=%d is not a power of two >= 2",
				ErrInvalidBoardState, i/b.width, i%b.width, v)
		}
	}
	return nil
}

// Tab separated rows, columns padded to the widest value
func (b Board) String() string {
	colWidth := 1
	for _, v := range b.cells {
		colWidth = max(colWidth, len(strconv.Itoa(v)))
	}

	var sb strings.Builder
	for r := range b.height {
		for c := range b.width {
			if c > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%*d", colWidth, b.Get(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
