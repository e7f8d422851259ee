package game

import (
	"fmt"
)

// Empty marks a cell nobody has placed a symbol on.
const Empty rune = 0

// Board is a fixed-size grid of cells. It knows nothing about the rules of play:
// it only stores which symbol, if any, occupies each cell.
type Board struct {
	rows  int
	cols  int
	cells []rune // Row-major, len(cells) == rows*cols
}

// NewBoard returns an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]rune, rows*cols),
	}
}

// NewBoardFromRows builds a board from text rows listed top (highest row index) to bottom,
// the same orientation the board is rendered in. '.' and ' ' are empty cells.
func NewBoardFromRows(lines ...string) *Board {
	if len(lines) == 0 {
		panic("board needs at least one row")
	}
	cols := len([]rune(lines[0]))
	b := NewBoard(len(lines), cols)
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			panic(fmt.Sprintf("row %d has %d columns, expected %d", i, len(runes), cols))
		}
		row := b.rows - 1 - i
		for col, r := range runes {
			if r != '.' && r != ' ' {
				b.Set(row, col, r)
			}
		}
	}
	return b
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.rows && col < b.cols
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("cell (%d, %d) is outside the %dx%d board", row, col, b.rows, b.cols))
	}
	return row*b.cols + col
}

// Get returns the symbol at (row, col) and whether the cell is occupied.
func (b *Board) Get(row, col int) (rune, bool) {
	symbol := b.cells[b.index(row, col)]
	return symbol, symbol != Empty
}

// Set places symbol at (row, col), replacing whatever was there.
func (b *Board) Set(row, col int, symbol rune) {
	if symbol == Empty {
		panic("cannot place the empty symbol")
	}
	b.cells[b.index(row, col)] = symbol
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.cells[b.index(row, col)] == Empty
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for _, symbol := range b.cells {
		if symbol == Empty {
			return false
		}
	}
	return true
}

// Occupied returns the number of occupied cells.
func (b *Board) Occupied() int {
	n := 0
	for _, symbol := range b.cells {
		if symbol != Empty {
			n++
		}
	}
	return n
}

// Counts maps each symbol present on the board to the number of cells it occupies.
// Symbols that were never placed are absent from the map.
func (b *Board) Counts() map[rune]int {
	counts := make(map[rune]int, 2)
	for _, symbol := range b.cells {
		if symbol != Empty {
			counts[symbol]++
		}
	}
	return counts
}

// Copy returns a deep copy of the board. The copy never shares its cell buffer.
func (b *Board) Copy() *Board {
	cells := make([]rune, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}
