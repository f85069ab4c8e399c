package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Board is the fixed 4x4 grid of cell values, stored as an arena indexed
// by row*BoardSize+col. A value is either EmptyCell or a power of two >= 2.
type Board struct {
	cells [CellCount]int
}

// NewBoard creates an empty board
func NewBoard() Board {
	return Board{}
}

// NewBoardFromRows builds a board from row-major values, rejecting illegal tiles
func NewBoardFromRows(rows [BoardSize][BoardSize]int) (Board, error) {
	var b Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			v := rows[r][c]
			if !IsValidValue(v) {
				return Board{}, fmt.Errorf("invalid tile value %d at (%d,%d)", v, r, c)
			}
			b.cells[index(r, c)] = v
		}
	}
	return b, nil
}

// IsValidValue reports whether v may be stored in a cell
func IsValidValue(v int) bool {
	return v == EmptyCell || (v >= 2 && v&(v-1) == 0)
}

// index panics on coordinates outside the board; callers never pass user input here
func index(row, col int) int {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		panic(fmt.Sprintf("engine: cell (%d,%d) outside %dx%d board", row, col, BoardSize, BoardSize))
	}
	return row*BoardSize + col
}

func positionOf(i int) Position {
	return Position{Row: i / BoardSize, Col: i % BoardSize}
}

// CellValue returns the value at (row, col)
func (b Board) CellValue(row, col int) int {
	return b.cells[index(row, col)]
}

// Set stores value at (row, col)
func (b *Board) Set(row, col, value int) {
	if !IsValidValue(value) {
		panic(fmt.Sprintf("engine: invalid tile value %d", value))
	}
	b.cells[index(row, col)] = value
}

// Clear empties every cell
func (b *Board) Clear() {
	b.cells = [CellCount]int{}
}

// Score is the sum of every tile on the board
func (b Board) Score() int {
	sum := 0
	for _, v := range b.cells {
		sum += v
	}
	return sum
}

// IsFull reports whether every cell holds a tile
func (b Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (b Board) EmptyCount() int {
	n := 0
	for _, v := range b.cells {
		if v == EmptyCell {
			n++
		}
	}
	return n
}

// EmptyCells returns the positions of all empty cells in row-major order
func (b Board) EmptyCells() []Position {
	empty := make([]Position, 0, CellCount)
	for i, v := range b.cells {
		if v == EmptyCell {
			empty = append(empty, positionOf(i))
		}
	}
	return empty
}

// MaxTile returns the largest value on the board
func (b Board) MaxTile() int {
	max := 0
	for _, v := range b.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// Rows returns a row-major copy of the cell values
func (b Board) Rows() [BoardSize][BoardSize]int {
	var rows [BoardSize][BoardSize]int
	for i, v := range b.cells {
		rows[i/BoardSize][i%BoardSize] = v
	}
	return rows
}

// String renders the board as right-aligned columns with '.' for empty cells
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			v := b.cells[index(r, c)]
			if v == EmptyCell {
				sb.WriteString(fmt.Sprintf("%5s", "."))
			} else {
				sb.WriteString(fmt.Sprintf("%5d", v))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// MarshalJSON encodes the board as a 4x4 array of rows
func (b Board) MarshalJSON() ([]byte, error) {
	rows := b.Rows()
	out := make([][]int, BoardSize)
	for r := range rows {
		out[r] = rows[r][:]
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a 4x4 array of rows and validates every value
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw [][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(raw) != BoardSize {
		return fmt.Errorf("board: expected %d rows, got %d", BoardSize, len(raw))
	}

	var rows [BoardSize][BoardSize]int
	for r, row := range raw {
		if len(row) != BoardSize {
			return fmt.Errorf("board: row %d must have %d cells, got %d", r, BoardSize, len(row))
		}
		copy(rows[r][:], row)
	}

	decoded, err := NewBoardFromRows(rows)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	*b = decoded
	return nil
}
