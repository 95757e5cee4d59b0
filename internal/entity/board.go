package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 6
)

var ErrInvalidBoardSize = errors.New("invalid board size")

// Coordinate addresses a cell by row and column, both zero-based.
type Coordinate struct {
	Row int
	Col int
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a square grid of marks. Its size never changes after NewBoard.
type Board struct {
	cells [][]Mark
}

// NewBoard returns a size x size board with every cell Empty.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	cells := make([][]Mark, size)
	for i := range cells {
		row := make([]Mark, size)
		for j := range row {
			row[j] = Empty
		}
		cells[i] = row
	}

	return &Board{cells: cells}, nil
}

func (that *Board) Size() int {
	return len(that.cells)
}

func (that *Board) At(coord Coordinate) Mark {
	return that.cells[coord.Row][coord.Col]
}

// Update writes mark into the cell, overwriting whatever was there.
// It does not validate coord; an out-of-range coordinate panics.
func (that *Board) Update(mark Mark, coord Coordinate) {
	that.cells[coord.Row][coord.Col] = mark
}

func (that *Board) Contains(coord Coordinate) bool {
	size := that.Size()
	return coord.Row >= 0 && coord.Row < size && coord.Col >= 0 && coord.Col < size
}

// Check reports whether a mark may be placed on coord.
func (that *Board) Check(coord Coordinate) error {
	if !that.Contains(coord) {
		return fmt.Errorf("%w: %s on a %dx%d board", apperror.ErrOutOfRange, coord, that.Size(), that.Size())
	}

	if that.At(coord) != Empty {
		return fmt.Errorf("%w: %s holds %s", apperror.ErrCellOccupied, coord, that.At(coord))
	}

	return nil
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the grid, row by row.
func (that *Board) Rows() [][]Mark {
	rows := make([][]Mark, len(that.cells))
	for i, row := range that.cells {
		rows[i] = append([]Mark(nil), row...)
	}
	return rows
}
