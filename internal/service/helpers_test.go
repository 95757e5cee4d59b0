package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// boardFrom builds a board from rows such as "X*O", one character per cell.
func boardFrom(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(len(rows))
	require.NoError(t, err)

	for r, row := range rows {
		require.Len(t, row, len(rows), "row %d is not square", r)
		for c, cell := range row {
			board.Update(entity.Mark(string(cell)), entity.Coordinate{Row: r, Col: c})
		}
	}

	return board
}
