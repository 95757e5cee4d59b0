package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func newTestGame(t *testing.T, size int) *Game {
	t.Helper()

	board, err := NewBoard(size)
	require.NoError(t, err)

	return NewGame("123", board)
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := newTestGame(t, 3)

	// Then: PlayerX should move first and the game should be in progress
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, Empty, game.Winner)
	assert.Equal(t, StatusInProgress, game.Status)
	assert.Zero(t, game.Moves)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsWon returns true when game status is won", func(t *testing.T) {
		game := &Game{Status: StatusWon}

		assert.True(t, game.IsWon())
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsInProgress())
	})

	t.Run("IsDraw returns true when game status is draw", func(t *testing.T) {
		game := &Game{Status: StatusDraw}

		assert.True(t, game.IsDraw())
		assert.True(t, game.IsFinished())
	})

	t.Run("IsInProgress returns true when game status is in progress", func(t *testing.T) {
		game := &Game{Status: StatusInProgress}

		assert.True(t, game.IsInProgress())
		assert.False(t, game.IsFinished())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is in progress", func(t *testing.T) {
		game := &Game{Status: StatusInProgress}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is won or drawn", func(t *testing.T) {
		for _, status := range []string{StatusWon, StatusDraw} {
			game := &Game{Status: status}

			assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
		}
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_Place(t *testing.T) {
	// Given: a new game
	game := newTestGame(t, 3)

	// When: PlayerX places a mark and the turn passes
	first := game.Place(Coordinate{Row: 0, Col: 0})
	game.PassTurn()
	second := game.Place(Coordinate{Row: 1, Col: 1})

	// Then: each move is numbered and carries the mover's mark
	assert.Equal(t, Move{Player: PlayerX, Coord: Coordinate{Row: 0, Col: 0}, Turn: 1}, first)
	assert.Equal(t, Move{Player: PlayerO, Coord: Coordinate{Row: 1, Col: 1}, Turn: 2}, second)
	assert.Equal(t, PlayerX, game.Board.At(Coordinate{Row: 0, Col: 0}))
	assert.Equal(t, PlayerO, game.Board.At(Coordinate{Row: 1, Col: 1}))
	assert.Equal(t, 2, game.Moves)
}

func TestGame_PassTurnAlternates(t *testing.T) {
	game := newTestGame(t, 3)

	expected := []Mark{PlayerO, PlayerX, PlayerO, PlayerX}
	for _, mark := range expected {
		game.PassTurn()
		assert.Equal(t, mark, game.Turn)
	}
}

func TestGame_WinAndTie(t *testing.T) {
	t.Run("Win records the winner", func(t *testing.T) {
		game := newTestGame(t, 3)

		game.Win(PlayerO)

		assert.Equal(t, StatusWon, game.Status)
		assert.Equal(t, PlayerO, game.Winner)
	})

	t.Run("Tie leaves no winner", func(t *testing.T) {
		game := newTestGame(t, 3)

		game.Tie()

		assert.Equal(t, StatusDraw, game.Status)
		assert.Equal(t, Empty, game.Winner)
	})
}
