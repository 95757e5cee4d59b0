package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID     string
	Board  *Board
	Turn   Mark
	Winner Mark
	Status string
	Moves  int
}

// NewGame starts a game on board with PlayerX to move.
func NewGame(id string, board *Board) *Game {
	return &Game{
		ID:     id,
		Board:  board,
		Turn:   PlayerX,
		Winner: Empty,
		Status: StatusInProgress,
	}
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsInProgress():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Place puts the current player's mark on coord and records the move.
// Validation is the caller's job.
func (that *Game) Place(coord Coordinate) Move {
	that.Moves++
	that.Board.Update(that.Turn, coord)

	return Move{Player: that.Turn, Coord: coord, Turn: that.Moves}
}

func (that *Game) Win(player Mark) {
	that.Winner = player
	that.Status = StatusWon
}

func (that *Game) Tie() {
	that.Winner = Empty
	that.Status = StatusDraw
}

func (that *Game) PassTurn() {
	that.Turn = that.Turn.Opponent()
}
