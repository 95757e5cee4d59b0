package usecase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GameUseCase interface {
	Play(game *entity.Game) error
}

// MoveReader asks the given player for a coordinate.
type MoveReader interface {
	ReadMove(player entity.Mark) (entity.Coordinate, error)
}

type Presenter interface {
	ShowBoard(board *entity.Board)
	ShowRejected(player entity.Mark, err error)
	ShowWinner(player entity.Mark)
	ShowDraw()
}

type gamePlayService interface {
	MakeTurn(game *entity.Game, coord entity.Coordinate) (entity.Move, error)
	HasWon(game *entity.Game, player entity.Mark) bool
}

type gameUseCase struct {
	logger *slog.Logger

	gamePlayService gamePlayService
	reader          MoveReader
	presenter       Presenter
}

func NewGameUseCase(logger *slog.Logger, gamePlayService gamePlayService, reader MoveReader, presenter Presenter) GameUseCase {
	return &gameUseCase{
		logger:          logger.With("component", "game"),
		gamePlayService: gamePlayService,
		reader:          reader,
		presenter:       presenter,
	}
}

// Play runs the turn loop until someone wins, the board fills up or input ends.
// Rejected moves are reported and the same player is asked again.
func (that *gameUseCase) Play(game *entity.Game) error {
	log := that.logger.With("gameID", game.ID)

	// The first check runs against an empty board and is always false.
	for !that.gamePlayService.HasWon(game, game.Turn) && game.IsInProgress() {
		that.presenter.ShowBoard(game.Board)

		player := game.Turn
		coord, err := that.reader.ReadMove(player)
		if err == nil {
			_, err = that.gamePlayService.MakeTurn(game, coord)
		}

		switch {
		case err == nil:
			log.Debug("move applied", "player", player, "coord", coord.String(), "turn", game.Moves)
		case apperror.IsRecoverable(err):
			log.Debug("move rejected", "player", player, "error", err)
			that.presenter.ShowRejected(player, err)
		case errors.Is(err, io.EOF):
			log.Warn("input closed mid-game", "turn", game.Moves)
			return apperror.ErrInputClosed
		default:
			return fmt.Errorf("failed to play turn %d: %w", game.Moves+1, err)
		}
	}

	if game.IsInProgress() {
		game.Win(game.Turn)
	}

	that.presenter.ShowBoard(game.Board)
	if game.IsDraw() {
		that.presenter.ShowDraw()
	} else {
		that.presenter.ShowWinner(game.Winner)
	}

	log.Info("game over", "status", game.Status, "winner", game.Winner, "moves", game.Moves)

	return nil
}
