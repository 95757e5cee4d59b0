package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MovePolicy decides what happens to moves on occupied cells.
type MovePolicy string

const (
	// PolicyStrict rejects out-of-range and occupied moves.
	PolicyStrict MovePolicy = "strict"
	// PolicyPermissive overwrites occupied cells. Out-of-range moves are still rejected.
	PolicyPermissive MovePolicy = "permissive"
)

type GamePlayService interface {
	NewGame(size int) (*entity.Game, error)
	MakeTurn(game *entity.Game, coord entity.Coordinate) (entity.Move, error)
	HasWon(game *entity.Game, player entity.Mark) bool
}

type gamePlayService struct {
	logger *slog.Logger

	referee Referee
	policy  MovePolicy
}

func NewGamePlayService(logger *slog.Logger, referee Referee, policy MovePolicy) GamePlayService {
	return &gamePlayService{
		logger:  logger.With("component", "gameplay"),
		referee: referee,
		policy:  policy,
	}
}

func (that *gamePlayService) NewGame(size int) (*entity.Game, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	game := entity.NewGame(uuid.New().String(), board)
	that.logger.Info("game created", "gameID", game.ID, "size", size, "policy", that.policy)

	return game, nil
}

func (that *gamePlayService) MakeTurn(game *entity.Game, coord entity.Coordinate) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID, "player", game.Turn)

	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	if err := that.checkMove(game.Board, coord); err != nil {
		log.Debug("move rejected", "coord", coord.String(), "error", err)
		return entity.Move{}, fmt.Errorf("failed to make turn: %w", err)
	}

	move := game.Place(coord)

	switch {
	case that.referee.HasWon(game.Board, move.Player):
		game.Win(move.Player)
		log.Info("game won", "turn", move.Turn)
	case game.Board.IsFull():
		game.Tie()
		log.Info("game drawn", "turn", move.Turn)
	default:
		game.PassTurn()
	}

	return move, nil
}

func (that *gamePlayService) HasWon(game *entity.Game, player entity.Mark) bool {
	return that.referee.HasWon(game.Board, player)
}

func (that *gamePlayService) checkMove(board *entity.Board, coord entity.Coordinate) error {
	err := board.Check(coord)
	if that.policy == PolicyPermissive && errors.Is(err, apperror.ErrCellOccupied) {
		that.logger.Debug("overwriting occupied cell", "coord", coord.String(), "previous", board.At(coord))
		return nil
	}

	return err
}
