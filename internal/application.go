package application

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - plays a single game on in/out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // board size is not a secret

	size, err := service.ResolveBoardSize(conf.BoardSize, service.NewSizeDistribution(conf.SizeWeights), rng)
	if err != nil {
		return fmt.Errorf("could not choose board size: %w", err)
	}

	printer := console.NewPrinter(out, !conf.NoColor)
	reader := console.NewReader(in, out)

	referee := service.NewReferee(service.DiagonalRule(conf.DiagonalRule))
	gamePlayService := service.NewGamePlayService(logger, referee, service.MovePolicy(conf.MovePolicy))
	gameUseCase := usecase.NewGameUseCase(logger, gamePlayService, reader, printer)

	game, err := gamePlayService.NewGame(size)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	printer.Welcome()
	log.Info("Starting game", "gameID", game.ID, "size", size)

	if err = gameUseCase.Play(game); err != nil {
		return fmt.Errorf("game %s ended early: %w", game.ID, err)
	}

	return nil
}
