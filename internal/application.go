package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - plays the configured self-play matches and logs the tally.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	specs, err := usecase.NewMatchSpecs(conf.Board.Size, conf.Board.WinLength, conf.SelfPlay.Openings, conf.Engine.UseAlphaBeta())
	if err != nil {
		return fmt.Errorf("failed to build matches: %w", err)
	}

	log.Info("Starting self-play",
		"size", conf.Board.Size,
		"win_length", conf.Board.WinLength,
		"search", conf.Engine.Search,
		"depth", service.DepthLimit(conf.Board.Size),
		"matches", len(specs),
		"workers", conf.SelfPlay.Workers,
	)

	runner := usecase.NewMatchRunner(logger, service.NewBotService(logger))

	results, err := runner.PlayAll(ctx, specs, conf.SelfPlay.Workers)
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	tally := usecase.Tally(results)
	log.Info("Self-play finished",
		"x_wins", tally[entity.PlayerX],
		"o_wins", tally[entity.PlayerO],
		"draws", tally[entity.PlayerTie],
	)

	return nil
}

// RunCompare - searches one position with and without pruning.
func RunCompare(logger *slog.Logger, conf *config.Config, moves string) (usecase.Analysis, error) {
	log := logger.With("component", "app")

	opening, err := entity.ParseMoves(moves)
	if err != nil {
		return usecase.Analysis{}, fmt.Errorf("failed to parse moves: %w", err)
	}

	game, err := entity.NewGame(conf.Board.Size, conf.Board.WinLength)
	if err != nil {
		return usecase.Analysis{}, fmt.Errorf("failed to create game: %w", err)
	}

	for i, move := range opening {
		if err = game.MakeTurn(move); err != nil {
			return usecase.Analysis{}, fmt.Errorf("move %d (%s): %w", i, move, err)
		}

		if game.IsTerminal() && i < len(opening)-1 {
			return usecase.Analysis{}, fmt.Errorf("move %d (%s): %w", i+1, opening[i+1], apperror.ErrGameFinished)
		}
	}

	runner := usecase.NewMatchRunner(logger, service.NewBotService(logger))
	analysis := runner.Analyze(game)

	log.Info("Position analyzed",
		"turn", analysis.Turn,
		"depth", analysis.Depth,
		"agree", analysis.Agree(),
		"alpha_beta_move", analysis.AlphaBeta.Move.String(),
		"alpha_beta_value", analysis.AlphaBeta.Value,
		"alpha_beta_nodes", analysis.AlphaBeta.Nodes,
		"minimax_move", analysis.Minimax.Move.String(),
		"minimax_value", analysis.Minimax.Value,
		"minimax_nodes", analysis.Minimax.Nodes,
	)

	return analysis, nil
}
