package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type botService interface {
	BestMove(game *entity.Game, useAlphaBeta bool) service.SearchOutcome
}

// MatchSpec describes one engine-vs-engine game. Opening moves are played
// as given before the engine takes over for both sides.
type MatchSpec struct {
	Size      int               `json:"size"`
	WinLength int               `json:"win_length"`
	Opening   []entity.Position `json:"opening"`
	X         *entity.Player    `json:"x"`
	O         *entity.Player    `json:"o"`
}

func (that MatchSpec) side(mark entity.Mark) *entity.Player {
	if mark == entity.PlayerO {
		return that.O
	}

	return that.X
}

type MatchResult struct {
	Spec   MatchSpec         `json:"spec"`
	Result entity.Mark       `json:"result"`
	Moves  []entity.Position `json:"moves"`
	Nodes  int               `json:"nodes"`
	Board  string            `json:"board"`
}

type MatchRunner struct {
	logger *slog.Logger
	bot    botService
}

func NewMatchRunner(logger *slog.Logger, bot botService) *MatchRunner {
	return &MatchRunner{
		logger: logger.With("component", "match_runner"),
		bot:    bot,
	}
}

// NewMatchSpecs builds one spec per opening, all sides sharing the same
// search mode. No openings means a single game from the empty board.
func NewMatchSpecs(size, winLength int, openings []string, useAlphaBeta bool) ([]MatchSpec, error) {
	if len(openings) == 0 {
		openings = []string{""}
	}

	specs := make([]MatchSpec, 0, len(openings))
	for _, raw := range openings {
		opening, err := entity.ParseMoves(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", apperror.ErrInvalidOpening, raw, err)
		}

		specs = append(specs, MatchSpec{
			Size:      size,
			WinLength: winLength,
			Opening:   opening,
			X:         entity.NewBotPlayer(entity.PlayerX, useAlphaBeta),
			O:         entity.NewBotPlayer(entity.PlayerO, useAlphaBeta),
		})
	}

	return specs, nil
}

// Play runs a single match to the end. The context is checked between
// plies; a search that has started always completes.
func (that *MatchRunner) Play(ctx context.Context, spec MatchSpec) (*MatchResult, error) {
	log := that.logger.With("method", "Play", "opening", entity.FormatMoves(spec.Opening))

	controller, err := tictactoe.NewGameController(that.logger, that.bot, spec.Size, spec.WinLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create game controller: %w", err)
	}

	result := &MatchResult{
		Spec:  spec,
		Moves: make([]entity.Position, 0, spec.Size*spec.Size),
	}

	for i, move := range spec.Opening {
		if err = controller.MakeTurn(move); err != nil {
			return nil, fmt.Errorf("%w: move %d (%s): %w", apperror.ErrInvalidOpening, i, move, err)
		}

		result.Moves = append(result.Moves, move)
	}

	for !controller.IsTerminal() {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("match interrupted after %d moves: %w", len(result.Moves), err)
		}

		player := spec.side(controller.CurrentTurn())
		useAlphaBeta := player == nil || player.UseAlphaBeta

		outcome, turnErr := controller.PlayBotTurn(useAlphaBeta)
		if turnErr != nil {
			return nil, fmt.Errorf("failed to play bot turn: %w", turnErr)
		}

		result.Moves = append(result.Moves, outcome.Move)
		result.Nodes += outcome.Nodes
	}

	result.Result = controller.Result()
	result.Board = controller.Board()

	log.Info("match finished",
		"result", result.Result,
		"moves", entity.FormatMoves(result.Moves),
		"nodes", result.Nodes,
	)

	return result, nil
}

// PlayAll plays independent matches on at most workers goroutines. Results
// keep the order of specs. The first failing match cancels the rest.
func (that *MatchRunner) PlayAll(ctx context.Context, specs []MatchSpec, workers int) ([]*MatchResult, error) {
	results := make([]*MatchResult, len(specs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))

	for i, spec := range specs {
		i, spec := i, spec
		group.Go(func() error {
			result, err := that.Play(groupCtx, spec)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Tally counts results by outcome: X, O and entity.PlayerTie.
func Tally(results []*MatchResult) map[entity.Mark]int {
	return lo.CountValuesBy(results, func(result *MatchResult) entity.Mark {
		return result.Result
	})
}
