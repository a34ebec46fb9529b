package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

type botService interface {
	BestMove(game *entity.Game, useAlphaBeta bool) service.SearchOutcome
}

// GameController is the single owner of one game. Presentation code drives
// it: apply the human move, read the board, ask the bot for a reply.
type GameController struct {
	logger *slog.Logger

	game *entity.Game
	bot  botService
}

func NewGameController(logger *slog.Logger, bot botService, size, winLength int) (*GameController, error) {
	game, err := entity.NewGame(size, winLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &GameController{
		logger: logger.With("component", "game_controller"),
		game:   game,
		bot:    bot,
	}, nil
}

// MakeTurn plays pos for the side to move.
func (that *GameController) MakeTurn(pos entity.Position) error {
	log := that.logger.With("method", "MakeTurn", "position", pos.String())

	if that.game.IsTerminal() {
		log.Warn("move after game end", "result", that.game.DetermineGameResult())
		return apperror.ErrGameFinished
	}

	mark := that.game.CurrentTurn()
	if err := that.game.MakeTurn(pos); err != nil {
		log.Warn("move rejected", "mark", mark, "error", err)
		return fmt.Errorf("invalid turn: %w", err)
	}

	log.Debug("move applied", "mark", mark, "status", that.game.Status())

	return nil
}

// ApplyMove reports whether the move at (row, col) was accepted.
func (that *GameController) ApplyMove(row, col int) bool {
	return that.MakeTurn(entity.Position{Row: row, Col: col}) == nil
}

// BestMove asks the bot for a move in the current position without playing it.
func (that *GameController) BestMove(useAlphaBeta bool) (entity.Position, bool) {
	outcome := that.bot.BestMove(that.game, useAlphaBeta)

	that.logger.Debug("bot evaluated position",
		"method", "BestMove",
		"move", outcome.Move.String(),
		"found", outcome.Found,
		"nodes", outcome.Nodes,
	)

	return outcome.Move, outcome.Found
}

// PlayBotTurn searches the current position and plays the result.
func (that *GameController) PlayBotTurn(useAlphaBeta bool) (service.SearchOutcome, error) {
	if that.game.IsTerminal() {
		return service.SearchOutcome{}, apperror.ErrGameFinished
	}

	outcome := that.bot.BestMove(that.game, useAlphaBeta)
	if !outcome.Found {
		return outcome, apperror.ErrNoAvailableMoves
	}

	if err := that.MakeTurn(outcome.Move); err != nil {
		return outcome, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return outcome, nil
}

func (that *GameController) LegalMoves() []entity.Position {
	return that.game.LegalMoves()
}

func (that *GameController) Winner() entity.Mark {
	return that.game.Winner()
}

func (that *GameController) IsTerminal() bool {
	return that.game.IsTerminal()
}

func (that *GameController) CurrentTurn() entity.Mark {
	return that.game.CurrentTurn()
}

func (that *GameController) Status() string {
	return that.game.Status()
}

// Result is the winner, entity.PlayerTie for a draw, or entity.EmptyCell
// while the game is in progress.
func (that *GameController) Result() entity.Mark {
	return that.game.DetermineGameResult()
}

func (that *GameController) Board() string {
	return that.game.String()
}

// Snapshot returns a copy of the game for read-only use.
func (that *GameController) Snapshot() *entity.Game {
	return that.game.Clone()
}

func (that *GameController) Reset() {
	that.game.Reset()
	that.logger.Debug("game reset", "method", "Reset")
}
