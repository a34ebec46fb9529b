package service

import (
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// BotService picks moves for an engine-controlled side.
type BotService interface {
	BestMove(game *entity.Game, useAlphaBeta bool) SearchOutcome
}

// SearchOutcome is the result of a BestMove call. Found is false when the
// board had no empty cell. Nodes counts search invocations and is only
// meant for logging and benchmarks.
type SearchOutcome struct {
	Move  entity.Position `json:"move"`
	Found bool            `json:"found"`
	Value int             `json:"value"`
	Nodes int             `json:"nodes"`
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// DepthLimit returns how many plies below each root move are searched.
// 3x3 is searched to the end of the game; bigger boards get a fixed,
// shallower cap regardless of how many cells are still empty.
func DepthLimit(size int) int {
	switch size {
	case 3:
		return 9
	case 4:
		return 5
	case 5:
		return 4
	default:
		return 3
	}
}

// BestMove evaluates every legal move in row-major order on a copy of game.
// X keeps a move only if it is strictly better than the best so far and O
// only if it is strictly worse, so among equal moves the first one wins.
func (that *botService) BestMove(game *entity.Game, useAlphaBeta bool) SearchOutcome {
	log := that.logger.With("method", "BestMove")

	moves := game.LegalMoves()
	if len(moves) == 0 {
		return SearchOutcome{}
	}

	s := &search{game: game.Clone()}
	depth := DepthLimit(game.Size)
	maximizing := game.Turn.Opposite() == entity.PlayerX

	outcome := SearchOutcome{Value: math.MinInt}
	if game.Turn == entity.PlayerO {
		outcome.Value = math.MaxInt
	}

	for _, move := range moves {
		s.play(move)

		var value int
		if useAlphaBeta {
			value = s.alphaBeta(depth, math.MinInt, math.MaxInt, maximizing)
		} else {
			value = s.minimax(depth, maximizing)
		}

		s.undo(move)

		if (game.Turn == entity.PlayerX && value > outcome.Value) ||
			(game.Turn == entity.PlayerO && value < outcome.Value) {
			outcome.Value = value
			outcome.Move = move
			outcome.Found = true
		}
	}

	outcome.Nodes = s.nodes

	log.Debug("search finished",
		"turn", game.Turn,
		"move", outcome.Move.String(),
		"value", outcome.Value,
		"nodes", outcome.Nodes,
		"alphaBeta", useAlphaBeta,
		"depth", depth,
	)

	return outcome
}

// Minimax returns the plain minimax value of game searched depth plies deep
// and the number of nodes visited. game is not modified.
func Minimax(game *entity.Game, depth int, maximizing bool) (int, int) {
	s := &search{game: game.Clone()}
	value := s.minimax(depth, maximizing)

	return value, s.nodes
}

// AlphaBeta is Minimax with alpha-beta pruning. Called with the full window
// (math.MinInt, math.MaxInt) it returns the same value as Minimax.
func AlphaBeta(game *entity.Game, depth, alpha, beta int, maximizing bool) (int, int) {
	s := &search{game: game.Clone()}
	value := s.alphaBeta(depth, alpha, beta, maximizing)

	return value, s.nodes
}

// search owns the board it plays on and the node count of a single call.
type search struct {
	game  *entity.Game
	nodes int
}

func (that *search) minimax(depth int, maximizing bool) int {
	that.nodes++

	if depth == 0 || that.game.IsTerminal() {
		return that.game.Utility()
	}

	if maximizing {
		best := math.MinInt
		for _, move := range that.game.LegalMoves() {
			that.play(move)
			best = max(best, that.minimax(depth-1, false))
			that.undo(move)
		}
		return best
	}

	best := math.MaxInt
	for _, move := range that.game.LegalMoves() {
		that.play(move)
		best = min(best, that.minimax(depth-1, true))
		that.undo(move)
	}
	return best
}

func (that *search) alphaBeta(depth, alpha, beta int, maximizing bool) int {
	that.nodes++

	if depth == 0 || that.game.IsTerminal() {
		return that.game.Utility()
	}

	if maximizing {
		best := math.MinInt
		for _, move := range that.game.LegalMoves() {
			that.play(move)
			value := that.alphaBeta(depth-1, alpha, beta, false)
			that.undo(move)

			best = max(best, value)
			alpha = max(alpha, value)
			if beta <= alpha {
				break // beta cut-off
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range that.game.LegalMoves() {
		that.play(move)
		value := that.alphaBeta(depth-1, alpha, beta, true)
		that.undo(move)

		best = min(best, value)
		beta = min(beta, value)
		if beta <= alpha {
			break // alpha cut-off
		}
	}
	return best
}

// play and undo only ever see legal moves taken from LegalMoves.
func (that *search) play(move entity.Position) {
	if err := that.game.MakeTurn(move); err != nil {
		panic(err)
	}
}

func (that *search) undo(move entity.Position) {
	if err := that.game.UndoMove(move); err != nil {
		panic(err)
	}
}
