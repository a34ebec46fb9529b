package usecase

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

// Analysis compares both search strategies on one position.
type Analysis struct {
	Board     string               `json:"board"`
	Turn      entity.Mark          `json:"turn"`
	Depth     int                  `json:"depth"`
	AlphaBeta service.SearchOutcome `json:"alpha_beta"`
	Minimax   service.SearchOutcome `json:"minimax"`
}

// Agree reports whether pruning picked the same move with the same value.
func (that Analysis) Agree() bool {
	return that.AlphaBeta.Found == that.Minimax.Found &&
		that.AlphaBeta.Move == that.Minimax.Move &&
		that.AlphaBeta.Value == that.Minimax.Value
}

// Analyze searches game both ways. game is left untouched.
func (that *MatchRunner) Analyze(game *entity.Game) Analysis {
	analysis := Analysis{
		Board:     game.String(),
		Turn:      game.CurrentTurn(),
		Depth:     service.DepthLimit(game.Size),
		AlphaBeta: that.bot.BestMove(game, true),
		Minimax:   that.bot.BestMove(game, false),
	}

	that.logger.Debug("position analyzed",
		"method", "Analyze",
		"agree", analysis.Agree(),
		"alpha_beta_nodes", analysis.AlphaBeta.Nodes,
		"minimax_nodes", analysis.Minimax.Nodes,
	)

	return analysis
}
