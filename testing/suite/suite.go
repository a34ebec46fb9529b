package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// NewGame creates a size x size game and plays moves on it in order.
func (that *Suite) NewGame(size, winLength int, moves ...entity.Position) *entity.Game {
	that.Helper()

	game, err := entity.NewGame(size, winLength)
	require.NoError(that.T, err)

	for i, move := range moves {
		require.NoError(that.T, game.MakeTurn(move), "move %d (%s)", i, move)
	}

	return game
}

// Moves parses a "r,c;r,c" list.
func (that *Suite) Moves(raw string) []entity.Position {
	that.Helper()

	moves, err := entity.ParseMoves(raw)
	require.NoError(that.T, err)

	return moves
}
