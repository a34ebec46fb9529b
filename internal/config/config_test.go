package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestLoad(t *testing.T) {
	t.Run("Reads every field", func(t *testing.T) {
		// When: a complete file is loaded
		conf, err := Load(filepath.Join("testdata", "valid.yml"))

		// Then: all values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Board{Size: 4, WinLength: 3}, conf.Board)
		assert.Equal(t, SearchMinimax, conf.Engine.Search)
		assert.False(t, conf.Engine.UseAlphaBeta())
		assert.Equal(t, 2, conf.SelfPlay.Workers)
		assert.Equal(t, []string{"", "1,1", "0,0;1,1"}, conf.SelfPlay.Openings)
	})

	t.Run("Missing fields fall back to defaults", func(t *testing.T) {
		conf, err := Load(filepath.Join("testdata", "defaults.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, Board{Size: 3, WinLength: 3}, conf.Board)
		assert.True(t, conf.Engine.UseAlphaBeta())
		assert.Equal(t, 4, conf.SelfPlay.Workers)
		assert.Equal(t, []string{"1,1"}, conf.SelfPlay.Openings)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: the board size is set in the environment
		t.Setenv("BOARD_SIZE", "5")
		t.Setenv("BOARD_WIN_LENGTH", "4")

		conf, err := Load(filepath.Join("testdata", "valid.yml"))

		require.NoError(t, err)
		assert.Equal(t, Board{Size: 5, WinLength: 4}, conf.Board)
	})

	t.Run("Error on win length longer than the board", func(t *testing.T) {
		conf, err := Load(filepath.Join("testdata", "long_win.yml"))

		require.ErrorIs(t, err, apperror.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "WinLength must not exceed Size")
		assert.Nil(t, conf)
	})

	t.Run("Error on unknown log level", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "bad_level.yml"))

		require.ErrorIs(t, err, apperror.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "LogLevel must be one of")
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "missing.yml"))

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrInvalidConfig)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join("testdata", "long_win.yml"))
	})

	assert.NotPanics(t, func() {
		MustLoad(filepath.Join("testdata", "valid.yml"))
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		LogLevel: "warn",
		Board:    Board{Size: 3, WinLength: 3},
		Engine:   Engine{Search: SearchAlphaBeta},
		SelfPlay: SelfPlay{Workers: 1},
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(conf *Config){
		"zero size":       func(conf *Config) { conf.Board.Size = 0 },
		"zero win length": func(conf *Config) { conf.Board.WinLength = 0 },
		"zero workers":    func(conf *Config) { conf.SelfPlay.Workers = 0 },
		"empty log level": func(conf *Config) { conf.LogLevel = "" },
		"unknown search":  func(conf *Config) { conf.Engine.Search = "mcts" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			conf := valid
			mutate(&conf)

			require.ErrorIs(t, conf.Validate(), apperror.ErrInvalidConfig)
		})
	}
}
