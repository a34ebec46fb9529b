package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	SearchAlphaBeta = "alphabeta"
	SearchMinimax   = "minimax"
)

var validate = validator.New()

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Board    Board    `yaml:"board"`
	Engine   Engine   `yaml:"engine"`
	SelfPlay SelfPlay `yaml:"selfplay"`
}

type Board struct {
	Size      int `yaml:"size" env:"BOARD_SIZE" env-default:"3" validate:"min=1"`
	WinLength int `yaml:"win-length" env:"BOARD_WIN_LENGTH" env-default:"3" validate:"min=1,ltefield=Size"`
}

type Engine struct {
	Search string `yaml:"search" env:"ENGINE_SEARCH" env-default:"alphabeta" validate:"oneof=alphabeta minimax"`
}

// UseAlphaBeta reports whether the engine prunes its search.
func (that Engine) UseAlphaBeta() bool {
	return that.Search == SearchAlphaBeta
}

type SelfPlay struct {
	Workers int `yaml:"workers" env:"SELFPLAY_WORKERS" env-default:"4" validate:"min=1"`
	// Openings are "r,c;r,c" move lists played before the engine takes over.
	// An empty entry starts from the empty board.
	Openings []string `yaml:"openings" env:"SELFPLAY_OPENINGS" env-separator:"|"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks field ranges; a win length longer than the board is rejected here
// rather than when the first game is built.
func (that *Config) Validate() error {
	err := validate.Struct(that)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidConfig, err)
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "min":
			details = append(details, fmt.Sprintf("%s must be at least %s", fieldErr.Namespace(), fieldErr.Param()))
		case "ltefield":
			details = append(details, fmt.Sprintf("%s must not exceed %s", fieldErr.Namespace(), fieldErr.Param()))
		case "oneof":
			details = append(details, fmt.Sprintf("%s must be one of [%s]", fieldErr.Namespace(), fieldErr.Param()))
		default:
			details = append(details, fmt.Sprintf("%s failed %s", fieldErr.Namespace(), fieldErr.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", apperror.ErrInvalidConfig, strings.Join(details, "; "))
}
