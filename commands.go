package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var (
	configPath string
	conf       *config.Config
	logger     *slog.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictactoe-engine",
		Short: "Minimax engine for N-in-a-row on a square board",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf = initConfig(configPath)
			logger = initLogger(conf)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "Path to config.yml")

	rootCmd.AddCommand(newSelfPlayCmd())
	rootCmd.AddCommand(newCompareCmd())

	return rootCmd
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, "./config.yml")
}

func newSelfPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selfplay",
		Short: "Play the engine against itself from every configured opening",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RunApp(cmd.Context(), logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}
}

func newCompareCmd() *cobra.Command {
	var (
		moves  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Search a position with and without alpha-beta pruning",
		Example: `  tictactoe-engine compare --moves "1,1;0,0"
  tictactoe-engine compare --moves "0,0;1,1;2,2" -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := app.RunCompare(logger, conf, moves)
			if err != nil {
				return err
			}

			return printAnalysis(cmd.OutOrStdout(), output, analysis)
		},
	}

	cmd.Flags().StringVar(&moves, "moves", "", `Moves played so far, "row,col" separated by ";"`)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json")

	return cmd
}

func printAnalysis(w io.Writer, format string, analysis usecase.Analysis) error {
	if format == outputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(analysis)
	}

	if format != outputText {
		return fmt.Errorf("unknown output format %q", format)
	}

	fmt.Fprint(w, analysis.Board)
	fmt.Fprintf(w, "turn: %s  depth: %d\n", analysis.Turn, analysis.Depth)
	fmt.Fprintf(w, "%-10s  %s\n", "alpha-beta", formatOutcome(analysis.AlphaBeta))
	fmt.Fprintf(w, "%-10s  %s\n", "minimax", formatOutcome(analysis.Minimax))
	fmt.Fprintf(w, "agree: %v\n", analysis.Agree())

	return nil
}

func formatOutcome(outcome service.SearchOutcome) string {
	if !outcome.Found {
		return "no move"
	}

	return fmt.Sprintf("move %s  value %+d  nodes %d", outcome.Move, outcome.Value, outcome.Nodes)
}
