package main

import (
	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/pkg/playable/blackjack"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
	"os"
	"strings"
)

// Version is the build version
var Version = "v0.0.0-dev"

var rootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play blackjack against the dealer",
	Long: `Blackjack is a single player game against the dealer in your terminal.

Place a bet, then stand, hit, double or surrender. The game ends when you
can no longer cover the minimum bet or when input is closed (Ctrl-D).

Settings are read from blackjack.yaml (or the file in BJ_CONFIG_FILE) and
can be overridden with BJ_* environment variables or the flags below.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "path to a yaml or toml config file")
	rootCmd.Flags().Int64("seed", 0, "seed for reproducible shuffles (0 is random)")
	rootCmd.Flags().Int("decks", 0, "number of decks in the shoe")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	if cmd.Flags().Changed("decks") {
		cfg.Game.NumDecks, _ = cmd.Flags().GetInt("decks")
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	con := console.New(os.Stdin, os.Stdout, console.TerminalOptions(os.Stdout, cfg.Color))
	game, err := blackjack.NewGame(logger, con, con, cfg.GameOptions())
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	summary, err := game.Play()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return err
		}

		logger.Info("input closed")
		fmt.Fprintln(os.Stdout)
		s := game.Summary()
		summary = &s
	}

	con.Summary(summary)
	return nil
}

func setupLogger(cfg config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("could not parse level: %w", err)
		}

		logger.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}
