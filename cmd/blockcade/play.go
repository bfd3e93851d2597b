package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ansokolov/blockcade/internal/config"
	"github.com/ansokolov/blockcade/internal/core"
	"github.com/ansokolov/blockcade/internal/games/snake"
	"github.com/ansokolov/blockcade/internal/games/tetris"
	"github.com/ansokolov/blockcade/internal/platform/tui"
	"github.com/ansokolov/blockcade/internal/registry"
	"github.com/ansokolov/blockcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D or Left/Right  - Move
  W/Up               - Rotate (tetris) / steer up (snake)
  S/Down             - Soft drop (tetris) / steer down (snake)
  Space              - Hard drop (tetris)
  P                  - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Examples:
  blockcade play tetris
  blockcade play snake
  blockcade play tetris --config ./my-tetris.yaml
  blockcade play tetris --seed 42 --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockcade list' to see available games.")
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Validate a custom config up front: a broken file should fail the
	// command with a message, not start a silently misconfigured game.
	if flagConfig != "" {
		var cfgErr error
		switch gameID {
		case "tetris":
			_, cfgErr = config.LoadTetris(flagConfig)
		case "snake":
			_, cfgErr = config.LoadSnake(flagConfig)
		}
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cfgErr)
			os.Exit(1)
		}
	}

	// Config paths must be set before the game is created.
	switch gameID {
	case "tetris":
		tetris.SetConfigPath(flagConfig)
	case "snake":
		snake.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
