// blockcade is a TUI arcade for block and grid games in the terminal.
//
// Usage:
//
//	blockcade list              - List available games
//	blockcade play <game>       - Play a game
//	blockcade menu              - Start menu to pick games interactively
//	blockcade serve             - Start SSH server for remote play
//	blockcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ansokolov/blockcade/internal/core"

	// Import games to register them
	_ "github.com/ansokolov/blockcade/internal/games/snake"
	_ "github.com/ansokolov/blockcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockcade",
	Short: "Blockcade - falling blocks and friends, in your terminal",
	Long: `Blockcade is a terminal arcade for classic grid games: a falling-blocks
well and an endless snake, with local and SSH play plus a shared scoreboard.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  blockcade list
  blockcade play tetris
  blockcade menu
  blockcade serve --ssh :2222
  blockcade scores tetris`,
}

func init() {
	defaults := core.DefaultConfig()
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", defaults.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
