// arcade is a terminal arcade for pixel games drawn on a fixed 320x240 grid.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: game config)
//	--db <path>     - Set database path (default: ~/.pixeldeck/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/pixeldeck/arcade/internal/games/bricks"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "pixeldeck arcade - Play pixel games in your terminal",
	Long: `pixeldeck arcade is a terminal gaming platform that renders games on a
fixed 320x240 pixel grid, scaled down to terminal cells.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play bricks
  arcade menu
  arcade serve --ssh :2222
  arcade scores bricks`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = game config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixeldeck/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
