package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixeldeck/arcade/internal/core"
	"github.com/pixeldeck/arcade/internal/platform/term"
	"github.com/pixeldeck/arcade/internal/registry"
	"github.com/pixeldeck/arcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right or A/D  - Steer
  Space/Enter        - Launch
  Q/Ctrl+C           - Quit

Examples:
  arcade play bricks
  arcade play bricks --fps 30
  arcade play bricks --config ./my-bricks.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	game, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	score, runErr := runOnTerminal(game, flagConfig)

	if store != nil {
		if score > 0 {
			//nolint:errcheck // Best-effort save
			store.SaveScore(game.ID, score)
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", score)
}

// runOnTerminal hosts one game run on the local terminal: raw mode, the key
// reader goroutine, and a buffered pixel surface over stdout.
func runOnTerminal(game registry.Game, configPath string) (int, error) {
	session, err := term.Enter(os.Stdin, os.Stdout)
	if err != nil {
		return 0, err
	}
	defer session.Restore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := term.NewKeys(cancel)
	go keys.ReadLoop(os.Stdin)

	out := bufio.NewWriterSize(os.Stdout, 1<<16)
	defer out.Flush()
	surface := term.NewSurface(out)

	opts := registry.RunOptions{
		Runtime:    core.RuntimeConfig{TickRate: flagFPS},
		ConfigPath: configPath,
	}

	return game.Run(ctx, surface, keys, core.NewSystemClock(), opts)
}
