package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/pixeldeck/arcade/internal/platform/tui"
	"github.com/pixeldeck/arcade/internal/registry"
	"github.com/pixeldeck/arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	for {
		result, err := tui.RunMenu(store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			width, height := 80, 24
			if w, h, sizeErr := xterm.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
				width, height = w, h
			}
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if !goBack {
				return
			}

		case result.GameID != "":
			game, ok := registry.Lookup(result.GameID)
			if !ok {
				continue
			}
			score, runErr := runOnTerminal(game, "")
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}
			if store != nil && score > 0 {
				//nolint:errcheck // Best-effort save
				store.SaveScore(game.ID, score)
			}

		default:
			return
		}
	}
}
