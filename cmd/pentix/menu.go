package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pentix/internal/platform/tui"
	"github.com/vovakirdan/pentix/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys, j/k or the mouse to pick a variant, then a difficulty.
After a game ends (q quits it), you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Click  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  pentix menu
  pentix menu --fps 30
  pentix menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	checkConfig()

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	saves := openSaves(store, logger)
	cfg := runtimeConfig()
	cfg.Saves = saves

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		preset, updated, err := tui.RunDifficultySelector(game.Title(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		cfg = updated
		// Back to the variant list
		if preset == nil {
			continue
		}

		gameCfg := cfg
		gameCfg.StartLevel = preset.Level()
		if flagSeed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "game", gameID, "level", gameCfg.StartLevel)
		if err := tui.Run(game, store, gameCfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
