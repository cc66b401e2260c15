package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pentix/internal/config"
	"github.com/vovakirdan/pentix/internal/games/pentix"
	"github.com/vovakirdan/pentix/internal/platform/tui"
	"github.com/vovakirdan/pentix/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: pentix).

Controls:
  Left/Right, A/D  - Move piece
  Up/W             - Rotate
  Down/S           - Soft drop (hold)
  P/Space          - Play/Pause
  1/2/3            - New game on easy/medium/hard
  X                - Stop
  R                - Restart after game over
  Ctrl+S / Ctrl+L  - Save / load
  ?                - All keys
  Q/Ctrl+C         - Quit
The buttons next to the board work with the mouse.

Without --difficulty a difficulty picker is shown first.

Examples:
  pentix play
  pentix play pentix_classic
  pentix play --difficulty hard
  pentix play --save-backend sqlite
  pentix play --config ./my-pentix.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagSaveBackend, "save-backend", "", "Save backend: file or sqlite (default from config)")
	playCmd.Flags().StringVar(&flagSavePath, "save-path", "", "Snapshot file for the file backend (default from config)")
}

// checkConfig fails early on an unusable --config file; games would
// otherwise fall back to the defaults silently.
func checkConfig() {
	if flagConfig == "" {
		return
	}
	if _, err := config.LoadPentix(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pentix.SetConfigPath(flagConfig)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := pentix.IDPentix
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pentix list' to see available variants.")
		os.Exit(1)
	}
	checkConfig()

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficultyPreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.StartLevel = preset.Level()
	} else {
		preset, updated, err := tui.RunDifficultySelector(game.Title(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = updated
		// User pressed back or quit
		if preset == nil {
			return
		}
		cfg.StartLevel = preset.Level()
	}

	store := openStore(logger)
	cfg.Saves = openSaves(store, logger)

	logger.Info("starting game", "game", gameID, "level", cfg.StartLevel, "seed", cfg.Seed)
	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
