package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hitbox-arcade/internal/core"
	"github.com/vovakirdan/hitbox-arcade/internal/games/breakout"
	"github.com/vovakirdan/hitbox-arcade/internal/games/shooter"
	"github.com/vovakirdan/hitbox-arcade/internal/platform/tui"
	"github.com/vovakirdan/hitbox-arcade/internal/registry"
	"github.com/vovakirdan/hitbox-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move
  Space       - Fire (shooter) / launch (breakout)
  P           - Pause
  H           - Show hit boxes
  R           - Restart (after game over)
  Esc/B       - Back (when paused or over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play shooter
  arcade play shooter --difficulty hard
  arcade play shooter --config ./my-shooter.yaml
  arcade play breakout --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// configureGame applies the config flags to the game's package. Breakout
// also asks for a mode and level first. It returns the game ID to create,
// or false when the player backed out.
func configureGame(gameID string, cfg core.RuntimeConfig) (string, core.RuntimeConfig, bool, error) {
	switch gameID {
	case "shooter":
		shooter.SetConfigPath(flagConfig)
		shooter.SetDifficultyPreset(flagDifficulty)
	case "breakout", "breakout_endless":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)

		sel, updated, err := tui.RunBreakoutModeSelector(cfg)
		if err != nil || sel == nil {
			return gameID, updated, false, err
		}
		sel.Apply()
		return sel.GameID(), updated, true, nil
	}
	return gameID, cfg, true, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	gameID, cfg, ok, err := configureGame(gameID, terminalConfig())
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("run %s: %w", gameID, err)
	}
	return nil
}
