// arcade is a terminal arcade whose games are built on convex hit boxes.
//
// Usage:
//
//	arcade list                - List available games
//	arcade play <game>         - Play a game
//	arcade menu                - Start menu to pick games interactively
//	arcade serve               - Start SSH server for remote play
//	arcade scores <game>       - Show high scores for a game
//	arcade check <scene.yaml>  - Validate a scene file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file while a game is on screen
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/hitbox-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/hitbox-arcade/internal/games/shooter"
	"github.com/vovakirdan/hitbox-arcade/internal/geom"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Hitbox Arcade - terminal games on convex hit boxes",
	Long: `Hitbox Arcade is a terminal gaming platform whose games collide
points, segments, circles and convex polygons.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  check    - Validate a scene file

Examples:
  arcade list
  arcade play shooter
  arcade menu
  arcade serve --ssh :2222
  arcade check ./my-arena.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while a game is on screen")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

// fullscreen commands own the terminal, so their logs go to --log-file or
// nowhere.
var fullscreen = map[string]bool{"play": true, "menu": true}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	case fullscreen[cmd.Name()]:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	log.SetDefault(logger)
	geom.SetLogger(logger.WithPrefix("geom"))
	return nil
}
