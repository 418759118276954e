package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox-arcade/internal/registry"
	"github.com/vovakirdan/hitbox-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top scores for the specified game. Each run is listed
with its ID, seed and state fingerprint so a result can be replayed
and checked.

Examples:
  arcade scores shooter
  arcade scores breakout_endless --limit 25
  arcade scores shooter --run 7f9c2d1e-...
  arcade scores shooter --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	case flagScoresRun != "":
		e, err := store.ScoreByRun(flagScoresRun)
		if err != nil {
			return err
		}
		fmt.Printf("Run %s\n  game        %s\n  score       %d\n  seed        %d\n  fingerprint %016x\n  played      %s\n",
			e.RunID, e.GameID, e.Score, e.Seed, e.Fingerprint, e.CreatedAt.Format("2006-01-02 15:04"))
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("read scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-36s  %-20s  %-16s  %s\n", "Rank", "Score", "Run", "Seed", "Fingerprint", "Date")
	fmt.Printf("  %-4s  %-8s  %-36s  %-20s  %-16s  %s\n", "----", "-----", "---", "----", "-----------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-36s  %-20d  %016x  %s\n",
			i+1, e.Score, e.RunID, e.Seed, e.Fingerprint, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("read stats: %w", err)
	}
	if gs, ok := stats[gameID]; ok {
		fmt.Printf("\n%d runs, best %d, average %.1f, last played %s\n",
			gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
