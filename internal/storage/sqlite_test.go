package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) string {
	t.Helper()
	_, runID, err := store.SaveScore(ScoreEntry{GameID: gameID, Score: score})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return runID
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	save(t, store, "breakout", 100)
	save(t, store, "breakout", 50)
	save(t, store, "breakout", 200)
	save(t, store, "shooter", 500)

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	shooterScores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(shooterScores) != 1 {
		t.Errorf("Expected 1 shooter score, got %d", len(shooterScores))
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openStore(t)

	generated := save(t, store, "breakout", 10)
	if _, err := uuid.Parse(generated); err != nil {
		t.Errorf("generated run ID %q is not a UUID: %v", generated, err)
	}

	runID := uuid.NewString()
	_, got, err := store.SaveScore(ScoreEntry{
		RunID:       runID,
		GameID:      "shooter",
		Score:       75,
		Seed:        -42,
		Fingerprint: 0xfeedfacecafebeef,
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if got != runID {
		t.Errorf("run ID = %s, expected %s", got, runID)
	}

	e, err := store.ScoreByRun(runID)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if e.GameID != "shooter" || e.Score != 75 || e.Seed != -42 {
		t.Errorf("entry = %+v", e)
	}
	if e.Fingerprint != 0xfeedfacecafebeef {
		t.Errorf("fingerprint = %x", e.Fingerprint)
	}

	if _, _, err := store.SaveScore(ScoreEntry{RunID: runID, GameID: "shooter"}); err == nil {
		t.Error("duplicate run ID should be rejected")
	}
	if _, err := store.ScoreByRun(uuid.NewString()); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("err = %v, expected ErrRunNotFound", err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)
	for i := range 5 {
		save(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "breakout", 100)
	save(t, store, "breakout", 300)
	save(t, store, "breakout", 200)

	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)
	save(t, store, "breakout", 100)
	save(t, store, "breakout", 200)
	save(t, store, "shooter", 300)

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("breakout", 10); len(scores) != 0 {
		t.Errorf("Expected 0 breakout scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("shooter", 10); len(scores) != 1 {
		t.Error("Shooter scores should not be affected by clearing breakout")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openStore(t)
	for i := range 20 {
		save(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGamesStats(t *testing.T) {
	store := openStore(t)
	save(t, store, "breakout", 100)
	save(t, store, "breakout", 300)
	save(t, store, "shooter", 50)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	b := stats["breakout"]
	if b == nil {
		t.Fatal("missing breakout stats")
	}
	if b.GamesCount != 2 || b.HighScore != 300 || b.TotalScore != 400 || b.AvgScore != 200 {
		t.Errorf("breakout stats = %+v", b)
	}
	if stats["shooter"] == nil || stats["shooter"].GamesCount != 1 {
		t.Errorf("shooter stats = %+v", stats["shooter"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
