package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hitbox-arcade/internal/core"
	"github.com/vovakirdan/hitbox-arcade/internal/storage"
)

// countdownGame ends after a fixed number of ticks with a fixed score.
type countdownGame struct {
	ticks  int
	resets int
	debug  bool
}

func (g *countdownGame) ID() string    { return "countdown" }
func (g *countdownGame) Title() string { return "Countdown" }
func (g *countdownGame) Reset(core.RuntimeConfig) {
	g.ticks = 3
	g.resets++
}
func (g *countdownGame) Step(in core.InputFrame) core.StepResult {
	g.debug = in.Has(core.ActionDebug)
	if g.ticks > 0 {
		g.ticks--
	}
	return core.StepResult{State: g.State()}
}
func (g *countdownGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "countdown") }
func (g *countdownGame) State() core.GameState {
	return core.GameState{Score: 7, GameOver: g.ticks == 0}
}
func (g *countdownGame) Fingerprint() uint64 { return 0xabc }

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	return m
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	game := &countdownGame{}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 99})
	m.Init()
	m = tick(t, m, 6)

	scores, err := store.AllScores("countdown")
	if err != nil {
		t.Fatalf("AllScores failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	got := scores[0]
	if got.RunID != m.RunID() || got.Score != 7 || got.Seed != 99 || got.Fingerprint != 0xabc {
		t.Errorf("saved entry = %+v", got)
	}
}

func TestModelRestartStartsNewRun(t *testing.T) {
	game := &countdownGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5})
	m.Init()
	m = tick(t, m, 3)
	first := m.RunID()

	next, _ := m.Update(runeKey('r'))
	m = tick(t, next.(Model), 1)

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.RunID() == first {
		t.Error("restart should start a new run")
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &countdownGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5})
	m.Init()

	next, _ := m.Update(runeKey('h'))
	next, _ = next.Update(TickMsg{})
	if !game.debug {
		t.Error("h should reach the game as ActionDebug")
	}

	next, _ = next.Update(TickMsg{})
	if game.debug {
		t.Error("input should clear after a tick")
	}
	if v := next.View(); v == "" {
		t.Error("view should render the game")
	}
}

func TestModelBackAfterGameOver(t *testing.T) {
	game := &countdownGame{}
	m := newEmbeddedModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5})
	m.Init()
	m = tick(t, m, 3)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() {
		t.Error("esc after game over should return to the menu")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}

	_, cmd = m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q should quit")
	}
}
