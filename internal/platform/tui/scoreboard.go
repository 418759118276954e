package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hitbox-arcade/internal/registry"
	"github.com/vovakirdan/hitbox-arcade/internal/storage"
)

const (
	maxScores  = 100
	runIDWidth = 10

	// Below this width the run panel goes under the table.
	sideBySideWidth = 90
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "prev run")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next run")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the recorded runs of one game at a time. The
// highlighted run is shown in full beside the table, with the seed and
// world fingerprint that identify it, over the game's totals.
type ScoreboardModel struct {
	games  []registry.GameInfo
	game   int
	store  *storage.Store
	stats  map[string]*storage.GameStats
	scores []storage.ScoreEntry
	run    *storage.ScoreEntry
	err    error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. Endless modes keep
// their own tables since their scores are not comparable with campaigns.
// A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newRunTable(height)
	if store != nil {
		m.stats, m.err = store.GetAllGamesStats()
	}
	m.loadGame()
	return m
}

func newRunTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Run", Width: runIDWidth},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

// loadGame fills the table with the current game's runs.
func (m *ScoreboardModel) loadGame() {
	m.scores = nil
	if m.store != nil && len(m.games) > 0 {
		scores, err := m.store.TopScores(m.gameID(), maxScores)
		if err != nil {
			m.err = err
		}
		m.scores = scores
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			shortRunID(s.RunID),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.selectRun()
}

// selectRun reloads the highlighted run from the store by its run ID.
func (m *ScoreboardModel) selectRun() {
	m.run = nil
	i := m.table.Cursor()
	if i < 0 || i >= len(m.scores) {
		return
	}
	e, err := m.store.ScoreByRun(m.scores[i].RunID)
	if err != nil {
		m.err = err
		return
	}
	m.run = &e
}

// shortRunID trims a run UUID to its first group, enough to tell runs apart.
func shortRunID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > runIDWidth {
		return id[:runIDWidth]
	}
	return id
}

func formatReplayKey(f uint64) string {
	if f == 0 {
		return "-"
	}
	return fmt.Sprintf("%016x", f)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.switchGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.switchGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-8, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.selectRun()
	return m, cmd
}

func (m *ScoreboardModel) switchGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + step + len(m.games)) % len(m.games)
	m.loadGame()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(accentStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	runs := boxStyle.Render(m.renderRuns())
	panel := boxStyle.Render(m.renderRunPanel())
	if m.width >= sideBySideWidth {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, " ", panel))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, runs, panel))
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(dimStyle.Render("storage: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			tabs[i] = accentStyle.Background(lipgloss.Color("57")).Padding(0, 1).Render(g.Title)
		} else {
			tabs[i] = dimStyle.Padding(0, 1).Render(g.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderRuns() string {
	if len(m.scores) == 0 {
		return dimStyle.Italic(true).Padding(1, 2).
			Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// renderRunPanel shows the highlighted run followed by the game's totals.
func (m ScoreboardModel) renderRunPanel() string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", dimStyle.Render(fmt.Sprintf("%-8s", label)), value)
	}

	b.WriteString(accentStyle.Render("Run"))
	b.WriteString("\n")
	if r := m.run; r != nil {
		line("ID", r.RunID)
		line("Score", fmt.Sprintf("%d", r.Score))
		line("Seed", fmt.Sprintf("%d", r.Seed))
		line("World", formatReplayKey(r.Fingerprint))
		line("Played", r.CreatedAt.Format("2006-01-02 15:04"))
	} else {
		b.WriteString(dimStyle.Render("none selected"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(accentStyle.Render("Totals"))
	b.WriteString("\n")
	gs := m.stats[m.gameID()]
	if gs == nil {
		b.WriteString(dimStyle.Render("never played"))
		return b.String()
	}
	line("Runs", fmt.Sprintf("%d", gs.GamesCount))
	line("Best", fmt.Sprintf("%d", gs.HighScore))
	line("Average", fmt.Sprintf("%.1f", gs.AvgScore))
	line("Total", fmt.Sprintf("%d", gs.TotalScore))
	if !gs.LastPlayed.IsZero() {
		line("Last", gs.LastPlayed.Format("Jan 02 15:04"))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
