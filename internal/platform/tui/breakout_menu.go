package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hitbox-arcade/internal/core"
	"github.com/vovakirdan/hitbox-arcade/internal/games/breakout"
)

// BreakoutMode represents the selected game mode.
type BreakoutMode int

const (
	BreakoutModeCampaign BreakoutMode = iota
	BreakoutModeEndless
)

// BreakoutSelection holds the user's selection from the Breakout menu.
type BreakoutSelection struct {
	Mode  BreakoutMode
	Level int // zero-based starting level
}

// GameID returns the registry ID for the selected mode.
func (s BreakoutSelection) GameID() string {
	if s.Mode == BreakoutModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Apply configures the breakout package for this selection.
func (s BreakoutSelection) Apply() {
	breakout.SetStartLevel(s.Level)
}

// levelSummary counts a layout's bricks by kind.
type levelSummary struct {
	normal, hard, solid int
	points              int
}

func summarizeLevel(l *breakout.Level) levelSummary {
	var s levelSummary
	l.Each(func(b *breakout.Brick) {
		switch b.Type {
		case breakout.BrickHard:
			s.hard++
		case breakout.BrickSolid:
			s.solid++
		default:
			s.normal++
		}
		s.points += b.Points
	})
	return s
}

// BreakoutModeModel picks where a Breakout run starts. Row 0 is endless
// mode; row i starts the campaign at level i. The highlighted level is
// previewed brick by brick.
type BreakoutModeModel struct {
	levels    []*breakout.Level
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection BreakoutSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewBreakoutModeModel creates a new Breakout mode selection model with the
// first campaign level highlighted.
func NewBreakoutModeModel(width, height int) BreakoutModeModel {
	levels := make([]*breakout.Level, breakout.LevelCount())
	for i := range levels {
		levels[i] = breakout.GetLevel(i)
	}
	return BreakoutModeModel{
		levels:    levels,
		cursor:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m BreakoutModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BreakoutModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m BreakoutModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels) {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor == 0 {
			m.selection = BreakoutSelection{Mode: BreakoutModeEndless}
		} else {
			m.selection = BreakoutSelection{Mode: BreakoutModeCampaign, Level: m.cursor - 1}
		}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the start list beside the preview.
func (m BreakoutModeModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var list strings.Builder
	list.WriteString(accentStyle.Render("Start at"))
	list.WriteString("\n\n")
	rows := make([]string, 0, len(m.levels)+1)
	rows = append(rows, "Endless")
	for i, l := range m.levels {
		rows = append(rows, fmt.Sprintf("%2d. %s", i+1, l.Name))
	}
	for i, row := range rows {
		if i == m.cursor {
			list.WriteString(accentStyle.Render("> " + row))
		} else {
			list.WriteString("  " + row)
		}
		list.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(strings.TrimSuffix(list.String(), "\n")),
		" ",
		boxStyle.Render(m.renderPreview()),
	)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("B R E A K O U T", m.width))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Enter: Start  |  Esc: Back  |  Q: Quit"))
	return b.String()
}

func (m BreakoutModeModel) renderPreview() string {
	if m.cursor == 0 {
		return fmt.Sprintf("%s\n\nAll %d levels in a loop.\nThe ball speeds up each cycle.",
			accentStyle.Render("Endless"), len(m.levels))
	}

	l := m.levels[m.cursor-1]
	var b strings.Builder
	b.WriteString(accentStyle.Render(l.Name))
	b.WriteString("\n\n")
	for _, row := range l.Bricks {
		for _, brick := range row {
			if brick == nil {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(styleFor(brick.Color()).Render(string(brick.Glyph())))
		}
		b.WriteString("\n")
	}

	s := summarizeLevel(l)
	fmt.Fprintf(&b, "\n%d bricks to clear", l.Remaining())
	if s.hard > 0 {
		fmt.Fprintf(&b, ", %d hard", s.hard)
	}
	if s.solid > 0 {
		fmt.Fprintf(&b, "\n%d solid", s.solid)
	}
	fmt.Fprintf(&b, "\n%d points on the board", s.points)
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BreakoutModeModel) Selected() *BreakoutSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m BreakoutModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m BreakoutModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BreakoutModeModel) WantsBack() bool {
	return m.back
}

// RunBreakoutModeSelector runs the Breakout mode selection and returns the selection.
func RunBreakoutModeSelector(cfg core.RuntimeConfig) (*BreakoutSelection, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewBreakoutModeModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := final.(BreakoutModeModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}
	return m.Selected(), cfg, nil
}
