package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

const (
	maxScores     = 100 // Rows loaded into the table
	scoreboardPad = 8   // Title, stats line, help bar and borders
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings of the high score table.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the help bar.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default table bindings. Tab is a back
// key so the binding that opens the table from the game also closes it.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores and run statistics of one game.
type ScoreboardModel struct {
	store     *storage.Store
	gameID    string
	title     string
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool // Back hands control to the caller instead of quitting
}

// NewScoreboardModel creates a standalone high score table for the game.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		title:  title,
		help:   h,
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.load()
	return m
}

// newEmbeddedScoreboard creates a table shown on top of a running game.
func newEmbeddedScoreboard(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := NewScoreboardModel(store, gameID, title, width, height)
	m.embedded = true
	return m
}

// newScoreTable sizes the rank/score/date columns to the terminal.
func newScoreTable(width, height int) table.Model {
	dateW := core.Clamp(width-6-12-8, 12, 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(1, height-scoreboardPad)),
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

// load reads scores and statistics; a missing or failing store shows an
// empty table.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(m.gameID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling, back and quit.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Width, msg.Height)
		m.load()
	}
	return m, nil
}

// View renders the title, the table, the stats line and the help bar.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardEmptyStyle.Render("No scores recorded yet.\nSurvive a run to set a high score!")
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES - "+m.title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(boardStatsStyle.Render(centerText(line, m.width)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarises all recorded runs.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("runs %d  best %d  avg %.0f  longest %d frames  sacrifices %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LongestRun, m.stats.TotalSacrifices)
}

// IsGoingBack reports whether the table was closed with a back key.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the table in its own program until back or quit.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, title, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: scoreboard: %w", err)
	}
	return nil
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
