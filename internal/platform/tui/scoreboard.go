package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake3d/internal/registry"
	"github.com/vovakirdan/snake3d/internal/storage"
)

const (
	maxScores     = 100 // Rows loaded per board
	chromeHeight  = 9   // Title, tabs, borders, stats and help around the table
	playerColumns = 16  // Player column width before extra space is handed out
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextBoard: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next board")),
		PrevBoard: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev board")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "b", "ctrl+c"), key.WithHelp("q/esc", "close")),
	}
}

// ScoreboardModel shows the leaderboards, one tab per registered frontend.
type ScoreboardModel struct {
	boards   []registry.Info
	cursor   int
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    storage.BoardStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard opened on board.
// An unknown board falls back to the first one.
func NewScoreboardModel(store *storage.Store, width, height int, board string) ScoreboardModel {
	m := ScoreboardModel{
		boards: registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	for i, b := range m.boards {
		if b.ID == board {
			m.cursor = i
		}
	}

	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

// newScoreTable builds the score table for a terminal of the given size.
func newScoreTable(width, height int) table.Model {
	player := playerColumns
	if extra := width - 60; extra > 0 {
		player += min(extra, 16)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: player},
			{Title: "Score", Width: 7},
			{Title: "When", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-chromeHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// reload fetches scores and statistics for the selected board.
func (m *ScoreboardModel) reload() {
	m.scores, m.loadErr = nil, nil
	m.stats = storage.BoardStats{Board: m.Board()}

	if m.store != nil && len(m.boards) > 0 {
		m.scores, m.loadErr = m.store.TopScores(m.Board(), maxScores)
		if stats, err := m.store.Stats(m.Board()); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, e := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			e.Player,
			strconv.Itoa(e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectBoard moves the cursor to board i, wrapping around.
func (m *ScoreboardModel) selectBoard(i int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = ((i % len(m.boards)) + len(m.boards)) % len(m.boards)
	m.reload()
}

// Board returns the ID of the board being shown, or "" if none is registered.
func (m ScoreboardModel) Board() string {
	if len(m.boards) == 0 {
		return ""
	}
	return m.boards[m.cursor].ID
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
		case key.Matches(msg, m.keys.NextBoard):
			m.selectBoard(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.selectBoard(m.cursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("HIGH SCORES"),
		m.tabs(),
		panelStyle.Render(m.body()),
		mutedStyle.Render(m.statsLine()),
		m.help.View(m.keys),
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// tabs renders one tab per board with the selected one highlighted.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.boards))
	for i, b := range m.boards {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(b.Title)
		} else {
			tabs[i] = tabStyle.Render(b.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// body renders the table, or a message when there is nothing to show.
func (m ScoreboardModel) body() string {
	switch {
	case m.loadErr != nil:
		return errorStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return mutedStyle.Italic(true).Padding(1, 2).
			Render("No scores recorded yet.\nEat some fruit to set a high score!")
	}
	return m.table.View()
}

// statsLine summarizes the selected board.
func (m ScoreboardModel) statsLine() string {
	if m.stats.Runs == 0 {
		return "No runs recorded"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Runs: %d  Best: %d  Average: %.1f", m.stats.Runs, m.stats.HighScore, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "  Last played: %s", m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return b.String()
}

// RunScoreboard runs the scoreboard screen opened on the given board.
func RunScoreboard(store *storage.Store, width, height int, board string) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height, board),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
