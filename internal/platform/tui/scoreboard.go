package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-taxi/internal/registry"
	"github.com/vovakirdan/tui-taxi/internal/storage"
)

const (
	statsPanelMinWidth = 90 // below this the stats panel is folded into one line
	statsPanelWidth    = 26
	scoreboardRows     = 100
)

// boardView selects which runs the scoreboard lists.
type boardView int

const (
	viewBest boardView = iota
	viewRecent
)

func (v boardView) String() string {
	if v == viewRecent {
		return "RECENT RUNS"
	}
	return "TOP FARES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextMode   key.Binding
	PrevMode   key.Binding
	ToggleView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.ToggleView, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.ToggleView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextMode:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		ToggleView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardWinStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// ScoreboardModel lists recorded runs per mode, best or most recent first.
type ScoreboardModel struct {
	modes   []registry.GameInfo
	mode    int
	view    boardView
	store   *storage.Store
	entries []storage.ScoreEntry
	stats   *storage.GameStats
	loadErr error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard over store. A nil store shows an
// empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= statsPanelMinWidth
}

func (m ScoreboardModel) newTable() table.Model {
	driverW := 12
	avail := m.width - 8
	if m.wide() {
		avail -= statsPanelWidth + 4
	}
	// Rank, earnings, result and date columns plus cell padding
	if spare := avail - 55; spare > 0 {
		driverW += min(spare, 12)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Driver", Width: driverW},
			{Title: "Earnings", Width: 10},
			{Title: "Result", Width: 6},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// currentMode returns the selected mode id, or "" with no modes registered.
func (m ScoreboardModel) currentMode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// reload fetches entries and stats for the selected mode and view.
func (m *ScoreboardModel) reload() {
	m.entries, m.stats, m.loadErr = nil, nil, nil
	id := m.currentMode()
	if m.store != nil && id != "" {
		if m.view == viewRecent {
			m.entries, m.loadErr = m.store.RecentScores(id, scoreboardRows)
		} else {
			m.entries, m.loadErr = m.store.TopScores(id, scoreboardRows)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.entries))
	for i, e := range m.entries {
		result := "-"
		if e.Won {
			result = "WIN"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Player,
			fmt.Sprintf("$%.2f", e.Earnings),
			result,
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	return rows
}

func (m *ScoreboardModel) stepMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
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
		case key.Matches(msg, m.keys.NextMode):
			m.stepMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.stepMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.ToggleView):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(m.rows())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(m.view.String()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.modeTabs(), m.width))
	b.WriteString("\n\n")

	board := boardBoxStyle.Render(m.boardContent())
	if m.wide() {
		panel := boardBoxStyle.Width(statsPanelWidth).Render(m.statsPanel())
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel), m.width))
	} else {
		b.WriteString(centerText(board, m.width))
		if line := m.statsLine(); line != "" {
			b.WriteString("\n")
			b.WriteString(centerText(boardMutedStyle.Render(line), m.width))
		}
	}

	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		line = boardActiveTab.Render("< " + m.modes[m.mode].Title + " >")
	}
	return line
}

func (m ScoreboardModel) boardContent() string {
	switch {
	case m.store == nil:
		return boardMutedStyle.Italic(true).Padding(2, 4).Render("Scores are not being recorded.")
	case m.loadErr != nil:
		return boardMutedStyle.Italic(true).Padding(2, 4).Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.entries) == 0:
		return boardMutedStyle.Italic(true).Padding(2, 4).Render("No runs recorded yet.\nDrive a shift to set a record!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsPanel() string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Stats"))
	b.WriteString("\n\n")
	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString(boardMutedStyle.Render("No runs yet"))
		return b.String()
	}

	s := m.stats
	winRate := float64(s.Wins) / float64(s.GamesCount) * 100
	fields := []struct{ label, value string }{
		{"Runs", fmt.Sprintf("%d", s.GamesCount)},
		{"Wins", boardWinStyle.Render(fmt.Sprintf("%d (%.0f%%)", s.Wins, winRate))},
		{"Best", fmt.Sprintf("$%.2f", s.BestEarnings)},
		{"Average", fmt.Sprintf("$%.2f", s.AvgEarnings)},
		{"Total", fmt.Sprintf("$%.2f", s.TotalEarnings)},
	}
	if !s.LastPlayed.IsZero() {
		fields = append(fields, struct{ label, value string }{"Last", s.LastPlayed.Local().Format("Jan 02 15:04")})
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%-8s %s\n", f.label, f.value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// statsLine is the one-line summary used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  %d wins  best $%.2f  avg $%.2f",
		m.stats.GamesCount, m.stats.Wins, m.stats.BestEarnings, m.stats.AvgEarnings)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the user leaves it.
// goBack is true when the user wants the menu again rather than to quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
