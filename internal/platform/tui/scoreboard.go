package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reef-runner/internal/storage"
)

// boardSize is the number of runs loaded into the table.
const boardSize = 100

var (
	boardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	boardStats = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("24")).
			Padding(0, 1)
	boardEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardHelp  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// BoardKeys are the scoreboard bindings.
type BoardKeys struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k BoardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k BoardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

// DefaultBoardKeys returns the default scoreboard bindings.
func DefaultBoardKeys() BoardKeys {
	return BoardKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Scoreboard lists the best runs with the aggregate stats above them.
type Scoreboard struct {
	store  *storage.Store
	runs   []storage.Run
	stats  *storage.RunStats
	err    error
	table  table.Model
	help   help.Model
	keys   BoardKeys
	width  int
	height int
	done   bool
}

// NewScoreboard loads the run history from store.
func NewScoreboard(store *storage.Store, width, height int) Scoreboard {
	b := Scoreboard{
		store:  store,
		keys:   DefaultBoardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	b.table = newRunTable(width, height)
	b.reload()
	return b
}

// newRunTable builds an empty table sized to the window.
func newRunTable(width, height int) table.Model {
	dateW := 14
	if width > 60 {
		dateW = min(width-46, 20)
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Speed", Width: 6},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (b *Scoreboard) reload() {
	b.runs, b.stats, b.err = nil, nil, nil
	if b.store != nil {
		if b.runs, b.err = b.store.TopRuns(boardSize); b.err == nil {
			b.stats, b.err = b.store.Stats()
		}
	}
	b.table.SetRows(RunRows(b.runs))
	b.table.GotoTop()
}

// RunRows formats runs as table rows in the given order.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%05d", r.Score),
			fmt.Sprintf("%.1f", r.Speed),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// StatsLine summarizes the run history in one line.
func StatsLine(s *storage.RunStats) string {
	if s == nil || s.Runs == 0 {
		return "Runs: 0"
	}
	line := fmt.Sprintf("Runs: %d  Best: %05d  Avg: %.0f  Top speed: %.1f  Time: %s",
		s.Runs, s.Best, s.Average, s.TopSpeed, formatDuration(s.TotalTime))
	if !s.LastPlayed.IsZero() {
		line += "  Last: " + s.LastPlayed.Format("Jan 02 15:04")
	}
	return line
}

// Init implements tea.Model.
func (b Scoreboard) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (b Scoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			b.done = true
			return b, tea.Quit
		case key.Matches(msg, b.keys.Refresh):
			b.reload()
			return b, nil
		}

	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.table = newRunTable(msg.Width, msg.Height)
		b.table.SetRows(RunRows(b.runs))
		b.help.Width = msg.Width
		return b, nil
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b Scoreboard) View() string {
	if b.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(boardTitle.Render(center("REEF RUNNER - BEST RUNS", b.width)))
	sb.WriteString("\n\n")
	sb.WriteString(boardStats.Render(center(StatsLine(b.stats), b.width)))
	sb.WriteString("\n\n")

	switch {
	case b.err != nil:
		sb.WriteString(boardFrame.Render(boardEmpty.Render("Runs unavailable:\n" + b.err.Error())))
	case len(b.runs) == 0:
		sb.WriteString(boardFrame.Render(boardEmpty.Render("No runs recorded yet.\nSwim to set a high score!")))
	default:
		sb.WriteString(boardFrame.Render(b.table.View()))
	}

	sb.WriteString("\n")
	sb.WriteString(boardHelp.Render(b.help.View(b.keys)))
	return sb.String()
}

// center pads text on the left to center it in width columns.
func center(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return strings.Repeat(" ", (width-w)/2) + text
	}
	return text
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboard(store, width, height), tea.WithAltScreen()).Run()
	return err
}
