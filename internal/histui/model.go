// Package histui provides the Bubble Tea run history interface.
package histui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lexiscan/internal/model"
	"github.com/verte-zerg/lexiscan/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the Bubble Tea run history UI.
type Model struct {
	store  *store.Store
	filter model.RunsFilter

	runs   []model.RunAggregate
	errMsg string

	runsTable  table.Model
	detail     viewport.Model
	detailMode bool
	detailRun  model.RunAggregate

	width  int
	height int
}

// NewModel constructs a history UI model.
func NewModel(st *store.Store, filter model.RunsFilter) *Model {
	m := &Model{
		store:  st,
		filter: filter,
		detail: viewport.New(0, 0),
	}
	m.runsTable = buildRunsTable(nil, 1)
	m.refreshRuns()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.detailMode {
			return m.updateDetail(msg)
		}
		switch msg.String() {
		case "enter":
			return m.openDetail()
		case "g", "home":
			m.runsTable.GotoTop()
			return m, nil
		case "G", "end":
			m.runsTable.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.runsTable, cmd = m.runsTable.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderHeader()
	footer := m.renderFooter()
	var body string
	switch {
	case m.detailMode:
		body = m.detail.View()
	case len(m.runs) == 0:
		body = "No runs found."
	default:
		body = m.runsTable.View()
	}
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc || msg.String() == "enter" {
		m.detailMode = false
		return m, tea.ClearScreen
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *Model) openDetail() (tea.Model, tea.Cmd) {
	cursor := m.runsTable.Cursor()
	if cursor < 0 || cursor >= len(m.runs) {
		return m, nil
	}
	run := m.runs[cursor]
	words, err := m.store.GetRunWords(context.Background(), run.RunID)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load run words: %v", err)
		return m, nil
	}
	m.errMsg = ""
	m.detailRun = run
	m.detailMode = true
	m.detail.SetContent(renderDetail(run, words))
	m.detail.GotoTop()
	return m, tea.ClearScreen
}

func (m *Model) refreshRuns() {
	runs, err := m.store.ListRuns(context.Background(), m.filter)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	// Most recent first in the table.
	reversed := make([]model.RunAggregate, len(runs))
	for i, run := range runs {
		reversed[len(runs)-1-i] = run
	}
	m.runs = reversed
	m.runsTable = buildRunsTable(m.runs, bodyHeight(m.height))
	m.runsTable.Focus()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	height := bodyHeight(m.height)
	m.runsTable.SetWidth(m.width)
	m.runsTable.SetHeight(height)
	m.detail.Width = m.width
	m.detail.Height = height
}

func (m *Model) renderHeader() string {
	if m.detailMode {
		return titleStyle.Render(fmt.Sprintf("Run %d / %s", m.detailRun.RunID, m.detailRun.Source))
	}
	return titleStyle.Render("Analysis Runs")
}

func (m *Model) renderFooter() string {
	help := "Scroll: up/down  Detail: enter  Quit: q"
	if m.detailMode {
		help = "Scroll: up/down  Back: esc  Quit: q"
	}
	if m.errMsg != "" {
		return headerStyle.Render(help) + "\n" + errorStyle.Render(m.errMsg)
	}
	return headerStyle.Render(help)
}

func renderDetail(run model.RunAggregate, words []model.WordCount) string {
	lines := []string{
		fmt.Sprintf("Started: %s", run.StartedAt.Local().Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Input bytes: %d", run.InputBytes),
		fmt.Sprintf("Alphabetic chars: %d", run.AlphaChars),
		fmt.Sprintf("Unique words: %d", run.UniqueWords),
		fmt.Sprintf("Duration: %d ms", run.DurationMs),
		"",
		"Top words:",
	}
	if len(words) == 0 {
		lines = append(lines, mutedStyle.Render("none recorded"))
	}
	for i, wc := range words {
		lines = append(lines, fmt.Sprintf("%2d. %-20s %d", i+1, wc.Word, wc.Count))
	}
	return strings.Join(lines, "\n")
}

func buildRunsTable(runs []model.RunAggregate, height int) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Started", Width: 19},
		{Title: "Source", Width: 24},
		{Title: "Bytes", Width: 10},
		{Title: "Unique", Width: 7},
		{Title: "ms", Width: 6},
	}
	rows := make([]table.Row, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, table.Row{
			strconv.FormatInt(run.RunID, 10),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Source,
			strconv.Itoa(run.InputBytes),
			strconv.Itoa(run.UniqueWords),
			strconv.FormatInt(run.DurationMs, 10),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
	)
	t.SetStyles(runsTableStyles())
	return t
}

func runsTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func bodyHeight(total int) int {
	// Header and footer each take one line.
	return maxInt(1, total-2)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
