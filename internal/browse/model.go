// Package browse provides the Bubble Tea viewer over an analysis result.
package browse

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/layoutstat/internal/model"
	"github.com/verte-zerg/layoutstat/internal/stats"
)

const (
	tabOverview = iota
	tabNgrams
	tabHeatmap
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea result viewer.
type Model struct {
	run model.Run
	top int

	tabs      []string
	activeTab int
	viewports []viewport.Model
	table     table.Model
	tableRows int

	width  int
	height int
}

// NewModel constructs a viewer for run, listing up to top n-grams.
func NewModel(run model.Run, top int) *Model {
	m := &Model{
		run:  run,
		top:  top,
		tabs: []string{"Overview", "N-grams", "Heatmap"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.table = buildNgramTable(m.run, m.top)
	m.tableRows = len(m.table.Rows())
	m.renderTabContents()
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
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabNgrams {
				m.table.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabNgrams {
				m.table.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabNgrams {
				var cmd tea.Cmd
				m.table, cmd = m.table.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
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
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(headerStyle.Render("Nav: tab/left/right  Scroll: up/down/pgup/pgdn  Quit: q"), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.table.SetWidth(m.width)
	m.table.SetHeight(maxInt(1, bodyHeight-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabNgrams {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	name := m.run.LayoutName
	if name == "" {
		name = "custom"
	}
	corpus := m.run.CorpusPath
	if corpus == "" {
		corpus = "-"
	}
	info := fmt.Sprintf("Layout: %s  [%s]  corpus=%s  ngram=%s", name, m.run.Letters, corpus, m.run.Category)
	if m.run.ID > 0 {
		info = fmt.Sprintf("Run #%d  %s", m.run.ID, info)
	}
	return m.renderTabs() + "\n" + headerStyle.Render(truncateLine(info, m.width))
}

func (m *Model) renderBody() string {
	if m.activeTab == tabNgrams {
		if m.tableRows == 0 {
			return "No n-grams recorded. Re-run with --ngram <category>."
		}
		return tableMutedStyle.Render(m.table.View())
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(&m.run.Stats, width))
	m.viewports[tabHeatmap].SetContent(renderHeatmap(m.run))
}

func renderOverview(s *model.Stats, width int) string {
	cards := []string{
		metricCard("Score", fmt.Sprintf("%.2f", s.Score)),
		metricCard("Chars", fmt.Sprintf("%d", s.Chars)),
		metricCard("SFB", fmt.Sprintf("%.2f%%", stats.Percent(s.SFB, s.Chars))),
		metricCard("In rolls", fmt.Sprintf("%.2f%%", stats.Percent(s.InRoll+s.InThreeRoll, s.Chars))),
		metricCard("Red", fmt.Sprintf("%.2f%%", stats.Percent(s.Red+s.WeakRed, s.Chars))),
	}
	var header string
	if width < 80 {
		header = strings.Join(cards, "\n")
	} else {
		header = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, "", s); err != nil {
		return fmt.Sprintf("Failed to render summary: %v", err)
	}
	return strings.TrimRight(header+"\n\n"+buf.String(), "\n")
}

func renderHeatmap(run model.Run) string {
	var buf bytes.Buffer
	if err := stats.RenderHeatmap(&buf, run.Letters, run.Stats.Freq, true); err != nil {
		return fmt.Sprintf("Failed to render heatmap: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

// buildNgramTable lists the recorded n-grams of the run's category, or the
// weighted bad-bigram table when no category was recorded.
func buildNgramTable(run model.Run, top int) table.Model {
	var columns []table.Column
	var rows []table.Row
	if run.Category != model.CategoryNone {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "N-gram", Width: 8},
			{Title: "Count", Width: 10},
			{Title: "Share", Width: 8},
		}
		var total int64
		for _, n := range run.Stats.Ngrams {
			total += n
		}
		for i, item := range stats.TopNgrams(run.Stats.Ngrams, top) {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				stats.FormatNgram(item.Ngram),
				fmt.Sprintf("%d", item.Count),
				fmt.Sprintf("%.2f%%", stats.Percent(item.Count, total)),
			})
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Bigram", Width: 8},
			{Title: "Weight", Width: 10},
		}
		for i, item := range topBadBigrams(run.Stats.BadBigrams, top) {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				stats.FormatNgram(model.Ngram{item.pair[0], item.pair[1], model.PairPlaceholder}),
				fmt.Sprintf("%d", item.weight),
			})
		}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, len(rows))),
	)
	t.SetStyles(tableStyles())
	return t
}

type badBigram struct {
	pair   model.Bigram
	weight int64
}

func topBadBigrams(bigrams map[model.Bigram]int64, n int) []badBigram {
	out := make([]badBigram, 0, len(bigrams))
	for pair, w := range bigrams {
		out = append(out, badBigram{pair: pair, weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].weight == out[j].weight {
			return string(out[i].pair[:]) < string(out[j].pair[:])
		}
		return out[i].weight > out[j].weight
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func tableStyles() table.Styles {
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

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
