package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	Progress     string
	TabBar       string
	Body         string
	Modal        string
	StatusLine   string
	Footer       string
	Notification string
}

type TabData struct {
	ID    string
	Label string
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("13")).Padding(1, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("7"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
)

const panelWidth = 100

func RenderApp(data AppData) string {
	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{headerStyle.Render(data.Header)}
	if data.Progress != "" {
		lines = append(lines, data.Progress)
	}
	if data.TabBar != "" {
		lines = append(lines, data.TabBar)
	}
	body := data.Body
	if data.Modal != "" {
		body = data.Modal
	}
	lines = append(lines, panelStyle.Width(panelWidth).Render(body), status)
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderTabBar draws one cell per tab, highlighting active. Cells are
// separated by a single space so ClickedTab can map columns back to tabs.
func RenderTabBar(tabs []TabData, active string) string {
	cells := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		style := tabStyle
		if tab.ID == active {
			style = activeTabStyle
		}
		cells = append(cells, style.Render(tabLabel(i, tab)))
	}
	return strings.Join(cells, " ")
}

// ClickedTab returns the index of the tab under column x of a bar drawn by
// RenderTabBar, or -1 when x falls on a separator or past the last tab.
func ClickedTab(tabs []TabData, x int) int {
	start := 0
	for i, tab := range tabs {
		width := lipgloss.Width(tabStyle.Render(tabLabel(i, tab)))
		if x >= start && x < start+width {
			return i
		}
		start += width + 1
	}
	return -1
}

func tabLabel(i int, tab TabData) string {
	return fmt.Sprintf("%d %s", i+1, tab.Label)
}

func RenderModal(content string) string {
	return modalStyle.Render(content)
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
