package views

import (
	"fmt"
	"strings"
)

type ChecklistItemData struct {
	ID    string
	Label string
	Done  bool
}

type ChecklistPanelData struct {
	Items        []ChecklistItemData
	Cursor       int
	ProgressView string
	ProgressText string
}

type CategoryPanelData struct {
	Label       string
	Template    string
	InputView   string
	ReviewView  string
	Focus       string
	Relaxed     bool
	CanFinalize bool
	Preview     string
}

type LogItemData struct {
	Idea      string
	Decision  string
	Timestamp string
}

type LogsPanelData struct {
	DecisionLog []LogItemData
	ParkingLot  []LogItemData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

const (
	EmptyDecisionLogText = "결정된 아이디어가 없습니다."
	EmptyParkingLotText  = "보류된 아이디어가 없습니다."
)

func RenderProgress(barView, label string) string {
	return fmt.Sprintf("progress: %s %s", barView, label)
}

func RenderChecklistPanel(data ChecklistPanelData) string {
	var b strings.Builder
	b.WriteString("launch checklist:\n")
	b.WriteString("actions: [j/k]move [space]toggle\n")
	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		mark := " "
		if item.Done {
			mark = "x"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s. %s\n", cursor, mark, item.ID, item.Label))
	}
	if data.ProgressView != "" {
		b.WriteString(fmt.Sprintf("\n%s %s", data.ProgressView, data.ProgressText))
	}
	return strings.TrimSpace(b.String())
}

func RenderCategoryPanel(data CategoryPanelData) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(data.Label) + ":\n")
	b.WriteString(fmt.Sprintf("template: %s\n", data.Template))
	actions := "actions: [tab]field [ctrl+y]copy prompt [ctrl+l]log decision"
	if data.CanFinalize {
		actions += " [ctrl+f]finalize blueprint"
	}
	b.WriteString(actions + "\n")
	if data.Relaxed {
		b.WriteString("note: reviews without a final decision are parked for re-review\n")
	}
	b.WriteString("\n" + fieldMarker(data.Focus == "input") + " idea / input:\n")
	b.WriteString(data.InputView + "\n")
	b.WriteString("\n" + fieldMarker(data.Focus == "review") + " review output:\n")
	b.WriteString(data.ReviewView)
	if strings.TrimSpace(data.Preview) != "" {
		b.WriteString("\n\nprompt-preview:\n")
		b.WriteString(data.Preview)
	}
	return strings.TrimSpace(b.String())
}

func RenderLogsPanel(data LogsPanelData) string {
	var b strings.Builder
	b.WriteString("decision log:\n")
	renderLogSection(&b, data.DecisionLog, EmptyDecisionLogText)
	b.WriteString("\nparking lot:\n")
	renderLogSection(&b, data.ParkingLot, EmptyParkingLotText)
	return strings.TrimSpace(b.String())
}

func RenderSWOTModal() string {
	return strings.Join([]string{
		"SWOT analysis",
		"",
		"S  Strengths      what the idea does better than the alternatives",
		"W  Weaknesses     where it is thin: cost, scope, missing skills",
		"O  Opportunities  trends or gaps the idea can exploit",
		"T  Threats        competitors, regulation, dependencies",
		"",
		"[esc/x] close",
	}, "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderLogSection(b *strings.Builder, items []LogItemData, empty string) {
	if len(items) == 0 {
		b.WriteString("  " + empty + "\n")
		return
	}
	for _, item := range items {
		b.WriteString(fmt.Sprintf("- %s: %s (%s)\n", item.Decision, item.Idea, item.Timestamp))
	}
}

func fieldMarker(focused bool) string {
	if focused {
		return ">"
	}
	return " "
}
