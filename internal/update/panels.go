package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/vaultos/internal/model"
	"github.com/sandeepkv93/vaultos/internal/views"
)

func (m Model) renderActivePanel() string {
	switch m.Tabs.Active() {
	case PanelChecklist:
		return m.renderChecklistView()
	case PanelLogs:
		return views.RenderLogsPanel(logsPanelData(m.State))
	default:
		if form := m.activeForm(); form != nil {
			return m.renderCategoryView(*form)
		}
	}
	return ""
}

func (m Model) renderChecklistView() string {
	items := make([]views.ChecklistItemData, 0, len(m.taskIDs))
	for _, id := range m.taskIDs {
		items = append(items, views.ChecklistItemData{ID: id, Label: checklistLabels[id], Done: m.State.Tasks[id]})
	}
	p := m.progress()
	return views.RenderChecklistPanel(views.ChecklistPanelData{
		Items:        items,
		Cursor:       m.ChecklistCursor,
		ProgressView: p.Bar(),
		ProgressText: p.Label(),
	})
}

func (m Model) renderCategoryView(form CategoryForm) string {
	focus := ""
	if form.Editing {
		focus = string(form.Focus)
	}
	preview := ""
	if form.Preview != "" {
		preview = m.previewViewport.View()
	}
	return views.RenderCategoryPanel(views.CategoryPanelData{
		Label:       form.Spec.Label,
		Template:    form.Spec.Template,
		InputView:   form.Input.View(),
		ReviewView:  form.Review.View(),
		Focus:       focus,
		Relaxed:     form.Spec.Relaxed,
		CanFinalize: form.Spec.Name == model.CategoryPM,
		Preview:     preview,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderBusy() string {
	if m.pending == 0 {
		return ""
	}
	return m.busySpinner.View() + " working"
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func logsPanelData(state model.AppState) views.LogsPanelData {
	return views.LogsPanelData{
		DecisionLog: logItems(state.DecisionLog),
		ParkingLot:  logItems(state.ParkingLot),
	}
}

func logItems(entries []model.LogEntry) []views.LogItemData {
	out := make([]views.LogItemData, 0, len(entries))
	for _, e := range entries {
		out = append(out, views.LogItemData{Idea: e.Idea, Decision: e.Decision, Timestamp: e.Timestamp})
	}
	return out
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
