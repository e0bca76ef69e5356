package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/vaultos/internal/model"
	"github.com/sandeepkv93/vaultos/internal/views"
	"go.uber.org/zap"
)

const (
	tabBarRow   = 2
	bodyOriginX = 2
	bodyOriginY = 4
)

func (m Model) Init() tea.Cmd {
	if m.ws == nil {
		return nil
	}
	return tea.Batch(loadStateCmd(m.ctx, m.ws), m.busySpinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.Height = typed.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.MouseMsg:
		return m.handleMouse(typed), nil
	case spinner.TickMsg:
		if m.pending > 0 {
			var cmd tea.Cmd
			m.busySpinner, cmd = m.busySpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case SwitchPanelMsg:
		m.selectPanel(typed.Panel)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.finishCmd()
		m.fail(typed.Err)
		return m, nil
	case StateLoadedMsg:
		m.finishCmd()
		m.State = typed.State
		m.Loaded = true
		if typed.Err != nil {
			m.fail(typed.Err)
			return m, nil
		}
		m.Status = StatusBar{Text: fmt.Sprintf("state loaded: %d decided, %d parked", len(m.State.DecisionLog), len(m.State.ParkingLot))}
		return m, nil
	case StateChangedMsg:
		m.finishCmd()
		m.State = typed.State
		if typed.Err != nil {
			m.fail(typed.Err)
			return m, nil
		}
		m.Status = StatusBar{Text: typed.Status}
		return m, nil
	case DecisionLoggedMsg:
		m.finishCmd()
		m.State = typed.State
		if f := m.formFor(string(typed.Decision.Category)); f != nil {
			f.clear()
			f.stopEditing()
		}
		if typed.Err != nil {
			m.fail(typed.Err)
			return m, nil
		}
		text := fmt.Sprintf("logged %s %s to %s", typed.Decision.Entry.Decision, typed.Decision.Entry.Idea, logLabel(typed.Decision.Target))
		m.Status = StatusBar{Text: text}
		m.notify("Decision", text, "info")
		return m, nil
	case PromptCopiedMsg:
		m.finishCmd()
		if f := m.formFor(typed.Category); f != nil {
			f.Preview = views.RenderMarkdown(typed.Text)
		}
		text := fmt.Sprintf("%s prompt copied to clipboard (%d chars)", typed.Category, len([]rune(typed.Text)))
		m.Status = StatusBar{Text: text}
		m.notify("Prompt", text, "info")
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	body := m.renderActivePanel()
	if m.HelpVisible {
		body = body + "\n\n" + m.renderHelpView()
	}
	modal := ""
	if m.SWOT.Open {
		modal = views.RenderModal(views.RenderSWOTModal())
	}
	notificationView := strings.TrimSpace(strings.Join([]string{
		m.renderCommandPalette(),
		m.renderBusy(),
		m.renderNotificationsView(),
	}, "\n"))

	p := m.progress()
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("vaultos | panel: %s | decided: %d | parked: %d", panelLabels[m.Tabs.Active()], len(m.State.DecisionLog), len(m.State.ParkingLot)),
		Progress:     views.RenderProgress(m.checklistBar.ViewAs(p.Ratio()), p.Label()),
		TabBar:       views.RenderTabBar(m.tabData(), string(m.Tabs.Active())),
		Body:         body,
		Modal:        modal,
		StatusLine:   status,
		Notification: notificationView,
		Footer:       fmt.Sprintf("keys: 1-6/tab panels | %s swot | %s cmd | %s help | %s quit", m.Keys.SWOT, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) progress() model.Progress {
	return model.ProgressFor(m.State.Tasks, m.taskIDs)
}

func (m Model) tabData() []views.TabData {
	panels := m.Tabs.Panels()
	out := make([]views.TabData, 0, len(panels))
	for _, p := range panels {
		out = append(out, views.TabData{ID: string(p), Label: panelLabels[p]})
	}
	return out
}

// modalBounds is where the SWOT modal content sits on screen.
func (m Model) modalBounds() Bounds {
	content := views.RenderModal(views.RenderSWOTModal())
	return Bounds{X: bodyOriginX, Y: bodyOriginY, Width: lipgloss.Width(content), Height: lipgloss.Height(content)}
}

func (m *Model) selectPanel(id PanelID) {
	if !isKnownPanel(id) {
		return
	}
	if f := m.activeForm(); f != nil {
		f.stopEditing()
	}
	m.Tabs.Select(id)
}

func (m *Model) fail(err error) {
	if err == nil {
		return
	}
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.notify("Error", err.Error(), "error")
	m.logger.Error("action failed", zap.String("panel", string(m.Tabs.Active())), zap.Error(err))
}

func logLabel(kind model.LogKind) string {
	if kind == model.LogParking {
		return "parking lot"
	}
	return "decision log"
}
