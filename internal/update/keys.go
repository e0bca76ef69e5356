package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vaultos/internal/app"
	"github.com/sandeepkv93/vaultos/internal/views"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	if m.Palette.Active {
		if keyStr == m.Keys.Help {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handlePaletteKey(msg)
	}

	if m.SWOT.Open {
		switch keyStr {
		case "esc", "x", m.Keys.SWOT:
			m.SWOT.Close()
			m.Status = StatusBar{Text: "swot closed"}
		}
		return m, nil
	}

	if form := m.activeForm(); form != nil && form.Editing {
		return m.handleEditingKey(form, msg)
	}

	switch keyStr {
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.Focus()
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.SWOT:
		m.SWOT.Toggle()
		m.Status = StatusBar{Text: "swot opened"}
		return m, nil
	case "tab":
		m.Tabs.Next()
		return m, nil
	case "shift+tab":
		m.Tabs.Prev()
		return m, nil
	case "1", "2", "3", "4", "5", "6":
		m.Tabs.SelectIndex(int(keyStr[0] - '1'))
		return m, nil
	case "ctrl+r":
		return m.reload()
	case m.Keys.Copy, m.Keys.Log, m.Keys.Finalize:
		if form := m.activeForm(); form != nil {
			return m.handleFormAction(form, keyStr)
		}
		return m, nil
	}

	switch m.Tabs.Active() {
	case PanelChecklist:
		return m.handleChecklistKey(keyStr)
	case PanelLogs:
		return m, nil
	default:
		if form := m.activeForm(); form != nil {
			return m.handleFormKey(form, msg)
		}
	}
	return m, nil
}

func (m Model) handleChecklistKey(keyStr string) (Model, tea.Cmd) {
	switch keyStr {
	case "j", "down":
		if m.ChecklistCursor < len(m.taskIDs)-1 {
			m.ChecklistCursor++
		}
	case "k", "up":
		if m.ChecklistCursor > 0 {
			m.ChecklistCursor--
		}
	case " ", "enter":
		if m.ChecklistCursor < len(m.taskIDs) {
			return m.toggleTask(m.taskIDs[m.ChecklistCursor])
		}
	}
	return m, nil
}

func (m Model) handleFormKey(form *CategoryForm, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "i":
		form.startEditing(FieldInput)
	case "r":
		form.startEditing(FieldReview)
	case "enter":
		form.startEditing(form.Focus)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.previewViewport, cmd = m.previewViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleEditingKey(form *CategoryForm, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch keyStr := msg.String(); keyStr {
	case "esc":
		form.stopEditing()
		return m, nil
	case "tab":
		form.switchField()
		return m, nil
	case m.Keys.Copy, m.Keys.Log, m.Keys.Finalize:
		return m.handleFormAction(form, keyStr)
	}
	var cmd tea.Cmd
	field := form.focused()
	*field, cmd = field.Update(msg)
	return m, cmd
}

func (m Model) handleFormAction(form *CategoryForm, keyStr string) (Model, tea.Cmd) {
	switch keyStr {
	case m.Keys.Copy:
		return m.copyPrompt(string(form.Spec.Name))
	case m.Keys.Log:
		return m.logDecision(string(form.Spec.Name))
	case m.Keys.Finalize:
		if m.Tabs.Active() == PanelPM {
			return m.finalizeBlueprint()
		}
	}
	return m, nil
}

func (m Model) toggleTask(id string) (Model, tea.Cmd) {
	if m.ws == nil {
		m.fail(errNoWorkspace)
		return m, nil
	}
	return m, m.startCmd(toggleTaskCmd(m.ctx, m.ws, id))
}

func (m Model) copyPrompt(category string) (Model, tea.Cmd) {
	form := m.formFor(category)
	if m.ws == nil || form == nil {
		m.fail(errNoWorkspace)
		return m, nil
	}
	m.Status = StatusBar{Text: fmt.Sprintf("assembling %s prompt", category)}
	return m, m.startCmd(copyPromptCmd(m.ctx, m.ws, category, form.Input.Value()))
}

func (m Model) logDecision(category string) (Model, tea.Cmd) {
	form := m.formFor(category)
	if m.ws == nil || form == nil {
		m.fail(errNoWorkspace)
		return m, nil
	}
	return m, m.startCmd(logDecisionCmd(m.ctx, m.ws, category, form.Input.Value(), form.Review.Value()))
}

// finalizeBlueprint moves the PM review output into the engineer input and
// switches to the engineer panel.
func (m Model) finalizeBlueprint() (Model, tea.Cmd) {
	pm := m.formFor(string(PanelPM))
	engineer := m.formFor(string(PanelEngineer))
	if pm == nil || engineer == nil {
		return m, nil
	}
	blueprint, err := app.FinalizeBlueprint(pm.Review.Value())
	if err != nil {
		m.fail(err)
		return m, nil
	}
	pm.stopEditing()
	engineer.Input.SetValue(blueprint)
	engineer.Focus = FieldInput
	m.Tabs.Select(PanelEngineer)
	m.Status = StatusBar{Text: "blueprint sent to engineer"}
	m.notify("Blueprint", "PM blueprint sent to engineer", "info")
	return m, nil
}

func (m Model) reload() (Model, tea.Cmd) {
	if m.ws == nil {
		m.fail(errNoWorkspace)
		return m, nil
	}
	m.Status = StatusBar{Text: "reloading state"}
	return m, m.startCmd(loadStateCmd(m.ctx, m.ws))
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	if m.SWOT.Open {
		if m.SWOT.ClickAt(msg.X, msg.Y, m.modalBounds()) {
			m.Status = StatusBar{Text: "swot closed"}
		}
		return m
	}
	if msg.Y == tabBarRow {
		if idx := views.ClickedTab(m.tabData(), msg.X); idx >= 0 {
			panels := m.Tabs.Panels()
			m.selectPanel(panels[idx])
		}
	}
	return m
}
