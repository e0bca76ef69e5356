package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vaultos/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		m.commandInput, _ = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m, nil
	}

	var follow tea.Cmd
	m.Status = StatusBar{}
	res, err := commands.Execute(cmd, commands.Handlers{
		Tab: func(a commands.TabArgs) (commands.Result, error) {
			id := PanelID(a.Panel)
			if !isKnownPanel(id) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown panel: %s", a.Panel)}
			}
			m.selectPanel(id)
			return commands.Result{Message: fmt.Sprintf("switched to %s", panelLabels[id])}, nil
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			if !contains(m.taskIDs, a.TaskID) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown task: %s", a.TaskID)}
			}
			m, follow = m.toggleTask(a.TaskID)
			return commands.Result{Message: fmt.Sprintf("toggling task %s", a.TaskID)}, nil
		},
		Copy: func(a commands.CategoryArgs) (commands.Result, error) {
			category, err := m.resolveCategory(a.Category)
			if err != nil {
				return commands.Result{}, err
			}
			m, follow = m.copyPrompt(category)
			return commands.Result{Message: fmt.Sprintf("assembling %s prompt", category)}, nil
		},
		Log: func(a commands.CategoryArgs) (commands.Result, error) {
			category, err := m.resolveCategory(a.Category)
			if err != nil {
				return commands.Result{}, err
			}
			m, follow = m.logDecision(category)
			return commands.Result{Message: fmt.Sprintf("logging %s decision", category)}, nil
		},
		SWOT: func() (commands.Result, error) {
			m.SWOT.Toggle()
			if m.SWOT.Open {
				return commands.Result{Message: "swot opened"}, nil
			}
			return commands.Result{Message: "swot closed"}, nil
		},
		Reload: func() (commands.Result, error) {
			m, follow = m.reload()
			return commands.Result{Message: "reloading state"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else if !m.Status.IsError {
		m.Status = StatusBar{Text: res.Message}
		m.notify("Command", res.Message, "info")
	}

	m.closePalette()
	return m, follow
}

// resolveCategory falls back to the active panel when name is empty.
func (m *Model) resolveCategory(name string) (string, error) {
	if name == "" {
		form := m.activeForm()
		if form == nil {
			return "", &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no category panel is active"}
		}
		return string(form.Spec.Name), nil
	}
	if m.formFor(name) == nil {
		return "", &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown category: %s", name)}
	}
	return name, nil
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
