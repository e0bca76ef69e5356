package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/vaultos/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.panelBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.Tabs.Active()),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "1-6", Action: "switch panel"},
		{Key: "tab/shift+tab", Action: "next / previous panel"},
		{Key: m.Keys.SWOT, Action: "toggle SWOT modal"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: "ctrl+r", Action: "reload state"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) panelBindings() []KeyBinding {
	switch m.Tabs.Active() {
	case PanelChecklist:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle item"},
		}
	case PanelLogs:
		return []KeyBinding{{Key: "-", Action: "read-only view"}}
	}
	out := []KeyBinding{
		{Key: "i/r", Action: "edit input / review"},
		{Key: "tab", Action: "switch field while editing"},
		{Key: "esc", Action: "stop editing"},
		{Key: m.Keys.Copy, Action: "copy assembled prompt"},
		{Key: m.Keys.Log, Action: "log final decision"},
		{Key: "pgup/pgdown", Action: "scroll prompt preview"},
	}
	if m.Tabs.Active() == PanelPM {
		out = append(out, KeyBinding{Key: m.Keys.Finalize, Action: "send blueprint to engineer"})
	}
	return out
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.panelBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.panelBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
