package update

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vaultos/internal/storage"
)

var errNoWorkspace = errors.New("update: workspace not configured")

func loadStateCmd(ctx context.Context, ws Workspace) tea.Cmd {
	return func() tea.Msg {
		state, err := ws.Load(ctx)
		return StateLoadedMsg{State: state, Err: err}
	}
}

func toggleTaskCmd(ctx context.Context, ws Workspace, id string) tea.Cmd {
	return func() tea.Msg {
		state, err := ws.ToggleTask(ctx, id)
		if err != nil && !errors.Is(err, storage.ErrPersistence) {
			return AppErrorMsg{Err: err}
		}
		status := fmt.Sprintf("task %s: open", id)
		if state.Tasks[id] {
			status = fmt.Sprintf("task %s: done", id)
		}
		return StateChangedMsg{State: state, Status: status, Err: err}
	}
}

// logDecisionCmd reports validation and extraction failures as AppErrorMsg.
// A failed save still yields DecisionLoggedMsg because the entry is kept in
// memory.
func logDecisionCmd(ctx context.Context, ws Workspace, category, idea, review string) tea.Cmd {
	return func() tea.Msg {
		decision, state, err := ws.LogDecision(ctx, category, idea, review)
		if err != nil && !errors.Is(err, storage.ErrPersistence) {
			return AppErrorMsg{Err: err}
		}
		return DecisionLoggedMsg{Decision: decision, State: state, Err: err}
	}
}

func copyPromptCmd(ctx context.Context, ws Workspace, category, input string) tea.Cmd {
	return func() tea.Msg {
		text, err := ws.CopyPrompt(ctx, category, input)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return PromptCopiedMsg{Category: category, Text: text}
	}
}

// startCmd marks an operation in flight and returns cmd alongside the
// spinner tick when it is the first one.
func (m *Model) startCmd(cmd tea.Cmd) tea.Cmd {
	m.pending++
	if m.pending == 1 {
		return tea.Batch(cmd, m.busySpinner.Tick)
	}
	return cmd
}

func (m *Model) finishCmd() {
	if m.pending > 0 {
		m.pending--
	}
}
