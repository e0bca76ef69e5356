package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/vaultos/internal/model"
	"github.com/sandeepkv93/vaultos/internal/prompt"
	"github.com/sandeepkv93/vaultos/internal/storage"
	"go.uber.org/zap"
)

// Workspace ties the state store to the decision and prompt workflows. The
// TUI and the CLI commands both drive it.
type Workspace struct {
	Store     *storage.Store
	Assembler *prompt.Assembler
	Clipboard prompt.Clipboard
	Logger    *zap.Logger
	Now       func() time.Time
}

func (w *Workspace) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w *Workspace) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

func (w *Workspace) Load(ctx context.Context) (model.AppState, error) {
	return w.Store.Load(ctx)
}

func (w *Workspace) Progress() model.Progress {
	return model.ProgressFor(w.Store.Snapshot().Tasks, w.Store.TaskIDs())
}

func (w *Workspace) SetTask(ctx context.Context, id string, done bool) (model.AppState, error) {
	if err := w.checkTask(id); err != nil {
		return w.Store.Snapshot(), err
	}
	state, err := w.Store.Mutate(ctx, func(s *model.AppState) error {
		return s.SetTask(id, done)
	})
	if err == nil {
		w.logger().Info("task updated", zap.String("task", id), zap.Bool("done", done))
	}
	return state, err
}

func (w *Workspace) ToggleTask(ctx context.Context, id string) (model.AppState, error) {
	if err := w.checkTask(id); err != nil {
		return w.Store.Snapshot(), err
	}
	var done bool
	state, err := w.Store.Mutate(ctx, func(s *model.AppState) error {
		done = !s.Tasks[id]
		return s.SetTask(id, done)
	})
	if err == nil {
		w.logger().Info("task toggled", zap.String("task", id), zap.Bool("done", done))
	}
	return state, err
}

func (w *Workspace) checkTask(id string) error {
	for _, known := range w.Store.TaskIDs() {
		if known == id {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown checklist item %q", model.ErrValidation, id)
}

// LogDecision extracts the final decision from review and records it in the
// log the category routes it to. State is untouched on validation or
// extraction failure.
func (w *Workspace) LogDecision(ctx context.Context, category, idea, review string) (model.Decision, model.AppState, error) {
	spec, _ := model.LookupCategory(category)
	decision, err := model.NewDecision(spec, idea, review, w.now())
	if err != nil {
		return model.Decision{}, w.Store.Snapshot(), err
	}
	state, err := w.Store.Mutate(ctx, func(s *model.AppState) error {
		return s.Record(decision.Target, decision.Entry)
	})
	if err == nil {
		w.logger().Info("decision logged",
			zap.String("category", string(decision.Category)),
			zap.String("decision", decision.Entry.Decision),
			zap.String("log", string(decision.Target)),
		)
	}
	return decision, state, err
}

func (w *Workspace) CopyPrompt(ctx context.Context, category, input string) (string, error) {
	if w.Clipboard == nil {
		return "", fmt.Errorf("prompt: clipboard not configured")
	}
	return w.Assembler.Copy(ctx, w.Clipboard, category, input)
}

// FinalizeBlueprint hands the PM's finished spec to the engineer step.
func FinalizeBlueprint(pmOutput string) (string, error) {
	blueprint := strings.TrimSpace(pmOutput)
	if blueprint == "" {
		return "", fmt.Errorf("%w: PM blueprint is empty", model.ErrValidation)
	}
	return blueprint, nil
}
