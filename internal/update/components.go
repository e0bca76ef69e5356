package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/vaultos/internal/model"
)

var checklistLabels = map[string]string{
	"1": "Project constitution reviewed",
	"2": "Co-CEO review of the idea",
	"3": "PM blueprint finalized",
	"4": "Engineer build passed code review",
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.checklistBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(32), progress.WithoutPercentage())

	m.busySpinner = spinner.New()
	m.busySpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.previewViewport = viewport.New(96, 12)

	m.Forms = make([]CategoryForm, 0, len(model.Categories))
	for _, spec := range model.Categories {
		m.Forms = append(m.Forms, newCategoryForm(spec))
	}
}

func newCategoryForm(spec model.CategorySpec) CategoryForm {
	input := textarea.New()
	input.ShowLineNumbers = false
	input.SetWidth(94)
	input.SetHeight(3)
	input.Placeholder = spec.Placeholder

	review := textarea.New()
	review.ShowLineNumbers = false
	review.SetWidth(94)
	review.SetHeight(6)
	review.Placeholder = "paste the review here, ending with **- 최종 결정:** [채택]"

	return CategoryForm{Spec: spec, Input: input, Review: review, Focus: FieldInput}
}

func (f *CategoryForm) focused() *textarea.Model {
	if f.Focus == FieldReview {
		return &f.Review
	}
	return &f.Input
}

func (f *CategoryForm) startEditing(field FormField) {
	f.Focus = field
	f.Editing = true
	f.Input.Blur()
	f.Review.Blur()
	f.focused().Focus()
}

func (f *CategoryForm) stopEditing() {
	f.Editing = false
	f.Input.Blur()
	f.Review.Blur()
}

func (f *CategoryForm) switchField() {
	next := FieldReview
	if f.Focus == FieldReview {
		next = FieldInput
	}
	f.startEditing(next)
}

func (f *CategoryForm) clear() {
	f.Input.Reset()
	f.Review.Reset()
}

// formFor returns the form whose category matches name, or nil.
func (m *Model) formFor(name string) *CategoryForm {
	spec, _ := model.LookupCategory(name)
	for i := range m.Forms {
		if m.Forms[i].Spec.Name == spec.Name {
			return &m.Forms[i]
		}
	}
	return nil
}

// activeForm returns the form behind the active panel, or nil on the
// checklist and logs panels.
func (m *Model) activeForm() *CategoryForm {
	return m.formFor(string(m.Tabs.Active()))
}

// syncBubbleData pushes model state into the bubble components that keep
// their own copies.
func (m *Model) syncBubbleData() {
	if m.ChecklistCursor >= len(m.taskIDs) {
		m.ChecklistCursor = len(m.taskIDs) - 1
	}
	if m.ChecklistCursor < 0 {
		m.ChecklistCursor = 0
	}
	preview := ""
	if f := m.activeForm(); f != nil {
		preview = f.Preview
	}
	if preview != m.previewShown {
		m.previewViewport.SetContent(preview)
		m.previewViewport.GotoTop()
		m.previewShown = preview
	}
}
