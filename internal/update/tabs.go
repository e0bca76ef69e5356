package update

type PanelID string

const (
	PanelChecklist    PanelID = "checklist"
	PanelCoCEO        PanelID = "co-ceo"
	PanelPM           PanelID = "pm"
	PanelEngineer     PanelID = "engineer"
	PanelCodeReviewer PanelID = "code-reviewer"
	PanelLogs         PanelID = "logs"
)

var panelLabels = map[PanelID]string{
	PanelChecklist:    "Checklist",
	PanelCoCEO:        "Co-CEO",
	PanelPM:           "PM",
	PanelEngineer:     "Engineer",
	PanelCodeReviewer: "Code Reviewer",
	PanelLogs:         "Logs",
}

// TabController keeps exactly one of a fixed, ordered set of panels active.
type TabController struct {
	panels []PanelID
	active int
}

func NewTabController() TabController {
	return TabController{
		panels: []PanelID{PanelChecklist, PanelCoCEO, PanelPM, PanelEngineer, PanelCodeReviewer, PanelLogs},
	}
}

func (t TabController) Panels() []PanelID {
	return append([]PanelID(nil), t.panels...)
}

func (t TabController) Active() PanelID {
	if len(t.panels) == 0 {
		return ""
	}
	return t.panels[t.active]
}

// Select activates id. Unknown ids are ignored and reported as false.
func (t *TabController) Select(id PanelID) bool {
	for i, p := range t.panels {
		if p == id {
			t.active = i
			return true
		}
	}
	return false
}

func (t *TabController) SelectIndex(i int) bool {
	if i < 0 || i >= len(t.panels) {
		return false
	}
	t.active = i
	return true
}

func (t *TabController) Next() {
	if len(t.panels) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.panels)
}

func (t *TabController) Prev() {
	if len(t.panels) == 0 {
		return
	}
	t.active = (t.active - 1 + len(t.panels)) % len(t.panels)
}

func isKnownPanel(id PanelID) bool {
	_, ok := panelLabels[id]
	return ok
}

// Bounds is a screen rectangle in cells.
type Bounds struct {
	X, Y          int
	Width, Height int
}

func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// ModalState tracks the single SWOT modal.
type ModalState struct {
	Open bool
}

func (s *ModalState) Toggle() {
	s.Open = !s.Open
}

func (s *ModalState) Close() {
	s.Open = false
}

// ClickAt closes an open modal when the click lands on the backdrop, outside
// content. Clicks on the content are ignored. It reports whether it closed.
func (s *ModalState) ClickAt(x, y int, content Bounds) bool {
	if !s.Open || content.Contains(x, y) {
		return false
	}
	s.Open = false
	return true
}
