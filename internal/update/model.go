package update

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/vaultos/internal/model"
	"go.uber.org/zap"
)

// Workspace is the slice of app.Workspace the TUI drives.
type Workspace interface {
	Load(ctx context.Context) (model.AppState, error)
	ToggleTask(ctx context.Context, id string) (model.AppState, error)
	LogDecision(ctx context.Context, category, idea, review string) (model.Decision, model.AppState, error)
	CopyPrompt(ctx context.Context, category, input string) (string, error)
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Help     string
	Quit     string
	Palette  string
	SWOT     string
	Copy     string
	Log      string
	Finalize string
}

type FormField string

const (
	FieldInput  FormField = "input"
	FieldReview FormField = "review"
)

// CategoryForm is the per-category pair of text areas: the idea or upstream
// document fed into the prompt, and the pasted review output.
type CategoryForm struct {
	Spec    model.CategorySpec
	Input   textarea.Model
	Review  textarea.Model
	Focus   FormField
	Editing bool
	Preview string
}

type Model struct {
	Tabs            TabController
	SWOT            ModalState
	State           model.AppState
	Loaded          bool
	ChecklistCursor int
	Forms           []CategoryForm
	Palette         CommandPaletteState
	HelpVisible     bool
	Notifications   []Notification
	DesktopEnabled  bool
	notifier        DesktopNotifier
	Status          StatusBar
	Keys            GlobalKeyMap
	Quitting        bool
	LastError       error
	Width           int
	Height          int

	ws      Workspace
	ctx     context.Context
	logger  *zap.Logger
	taskIDs []string
	pending int

	commandInput    textinput.Model
	checklistBar    progress.Model
	busySpinner     spinner.Model
	helpModel       help.Model
	previewViewport viewport.Model
	previewShown    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchPanelMsg struct {
	Panel PanelID
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// StateLoadedMsg carries the result of the startup load. On a backend failure
// State is the in-memory default and Err is set.
type StateLoadedMsg struct {
	State model.AppState
	Err   error
}

// StateChangedMsg carries the state after a mutation. Err is set when the
// mutation applied but the save failed.
type StateChangedMsg struct {
	State  model.AppState
	Status string
	Err    error
}

type DecisionLoggedMsg struct {
	Decision model.Decision
	State    model.AppState
	Err      error
}

type PromptCopiedMsg struct {
	Category string
	Text     string
}

type Options struct {
	DesktopNotifications bool
	Notifier             DesktopNotifier
	Logger               *zap.Logger
}

func NewModel(ws Workspace, opts Options) Model {
	m := Model{
		Tabs:           NewTabController(),
		State:          model.DefaultState(),
		DesktopEnabled: opts.DesktopNotifications,
		notifier:       NoopDesktopNotifier{},
		Keys: GlobalKeyMap{
			Help:     "?",
			Quit:     "q",
			Palette:  "/",
			SWOT:     "w",
			Copy:     "ctrl+y",
			Log:      "ctrl+l",
			Finalize: "ctrl+f",
		},
		ws:      ws,
		ctx:     context.Background(),
		logger:  opts.Logger,
		taskIDs: append([]string(nil), model.DefaultTaskIDs...),
	}
	if opts.Notifier != nil {
		m.notifier = opts.Notifier
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.logger = m.logger.Named("tui")
	m.initBubbleComponents()
	return m
}
