package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/respond"
	"github.com/wiktorlazar/ordoai/internal/scheduler"
	"github.com/wiktorlazar/ordoai/internal/storage"
)

// Focus names the pane receiving keystrokes.
type Focus string

const (
	FocusInput   Focus = "input"
	FocusSidebar Focus = "sidebar"
)

const defaultConversationTitle = "New Chat"

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Send       key.Binding
	SwitchPane key.Binding
	NewChat    key.Binding
	CopyReply  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Send:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		NewChat:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new chat")),
		CopyReply:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy reply")),
		Help:       key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.SwitchPane, k.NewChat, k.CopyReply, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Send, k.SwitchPane, k.CopyReply}, {k.NewChat, k.Help, k.Quit}}
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

type Model struct {
	Conversations []model.Conversation
	Selected      int
	Generating    bool
	Status        StatusBar
	Notifications []Notification
	HelpVisible   bool
	Quitting      bool
	LastError     error
	Suggestions   []string
	AlertLog      []scheduler.Alert

	Scheduler *scheduler.Engine
	repo      storage.Repository
	engine    *respond.Engine
	notifier  DesktopNotifier
	keys      KeyMap
	cfg       RuntimeConfig
	clip      func(string) error

	// Bubble components used for the chat layout
	sidebar    list.Model
	transcript viewport.Model
	input      textarea.Model
	thinking   spinner.Model
	helpModel  help.Model
	focus      Focus
	width      int
	height     int
}

type conversationItem struct {
	id    string
	title string
	icon  string
}

func (i conversationItem) FilterValue() string { return i.title }
func (i conversationItem) Title() string       { return i.icon + " " + i.title }
func (i conversationItem) Description() string { return i.id }

// Messages flowing through the update loop.

type ConversationsLoadedMsg struct {
	Conversations []model.Conversation
}

type ResponseMsg struct {
	ConversationID string
	UserMessage    model.Message
	Assistant      model.Message
	Topic          string
}

type CommandAppliedMsg struct {
	Message string
	Reload  bool
}

type AlertDueMsg struct {
	Alert scheduler.Alert
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel() Model {
	return NewModelWithConfig(nil, nil, nil, nil, DefaultRuntimeConfig())
}

func NewModelWithConfig(repo storage.Repository, engine *respond.Engine, sched *scheduler.Engine, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	if engine == nil {
		engine = respond.New()
	}
	if notifier == nil {
		notifier = NoopDesktopNotifier{}
	}

	input := textarea.New()
	input.Placeholder = "Ask Ordo anything..."
	input.CharLimit = 2000
	input.SetHeight(3)
	input.ShowLineNumbers = false
	input.Focus()

	sidebar := list.New(nil, list.NewDefaultDelegate(), 30, 20)
	sidebar.Title = "Conversations"
	sidebar.SetShowStatusBar(false)
	sidebar.SetFilteringEnabled(false)
	sidebar.SetShowHelp(false)

	transcript := viewport.New(80, 20)

	thinking := spinner.New()
	thinking.Spinner = spinner.Dot

	m := Model{
		Scheduler:   sched,
		repo:        repo,
		engine:      engine,
		notifier:    notifier,
		keys:        defaultKeyMap(),
		cfg:         cfg,
		clip:        clipboard.WriteAll,
		sidebar:     sidebar,
		transcript:  transcript,
		input:       input,
		thinking:    thinking,
		helpModel:   help.New(),
		focus:       FocusInput,
		Suggestions: defaultSuggestions(),
	}
	m.startConversation("")
	return m
}

// Current returns the selected conversation. The model always holds at
// least one conversation after construction.
func (m *Model) Current() *model.Conversation {
	if len(m.Conversations) == 0 {
		return nil
	}
	if m.Selected < 0 || m.Selected >= len(m.Conversations) {
		m.Selected = 0
	}
	return &m.Conversations[m.Selected]
}

func (m *Model) startConversation(title string) {
	if title == "" {
		title = defaultConversationTitle
	}
	now := m.engine.Now()
	conv := model.Conversation{
		ID:          m.engine.NewID(),
		Title:       title,
		Icon:        "🤖",
		CreatedAt:   now,
		LastUpdated: now,
	}
	m.Conversations = append([]model.Conversation{conv}, m.Conversations...)
	m.Selected = 0
	m.Suggestions = defaultSuggestions()
	m.syncSidebar()
}

func (m *Model) syncSidebar() {
	items := make([]list.Item, 0, len(m.Conversations))
	for _, conv := range m.Conversations {
		items = append(items, conversationItem{id: conv.ID, title: conv.Title, icon: conv.Icon})
	}
	m.sidebar.SetItems(items)
	if m.Selected >= 0 && m.Selected < len(items) {
		m.sidebar.Select(m.Selected)
	}
}

// copyLastReply puts the newest assistant message on the system clipboard.
// Clipboard failures are recorded on LastError only; they never interrupt
// the session or surface as an error status.
func (m *Model) copyLastReply() {
	conv := m.Current()
	if conv == nil || m.clip == nil {
		return
	}
	replies := conv.AssistantMessages()
	if len(replies) == 0 {
		m.Status = StatusBar{Text: "nothing to copy yet", IsError: false}
		return
	}
	if err := m.clip(replies[len(replies)-1].Content); err != nil {
		m.LastError = err
		return
	}
	m.Status = StatusBar{Text: "copied reply to clipboard", IsError: false}
}

func (m *Model) notify(title, body, level string) {
	n := Notification{Title: title, Body: body, Level: level, At: time.Now()}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 10 {
		m.Notifications = m.Notifications[len(m.Notifications)-10:]
	}
	if m.cfg.DesktopNotifications && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
