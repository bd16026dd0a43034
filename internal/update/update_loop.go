package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wiktorlazar/ordoai/internal/commands"
	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/storage"
	"github.com/wiktorlazar/ordoai/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	if load := m.loadConversationsCmd(); load != nil {
		cmds = append(cmds, load)
	}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForAlertCmd(m.Scheduler.C()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.sidebar.SetSize(30, typed.Height-4)
		m.transcript.Width = typed.Width - 36
		m.transcript.Height = typed.Height - 10
		m.input.SetWidth(typed.Width - 36)
		return m, nil

	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		case "tab":
			if m.focus == FocusInput {
				m.focus = FocusSidebar
				m.input.Blur()
			} else {
				m.focus = FocusInput
				m.input.Focus()
			}
			return m, nil
		case "ctrl+n":
			m.startConversation("")
			m.refreshTranscript()
			m.Status = StatusBar{Text: "new conversation", IsError: false}
			return m, nil
		case "ctrl+y":
			m.copyLastReply()
			return m, nil
		case "ctrl+h":
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}

		if m.focus == FocusSidebar {
			return m.handleSidebarKey(typed)
		}
		return m.handleInputKey(typed)

	case spinner.TickMsg:
		if m.Generating {
			var cmd tea.Cmd
			m.thinking, cmd = m.thinking.Update(typed)
			return m, cmd
		}
		return m, nil

	case ConversationsLoadedMsg:
		m.mergeLoaded(typed.Conversations)
		m.refreshTranscript()
		return m, nil

	case ResponseMsg:
		return m.onResponse(typed)

	case AlertDueMsg:
		m.AlertLog = append(m.AlertLog, typed.Alert)
		if len(m.AlertLog) > 20 {
			m.AlertLog = m.AlertLog[len(m.AlertLog)-20:]
		}
		body := fmt.Sprintf("Event starting: %s", typed.Alert.Title)
		m.Status = StatusBar{Text: body, IsError: false}
		m.notify("Event alert", body, "info")
		cmds := []tea.Cmd{m.markAlertedCmd(typed.Alert.ID)}
		if m.Scheduler != nil {
			cmds = append(cmds, waitForAlertCmd(m.Scheduler.C()))
		}
		return m, tea.Batch(cmds...)

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.Selected = m.sidebar.Index()
		m.focus = FocusInput
		m.input.Focus()
		m.refreshTranscript()
		return m, nil
	}
	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m.submitInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	if commands.IsCommand(text) {
		m.input.Reset()
		return m.handleCommand(text)
	}
	// One exchange at a time; the spinner runs until the response lands.
	if m.Generating {
		m.Status = StatusBar{Text: "still thinking, hold on", IsError: false}
		return m, nil
	}

	conv := m.Current()
	if conv == nil {
		m.startConversation("")
		conv = m.Current()
	}
	snapshot := *conv
	m.Generating = true
	m.input.Reset()
	return m, tea.Batch(m.thinking.Tick, m.generateCmd(text, snapshot))
}

func (m Model) onResponse(msg ResponseMsg) (tea.Model, tea.Cmd) {
	m.Generating = false
	idx := -1
	for i := range m.Conversations {
		if m.Conversations[i].ID == msg.ConversationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m, nil
	}

	conv := &m.Conversations[idx]
	m.retitle(conv, msg.UserMessage.Content)
	conv.Messages = append(conv.Messages, msg.UserMessage, msg.Assistant)
	conv.LastUpdated = msg.Assistant.Timestamp
	m.Suggestions = suggestionsForTopic(msg.Topic)
	m.syncSidebar()
	m.refreshTranscript()

	snapshot := *conv
	return m, m.persistTurnCmd(snapshot, msg.UserMessage, msg.Assistant)
}

func (m Model) persistTurnCmd(conv model.Conversation, user, assistant model.Message) tea.Cmd {
	self := m
	return func() tea.Msg {
		if err := self.persistTurn(conv, user, assistant); err != nil {
			return AppErrorMsg{Err: err}
		}
		self.captureEvent(conv, assistant)
		return nil
	}
}

func (m Model) markAlertedCmd(eventID string) tea.Cmd {
	repo := m.repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		ev, err := repo.GetEvent(ctx, eventID)
		if err != nil {
			if err == storage.ErrNotFound {
				return nil
			}
			return AppErrorMsg{Err: err}
		}
		now := time.Now().UTC()
		ev.LastAlerted = &now
		ev.Enabled = false
		if err := repo.UpdateEvent(ctx, ev); err != nil {
			return AppErrorMsg{Err: err}
		}
		return nil
	}
}

// mergeLoaded appends restored history behind any fresh unsaved
// conversation already on screen.
func (m *Model) mergeLoaded(loaded []model.Conversation) {
	kept := make([]model.Conversation, 0, len(m.Conversations)+len(loaded))
	for _, conv := range m.Conversations {
		if len(conv.Messages) > 0 {
			kept = append(kept, conv)
		}
	}
	seen := make(map[string]bool, len(kept))
	for _, conv := range kept {
		seen[conv.ID] = true
	}
	for _, conv := range loaded {
		if !seen[conv.ID] {
			kept = append(kept, conv)
		}
	}
	if len(kept) == 0 {
		return
	}
	m.Conversations = kept
	m.Selected = 0
	m.syncSidebar()
}

func (m *Model) refreshTranscript() {
	conv := m.Current()
	if conv == nil {
		m.transcript.SetContent("")
		return
	}
	var b strings.Builder
	for _, msg := range conv.Messages {
		if msg.Role == model.RoleUser {
			b.WriteString("**You:** " + msg.Content + "\n\n")
		} else {
			b.WriteString(msg.Content + "\n\n---\n\n")
		}
	}
	m.transcript.SetContent(views.RenderMarkdown(b.String()))
	m.transcript.GotoBottom()
}

func (m Model) View() string {
	status := m.Status.Text
	if m.Status.IsError && status != "" {
		status = "error: " + status
	}

	thinking := ""
	if m.Generating {
		thinking = m.thinking.View() + " thinking..."
	}

	conv := m.Current()
	title := ""
	if conv != nil {
		title = conv.Icon + " " + conv.Title
	}

	chat := views.RenderChatPanel(views.ChatPanelData{
		Transcript:  m.transcript.View(),
		InputView:   m.input.View(),
		Thinking:    thinking,
		Suggestions: m.Suggestions,
	})

	right := chat
	if m.HelpVisible {
		right += "\n" + views.RenderHelpPanel(views.HelpPanelData{
			Bindings: []string{
				"enter send | tab switch pane | ctrl+n new chat | ctrl+y copy reply",
				"/new /rename /delete /conversations /help /quit",
			},
			HelpView: m.helpModel.View(m.keys),
		})
	}

	notification := ""
	if len(m.Notifications) > 0 {
		last := m.Notifications[len(m.Notifications)-1]
		notification = views.RenderNotification(last.Level, last.Body)
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("ordoai | %s", title),
		LeftPane:     m.sidebar.View(),
		RightPane:    right,
		StatusLine:   status,
		Notification: strings.TrimSpace(notification),
		Footer:       "enter send | tab panes | ctrl+n new | ctrl+y copy | ctrl+h help | ctrl+c quit",
	})
}
