package update

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/respond"
	"github.com/wiktorlazar/ordoai/internal/scheduler"
)

var testNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func testModel() Model {
	n := 0
	engine := &respond.Engine{
		Now: func() time.Time { return testNow },
		NewID: func() string {
			n++
			return "id-" + strings.Repeat("x", n)
		},
	}
	return NewModelWithConfig(nil, engine, nil, nil, DefaultRuntimeConfig())
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestNewModelStartsWithFreshConversation(t *testing.T) {
	m := testModel()
	if len(m.Conversations) != 1 {
		t.Fatalf("expected one conversation, got %d", len(m.Conversations))
	}
	if m.Current().Title != defaultConversationTitle {
		t.Fatalf("unexpected title: %q", m.Current().Title)
	}
}

func TestSubmitInputStartsGeneration(t *testing.T) {
	m := testModel()
	m.input.SetValue("hello")

	next, cmd := pressEnter(t, m)
	if !next.Generating {
		t.Fatal("expected Generating after submit")
	}
	if next.input.Value() != "" {
		t.Fatalf("input not cleared: %q", next.input.Value())
	}
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
}

func TestSubmitIgnoredWhileGenerating(t *testing.T) {
	m := testModel()
	m.Generating = true
	m.input.SetValue("another question")

	next, _ := pressEnter(t, m)
	if got := next.Current(); len(got.Messages) != 0 {
		t.Fatalf("second submit should not mutate history: %d messages", len(got.Messages))
	}
	if !strings.Contains(next.Status.Text, "still thinking") {
		t.Fatalf("unexpected status: %q", next.Status.Text)
	}
}

func TestGenerateCmdProducesExchange(t *testing.T) {
	m := testModel()
	snapshot := *m.Current()

	msg := m.generateCmd("hello", snapshot)()
	resp, ok := msg.(ResponseMsg)
	if !ok {
		t.Fatalf("expected ResponseMsg, got %T", msg)
	}
	if resp.UserMessage.Role != model.RoleUser || resp.Assistant.Role != model.RoleAssistant {
		t.Fatalf("unexpected roles: %s / %s", resp.UserMessage.Role, resp.Assistant.Role)
	}
	if !strings.Contains(resp.Assistant.Content, "Hello! I'm Ordo") {
		t.Fatalf("greeting missing: %q", resp.Assistant.Content)
	}
}

func TestResponseAppendsAndRetitles(t *testing.T) {
	m := testModel()
	snapshot := *m.Current()

	msg := m.generateCmd("shopping list for the week with milk and eggs", snapshot)()
	next, _ := m.Update(msg)
	got := next.(Model)

	conv := got.Current()
	if len(conv.Messages) != 2 {
		t.Fatalf("expected user+assistant messages, got %d", len(conv.Messages))
	}
	if conv.Title != "Shopping List" || conv.Icon != "🛒" {
		t.Fatalf("conversation not retitled: %q %q", conv.Title, conv.Icon)
	}
	if got.Generating {
		t.Fatal("Generating should be cleared")
	}
}

func TestResponseDoesNotRetitleTwice(t *testing.T) {
	m := testModel()
	conv := m.Current()
	conv.Title = "Errands"
	conv.Icon = "🛒"

	msg := m.generateCmd("help me set a goal", *conv)()
	next, _ := m.Update(msg)
	got := next.(Model)
	if got.Current().Title != "Errands" {
		t.Fatalf("established title was overwritten: %q", got.Current().Title)
	}
}

func TestSuggestionsFollowTopic(t *testing.T) {
	m := testModel()
	msg := m.generateCmd("shopping list for the week", *m.Current())()
	next, _ := m.Update(msg)
	got := next.(Model)

	joined := strings.Join(got.Suggestions, "\n")
	if !strings.Contains(joined, "Add milk to my list") {
		t.Fatalf("unexpected suggestions: %v", got.Suggestions)
	}
}

func TestCommandNewStartsConversation(t *testing.T) {
	m := testModel()
	m.input.SetValue("/new weekend errands")

	next, _ := pressEnter(t, m)
	if len(next.Conversations) != 2 {
		t.Fatalf("expected two conversations, got %d", len(next.Conversations))
	}
	if next.Current().Title != "weekend errands" {
		t.Fatalf("unexpected title: %q", next.Current().Title)
	}
}

func TestCommandDeleteAlwaysLeavesOneConversation(t *testing.T) {
	m := testModel()
	m.input.SetValue("/delete")

	next, _ := pressEnter(t, m)
	if len(next.Conversations) != 1 {
		t.Fatalf("expected a fresh conversation after delete, got %d", len(next.Conversations))
	}
	if next.Current().Title != defaultConversationTitle {
		t.Fatalf("unexpected title: %q", next.Current().Title)
	}
}

func TestCommandUnknownReportsError(t *testing.T) {
	m := testModel()
	m.input.SetValue("/frobnicate")

	next, _ := pressEnter(t, m)
	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestAlertDueNotifies(t *testing.T) {
	m := testModel()
	next, _ := m.Update(AlertDueMsg{Alert: scheduler.Alert{
		ID:             "ev-1",
		ConversationID: m.Current().ID,
		Title:          "Standup",
		TriggerAt:      testNow,
	}})
	got := next.(Model)

	if len(got.AlertLog) != 1 {
		t.Fatalf("alert not logged: %d", len(got.AlertLog))
	}
	if !strings.Contains(got.Status.Text, "Standup") {
		t.Fatalf("unexpected status: %q", got.Status.Text)
	}
	if len(got.Notifications) == 0 {
		t.Fatal("expected a notification")
	}
}

func TestMergeLoadedKeepsActiveConversation(t *testing.T) {
	m := testModel()
	msg := m.generateCmd("hello", *m.Current())()
	next, _ := m.Update(msg)
	m = next.(Model)

	loaded := []model.Conversation{
		{ID: "old-1", Title: "Old chat", Icon: "🤖", CreatedAt: testNow, LastUpdated: testNow},
	}
	next, _ = m.Update(ConversationsLoadedMsg{Conversations: loaded})
	got := next.(Model)

	if len(got.Conversations) != 2 {
		t.Fatalf("expected active + loaded, got %d", len(got.Conversations))
	}
	if got.Conversations[0].ID != m.Current().ID {
		t.Fatal("active conversation should stay first")
	}
	if got.Conversations[1].ID != "old-1" {
		t.Fatal("loaded conversation missing")
	}
}

func TestCopyReplyCopiesLastAssistantMessage(t *testing.T) {
	m := testModel()
	var copied string
	m.clip = func(text string) error {
		copied = text
		return nil
	}
	msg := m.generateCmd("hello", *m.Current())()
	next, _ := m.Update(msg)
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	got := next.(Model)
	if !strings.Contains(copied, "Hello! I'm Ordo") {
		t.Fatalf("clipboard content = %q", copied)
	}
	if !strings.Contains(got.Status.Text, "copied reply") {
		t.Fatalf("unexpected status: %q", got.Status.Text)
	}
}

func TestCopyReplyWithoutHistory(t *testing.T) {
	m := testModel()
	m.clip = func(string) error {
		t.Fatal("clipboard must not be written with no assistant message")
		return nil
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	got := next.(Model)
	if !strings.Contains(got.Status.Text, "nothing to copy") {
		t.Fatalf("unexpected status: %q", got.Status.Text)
	}
}

func TestCopyReplyFailureStaysQuiet(t *testing.T) {
	m := testModel()
	m.clip = func(string) error { return errors.New("no display") }
	msg := m.generateCmd("hello", *m.Current())()
	next, _ := m.Update(msg)
	m = next.(Model)
	m.Status = StatusBar{}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	got := next.(Model)
	if got.LastError == nil {
		t.Fatal("expected clipboard failure to be recorded")
	}
	if got.Status.IsError || got.Status.Text != "" {
		t.Fatalf("clipboard failure must not surface a status: %+v", got.Status)
	}
}

func TestTabSwitchesFocus(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := next.(Model)
	if got.focus != FocusSidebar {
		t.Fatalf("expected sidebar focus, got %s", got.focus)
	}
	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(Model).focus != FocusInput {
		t.Fatal("expected focus back on input")
	}
}
