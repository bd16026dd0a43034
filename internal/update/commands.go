package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/scheduler"
	"github.com/wiktorlazar/ordoai/internal/storage"
	"github.com/wiktorlazar/ordoai/internal/topic"
)

// generateCmd runs the response engine off the update loop. The snapshot
// is the history before this turn; the user message is appended by the
// handler once the response lands.
func (m Model) generateCmd(input string, snapshot model.Conversation) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		now := engine.Now()
		user := model.Message{
			ID:        engine.NewID(),
			Content:   input,
			Role:      model.RoleUser,
			Timestamp: now,
		}
		reply := engine.Generate(input, snapshot)
		assistant := model.Message{
			ID:        engine.NewID(),
			Content:   reply,
			Role:      model.RoleAssistant,
			Timestamp: engine.Now(),
		}
		return ResponseMsg{
			ConversationID: snapshot.ID,
			UserMessage:    user,
			Assistant:      assistant,
			Topic:          topic.Classify(input).Label,
		}
	}
}

// loadConversationsCmd restores persisted history on startup.
func (m Model) loadConversationsCmd() tea.Cmd {
	repo := m.repo
	limit := m.cfg.HistoryLimit
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		rows, err := repo.ListConversations(ctx, storage.ConversationListFilter{Limit: limit})
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		out := make([]model.Conversation, 0, len(rows))
		for _, row := range rows {
			msgs, err := repo.ListMessages(ctx, storage.MessageListFilter{ConversationID: row.ID})
			if err != nil {
				return AppErrorMsg{Err: err}
			}
			out = append(out, loadedConversation(row, msgs))
		}
		return ConversationsLoadedMsg{Conversations: out}
	}
}

func waitForAlertCmd(ch <-chan scheduler.Alert) tea.Cmd {
	return func() tea.Msg {
		a, ok := <-ch
		if !ok {
			return nil
		}
		return AlertDueMsg{Alert: a}
	}
}
