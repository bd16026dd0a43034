package update

import (
	"context"
	"time"

	"github.com/wiktorlazar/ordoai/internal/extract"
	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/scheduler"
	"github.com/wiktorlazar/ordoai/internal/storage"
	"github.com/wiktorlazar/ordoai/internal/topic"
)

const persistTimeout = 5 * time.Second

func storedConversation(conv model.Conversation) storage.Conversation {
	return storage.Conversation{
		ID:          conv.ID,
		Title:       conv.Title,
		Icon:        conv.Icon,
		CreatedAt:   conv.CreatedAt,
		LastUpdated: conv.LastUpdated,
	}
}

func storedMessage(conversationID string, msg model.Message) storage.Message {
	return storage.Message{
		ID:             msg.ID,
		ConversationID: conversationID,
		Role:           string(msg.Role),
		Content:        msg.Content,
		CreatedAt:      msg.Timestamp,
	}
}

func loadedConversation(row storage.Conversation, msgs []storage.Message) model.Conversation {
	conv := model.Conversation{
		ID:          row.ID,
		Title:       row.Title,
		Icon:        row.Icon,
		CreatedAt:   row.CreatedAt,
		LastUpdated: row.LastUpdated,
	}
	for _, msg := range msgs {
		conv.Messages = append(conv.Messages, model.Message{
			ID:        msg.ID,
			Content:   msg.Content,
			Role:      model.Role(msg.Role),
			Timestamp: msg.CreatedAt,
		})
	}
	return conv
}

// retitle derives a title and icon from the first user turn of a fresh
// conversation. Later turns never rename.
func (m *Model) retitle(conv *model.Conversation, firstInput string) {
	if conv.Title != defaultConversationTitle {
		return
	}
	t := topic.Classify(firstInput)
	conv.Title = t.Label
	conv.Icon = t.Icon
}

// persistTurn writes both halves of the exchange. A nil repo means the
// shell is running without persistence (tests, --ephemeral).
func (m *Model) persistTurn(conv model.Conversation, user, assistant model.Message) error {
	if m.repo == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if _, err := m.repo.GetConversation(ctx, conv.ID); err == storage.ErrNotFound {
		if err := m.repo.CreateConversation(ctx, storedConversation(conv)); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else if err := m.repo.UpdateConversation(ctx, storedConversation(conv)); err != nil {
		return err
	}

	for _, msg := range []model.Message{user, assistant} {
		if err := m.repo.CreateMessage(ctx, storedMessage(conv.ID, msg)); err != nil {
			return err
		}
	}
	return nil
}

// captureEvent persists an event card found in an assistant reply and
// queues its alert. Cards with unparseable dates are stored without one.
func (m *Model) captureEvent(conv model.Conversation, assistant model.Message) {
	ev, ok := extract.EventBlock(assistant.Content)
	if !ok {
		return
	}
	ev.ID = m.engine.NewID()
	ev.MessageID = assistant.ID

	var alertAt *time.Time
	if at, err := scheduler.TriggerTime(ev.Date, ev.Time, time.Local); err == nil {
		alertAt = &at
		if m.Scheduler != nil {
			_ = m.Scheduler.Schedule(scheduler.Alert{
				ID:             ev.ID,
				ConversationID: conv.ID,
				Title:          ev.Title,
				TriggerAt:      at,
			})
		}
	}

	if m.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	_ = m.repo.CreateEvent(ctx, storage.Event{
		ID:             ev.ID,
		ConversationID: conv.ID,
		MessageID:      ev.MessageID,
		Title:          ev.Title,
		Date:           ev.Date,
		Time:           ev.Time,
		Location:       ev.Location,
		Description:    ev.Description,
		AlertAt:        alertAt,
		Enabled:        true,
		CreatedAt:      m.engine.Now(),
	})
}
