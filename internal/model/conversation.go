package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidConversation = errors.New("model: invalid conversation")

// Conversation is the caller-owned message log. The response engine never
// mutates one; it only reads history and returns new assistant content.
type Conversation struct {
	ID          string
	Title       string
	Icon        string
	Messages    []Message
	CreatedAt   time.Time
	LastUpdated time.Time
}

func (c Conversation) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidConversation)
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidConversation)
	}
	if c.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created_at is required", ErrInvalidConversation)
	}
	for _, msg := range c.Messages {
		if err := msg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AssistantMessages returns the assistant halves in order.
func (c Conversation) AssistantMessages() []Message {
	out := make([]Message, 0, len(c.Messages))
	for _, msg := range c.Messages {
		if msg.Role == RoleAssistant {
			out = append(out, msg)
		}
	}
	return out
}
