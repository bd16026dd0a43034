package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateConversation(ctx context.Context, in Conversation) error
	GetConversation(ctx context.Context, id string) (Conversation, error)
	UpdateConversation(ctx context.Context, in Conversation) error
	DeleteConversation(ctx context.Context, id string) error
	ListConversations(ctx context.Context, filter ConversationListFilter) ([]Conversation, error)

	CreateMessage(ctx context.Context, in Message) error
	GetMessage(ctx context.Context, id string) (Message, error)
	DeleteMessage(ctx context.Context, id string) error
	DeleteMessagesFrom(ctx context.Context, conversationID, messageID string) error
	ListMessages(ctx context.Context, filter MessageListFilter) ([]Message, error)

	CreateEvent(ctx context.Context, in Event) error
	GetEvent(ctx context.Context, id string) (Event, error)
	UpdateEvent(ctx context.Context, in Event) error
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, filter EventListFilter) ([]Event, error)
}
