package storage

import "time"

type Conversation struct {
	ID          string
	Title       string
	Icon        string
	CreatedAt   time.Time
	LastUpdated time.Time
}

type Message struct {
	ID             string
	ConversationID string
	Role           string
	Content        string
	CreatedAt      time.Time
}

// Event rows are persisted copies of event cards parsed out of assistant
// messages. AlertAt is the resolved wall-clock trigger; LastAlerted is set
// once the alert fires so it never fires twice.
type Event struct {
	ID             string
	ConversationID string
	MessageID      string
	Title          string
	Date           string
	Time           string
	Location       string
	Description    string
	AlertAt        *time.Time
	LastAlerted    *time.Time
	Enabled        bool
	CreatedAt      time.Time
}

type ConversationListFilter struct {
	Limit  int
	Offset int
}

type MessageListFilter struct {
	ConversationID string
	Limit          int
	Offset         int
}

type EventListFilter struct {
	ConversationID string
	Enabled        *bool
	Limit          int
	Offset         int
}
