package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidRole    = errors.New("model: invalid message role")
	ErrInvalidMessage = errors.New("model: invalid message")
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// Message is one turn half in a conversation. Content is markdown and may
// embed checkbox lists or event blocks that later turns re-parse.
type Message struct {
	ID        string
	Content   string
	Role      Role
	Timestamp time.Time
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidMessage)
	}
	if !m.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, m.Role)
	}
	if m.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidMessage)
	}
	return nil
}
