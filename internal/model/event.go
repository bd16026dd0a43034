package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidEvent = errors.New("model: invalid event")

// CalendarEvent is derived from the fixed multi-line event block an
// assistant message embeds ("## Event: ..." plus field lines).
type CalendarEvent struct {
	ID          string
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
	MessageID   string
}

func (e CalendarEvent) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidEvent)
	}
	if strings.TrimSpace(e.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidEvent)
	}
	if strings.TrimSpace(e.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidEvent)
	}
	return nil
}
