package scheduler

import (
	"fmt"
	"strings"
	"time"
)

const (
	cardDateLayout = "1/2/2006"
	cardTimeLayout = "3:04 PM"
)

// TriggerTime combines the date and time strings from an event card into
// a concrete trigger instant in the given location. The time component is
// case-insensitive since cards carry both "9:00 am" and "12:00 PM".
func TriggerTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(cardDateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("scheduler: parse event date %q: %w", date, err)
	}
	tod, err := time.Parse(cardTimeLayout, strings.ToUpper(strings.TrimSpace(clock)))
	if err != nil {
		return time.Time{}, fmt.Errorf("scheduler: parse event time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, loc), nil
}
