package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wiktorlazar/ordoai/internal/model"
)

const (
	defaultEventTitle = "New Event"
	defaultEventTime  = "12:00 PM"
	eventDateLayout   = "1/2/2006"
)

var (
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:add|create|schedule|new)\s+(?:a\s+|an\s+|the\s+)?(?:event|appointment|meeting)\s+(?:called|titled|named|for|about)?\s*"([^"]+)"`),
		regexp.MustCompile(`(?i)(?:add|create|schedule|new)\s+(?:a\s+|an\s+|the\s+)?(?:event|appointment|meeting)\s+(?:called\s+|titled\s+|named\s+|for\s+|about\s+)?([^"]+?)(?:\s+on|\s+at|\s+for|\s+with|\s+in|$)`),
	}

	monthDayRe  = regexp.MustCompile(`(?i)(?:on|for)\s+(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?`)
	dayMonthRe  = regexp.MustCompile(`(?i)(?:on|for)\s+(\d{1,2})(?:st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december)(?:,?\s+(\d{4}))?`)
	numericRe   = regexp.MustCompile(`(?i)(?:on|for)\s+(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
	relativeRe  = regexp.MustCompile(`(?i)(?:on|for)\s+(tomorrow|today|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)

	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:at|from)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)`),
		regexp.MustCompile(`(?i)(?:at|from)\s+(\d{1,2})(?::(\d{2}))?(?:\s*(am|pm))?`),
	}

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:at|in|location)\s+([^,.]+?)(?:,|\.|on|at|$)`),
		regexp.MustCompile(`(?i)(?:location|place|venue)(?:\s+is|\s*:)?\s+([^,.]+?)(?:,|\.|on|at|$)`),
	}

	descriptionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:description|about|details|notes)(?:\s+is|\s*:)?\s+([^,.]+?)(?:,|\.|on|at|$)`),
		regexp.MustCompile(`(?i)(?:for|about)\s+([^,.]+?)(?:,|\.|on|at|$)`),
	}

	timeLikeRe = regexp.MustCompile(`(?i)\d{1,2}(?::\d{2})?\s*(?:am|pm)`)
)

var monthIndex = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
}

var weekdayIndex = map[string]int{
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6,
}

// Event extracts calendar fields from free text. Missing fields get soft
// defaults (title "New Event", today's date, noon) rather than errors.
func Event(input string, now time.Time) model.CalendarEvent {
	return model.CalendarEvent{
		Title:       eventTitle(input),
		Date:        eventDate(input, now),
		Time:        eventTime(input),
		Location:    eventLocation(input),
		Description: eventDescription(input),
	}
}

func eventTitle(input string) string {
	for _, re := range titlePatterns {
		if m := re.FindStringSubmatch(input); m != nil && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return defaultEventTitle
}

func eventDate(input string, now time.Time) string {
	if m := monthDayRe.FindStringSubmatch(input); m != nil {
		month := monthIndex[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		year := yearOrCurrent(m[3], now)
		return fmt.Sprintf("%d/%d/%d", month, day, year)
	}
	if m := dayMonthRe.FindStringSubmatch(input); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthIndex[strings.ToLower(m[2])]
		year := yearOrCurrent(m[3], now)
		return fmt.Sprintf("%d/%d/%d", month, day, year)
	}
	if m := numericRe.FindStringSubmatch(input); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := yearOrCurrent(m[3], now)
		if year < 100 {
			year += 2000
		}
		return fmt.Sprintf("%d/%d/%d", month, day, year)
	}
	if m := relativeRe.FindStringSubmatch(input); m != nil {
		return relativeDate(strings.ToLower(m[1]), now)
	}
	return now.Format(eventDateLayout)
}

func relativeDate(word string, now time.Time) string {
	switch word {
	case "today":
		return now.Format(eventDateLayout)
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(eventDateLayout)
	}
	target, ok := weekdayIndex[word]
	if !ok {
		return now.Format(eventDateLayout)
	}
	// Next future occurrence; a weekday naming today means next week.
	days := (target + 7 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days).Format(eventDateLayout)
}

func yearOrCurrent(raw string, now time.Time) int {
	if raw == "" {
		return now.Year()
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return now.Year()
	}
	return year
}

func eventTime(input string) string {
	for _, re := range timePatterns {
		m := re.FindStringSubmatch(input)
		if m == nil || m[1] == "" {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		minute := m[2]
		if minute == "" {
			minute = "00"
		}
		period := strings.ToLower(m[3])
		if period == "" {
			if hour < 12 {
				period = "am"
			} else {
				period = "pm"
			}
		}
		return fmt.Sprintf("%d:%s %s", hour, minute, period)
	}
	return defaultEventTime
}

func eventLocation(input string) string {
	for _, re := range locationPatterns {
		if m := re.FindStringSubmatch(input); m != nil && m[1] != "" && !timeLikeRe.MatchString(m[1]) {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func eventDescription(input string) string {
	for _, re := range descriptionPatterns {
		if m := re.FindStringSubmatch(input); m != nil && m[1] != "" && len(m[1]) > 5 && !timeLikeRe.MatchString(m[1]) {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
