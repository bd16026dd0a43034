package extract

import (
	"regexp"
	"strings"

	"github.com/wiktorlazar/ordoai/internal/model"
)

var eventHeaderRe = regexp.MustCompile(`(?m)^## Event: (.+)$`)

// EventBlock re-parses the event card emitted in assistant replies. It
// returns false when the content holds no card. Only the first card in a
// message is read.
func EventBlock(content string) (model.CalendarEvent, bool) {
	loc := eventHeaderRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return model.CalendarEvent{}, false
	}

	ev := model.CalendarEvent{Title: strings.TrimSpace(content[loc[2]:loc[3]])}
	for _, line := range strings.Split(content[loc[1]:], "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Date: "):
			ev.Date = strings.TrimSpace(strings.TrimPrefix(line, "Date: "))
		case strings.HasPrefix(line, "Time: "):
			ev.Time = strings.TrimSpace(strings.TrimPrefix(line, "Time: "))
		case strings.HasPrefix(line, "Location: "):
			ev.Location = strings.TrimSpace(strings.TrimPrefix(line, "Location: "))
		case strings.HasPrefix(line, "Description: "):
			ev.Description = strings.TrimSpace(strings.TrimPrefix(line, "Description: "))
		case line == "" && ev.Date != "":
			// Card fields are contiguous; a blank line after them ends the block.
			return ev, true
		}
	}
	return ev, true
}
