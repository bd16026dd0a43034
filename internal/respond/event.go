package respond

import (
	"strings"

	"github.com/wiktorlazar/ordoai/internal/extract"
)

// eventResponse builds the fixed event block the rendering layer (and the
// event parser) recognize: "## Event:" header plus field lines.
func (e *Engine) eventResponse(input string) string {
	ev := extract.Event(input, e.now())

	var b strings.Builder
	b.WriteString("I've created a calendar event for you:\n\n")
	b.WriteString("## Event: " + ev.Title + "\n")
	b.WriteString("Date: " + ev.Date + "\n")
	b.WriteString("Time: " + ev.Time + "\n")
	if ev.Location != "" {
		b.WriteString("Location: " + ev.Location + "\n")
	}
	if ev.Description != "" {
		b.WriteString("Description: " + ev.Description + "\n")
	}
	b.WriteString("\nThe event has been added to your calendar. You can find it in the event card above.")
	return b.String()
}
