package todolist

import (
	"strings"

	"github.com/wiktorlazar/ordoai/internal/model"
)

const (
	emptyListNotice = "Your list is empty. You can add items by saying 'Add [item] to my list'.\n"
	helpFooter      = "\nYou can modify this list by saying things like:\n" +
		"• 'Add [item] to my list'\n" +
		"• 'Remove [item] from my list'\n" +
		"• 'Mark [item] as complete'\n" +
		"• 'Clear completed items'\n"
)

// Render produces the exact textual shape the parser re-reads next turn:
// preamble, blank line, heading, one checkbox line per item, then either
// the help footer or the empty-list notice.
func Render(listType model.ListType, items []model.TodoItem, preamble string) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n")
	b.WriteString(listType.Heading())
	b.WriteString("\n\n")

	for _, item := range items {
		if item.Completed {
			b.WriteString("- [x] ")
		} else {
			b.WriteString("- [ ] ")
		}
		b.WriteString(item.Text)
		b.WriteString("\n")
	}

	if len(items) == 0 {
		b.WriteString(emptyListNotice)
	} else {
		b.WriteString(helpFooter)
	}
	return b.String()
}
