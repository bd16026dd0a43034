// Package todolist re-derives to-do list state from the checkbox markdown
// embedded in assistant messages, applies one mutation, and re-renders.
// The rendered shape is exactly what the next turn re-parses, so renderer
// and parser must agree byte for byte on headings and checkbox lines.
package todolist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wiktorlazar/ordoai/internal/model"
)

var checkboxRe = regexp.MustCompile(`(?m)^- \[([ x])\] (.*)$`)

// listHeadings in declaration order; the last assistant message naming one
// decides the list label.
var listHeadings = []model.ListType{
	model.ListTypeTodo,
	model.ListTypeShopping,
	model.ListTypeGrocery,
	model.ListTypeWork,
	model.ListTypeStudy,
}

// ParseItems scans every assistant message in order and collects checkbox
// lines across the whole conversation. Items from past list turns
// accumulate until explicitly removed. IDs are positional per parse pass.
func ParseItems(conv model.Conversation) []model.TodoItem {
	items := make([]model.TodoItem, 0)
	for _, msg := range conv.Messages {
		if msg.Role != model.RoleAssistant {
			continue
		}
		for _, m := range checkboxRe.FindAllStringSubmatch(msg.Content, -1) {
			items = append(items, model.TodoItem{
				ID:        fmt.Sprintf("%s-%d", msg.ID, len(items)),
				Text:      m[2],
				Completed: m[1] == "x",
				MessageID: msg.ID,
			})
		}
	}
	return items
}

// ListTypeOf returns the label of the most recent recognized list heading,
// defaulting to the generic to-do label.
func ListTypeOf(conv model.Conversation) model.ListType {
	listType := model.ListTypeTodo
	for _, msg := range conv.Messages {
		if msg.Role != model.RoleAssistant {
			continue
		}
		for _, lt := range listHeadings {
			if strings.Contains(msg.Content, lt.Heading()) {
				listType = lt
			}
		}
	}
	return listType
}

// HasList reports whether any assistant message carries a recognized list
// heading or a checkbox line.
func HasList(conv model.Conversation) bool {
	for _, msg := range conv.Messages {
		if msg.Role != model.RoleAssistant {
			continue
		}
		if strings.Contains(msg.Content, "- [ ]") || strings.Contains(msg.Content, "- [x]") {
			return true
		}
		for _, lt := range listHeadings {
			if strings.Contains(msg.Content, lt.Heading()) {
				return true
			}
		}
	}
	return false
}
