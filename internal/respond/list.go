package respond

import (
	"fmt"

	"github.com/wiktorlazar/ordoai/internal/extract"
	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/todolist"
)

// listResponse creates a fresh checkbox list. Rendering goes through the
// same writer the reconciler re-parses, so a created list is immediately
// modifiable on the next turn.
func (e *Engine) listResponse(input string) string {
	listType := extract.DetectListType(input)
	texts := extract.Items(input, listType)

	items := make([]model.TodoItem, 0, len(texts))
	for _, text := range texts {
		items = append(items, model.TodoItem{
			ID:        e.newID(),
			Text:      text,
			Completed: false,
		})
	}
	preamble := fmt.Sprintf("I've created a %s List for you:", listType)
	return todolist.Render(listType, items, preamble)
}
