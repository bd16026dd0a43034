// Package extract pulls structured fields out of unstructured sentences:
// list items for to-do creation and title/date/time/location/description
// for calendar events. Pattern precedence is strict left-to-right; the
// first alternative that matches wins.
package extract

import (
	"regexp"
	"strings"

	"github.com/wiktorlazar/ordoai/internal/model"
)

var (
	trailingClauseRe = regexp.MustCompile(`(?i)(?:with|of|for|:)\s+(.*?)(?:\.|$)`)
	andSplitRe       = regexp.MustCompile(`(?i)\s+and\s+`)
	commaSplitRe     = regexp.MustCompile(`,\s*`)
	fragmentSplitRe  = regexp.MustCompile(`[.,;]`)
)

// cannedItems supplies starter items when nothing can be extracted.
var cannedItems = map[model.ListType][]string{
	model.ListTypeShopping: {"Milk", "Bread", "Eggs", "Fruits", "Vegetables"},
	model.ListTypeGrocery:  {"Apples", "Pasta", "Chicken", "Rice", "Tomatoes"},
	model.ListTypeWork:     {"Finish report", "Reply to emails", "Schedule meeting", "Update presentation"},
	model.ListTypeStudy:    {"Read chapter 5", "Complete assignment", "Review notes", "Prepare for quiz"},
	model.ListTypeTodo:     {"Task 1", "Task 2", "Task 3", "Task 4", "Task 5"},
}

// DetectListType picks the list label from the phrasing of the request.
func DetectListType(input string) model.ListType {
	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "shopping list"):
		return model.ListTypeShopping
	case strings.Contains(lower, "grocery list"):
		return model.ListTypeGrocery
	case strings.Contains(lower, "work list"):
		return model.ListTypeWork
	case strings.Contains(lower, "study list"):
		return model.ListTypeStudy
	default:
		return model.ListTypeTodo
	}
}

// Items extracts list items from a creation request. Three stages, first
// non-empty result wins: a trailing clause introduced by with/of/for/":"
// split on commas and "and"; raw punctuation fragments that are not meta
// talk about the list itself; a canned set keyed by list type.
func Items(input string, listType model.ListType) []string {
	if m := trailingClauseRe.FindStringSubmatch(input); m != nil && strings.TrimSpace(m[1]) != "" {
		clause := andSplitRe.ReplaceAllString(m[1], ", ")
		items := make([]string, 0, 4)
		for _, part := range commaSplitRe.Split(clause, -1) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				items = append(items, trimmed)
			}
		}
		if len(items) > 0 {
			return items
		}
	}

	items := make([]string, 0, 4)
	for _, frag := range fragmentSplitRe.Split(input, -1) {
		trimmed := strings.TrimSpace(frag)
		lower := strings.ToLower(trimmed)
		if len(trimmed) > 2 && !strings.Contains(lower, "list") && !strings.Contains(lower, "create") {
			items = append(items, trimmed)
		}
	}
	if len(items) > 0 {
		return items
	}

	canned := cannedItems[listType]
	out := make([]string, len(canned))
	copy(out, canned)
	return out
}
