package todolist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wiktorlazar/ordoai/internal/model"
)

// modifyKeywords is the fixed detection set. Bare "add" is deliberately
// absent: an add only counts as a modification when it targets the list,
// which addTargetRe checks separately.
var modifyKeywords = []string{
	"modify", "change", "update", "edit", "revise",
	"remove", "delete", "check off", "mark", "complete", "done", "clear",
}

var (
	addTargetRe = regexp.MustCompile(`(?i)\badd\b.*\b(?:list|todo|to-do)\b`)

	addPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)add\s+(.*?)\s+(?:to|on|in|into)\s+(?:the|my|this)?\s*(?:list|todo|to-do)`),
		regexp.MustCompile(`(?i)add\s+(.*?)(?:\.|$)`),
	}
	removePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:remove|delete)\s+(.*?)\s+(?:from|on|in)\s+(?:the|my|this)?\s*(?:list|todo|to-do)`),
		regexp.MustCompile(`(?i)(?:remove|delete)\s+(.*?)(?:\.|$)`),
	}
	markPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:mark|complete|check|done)\s+(.*?)\s+(?:as|off|on|in)\s+(?:complete|done|finished)`),
		regexp.MustCompile(`(?i)(?:mark|complete|check|done)\s+(.*?)(?:\.|$)`),
	}
)

// IsModifyRequest is true only when the input carries a modify keyword and
// the conversation already holds a list to modify.
func IsModifyRequest(input string, conv model.Conversation) bool {
	lower := strings.ToLower(input)
	hasKeyword := addTargetRe.MatchString(lower)
	if !hasKeyword {
		for _, kw := range modifyKeywords {
			if strings.Contains(lower, kw) {
				hasKeyword = true
				break
			}
		}
	}
	if !hasKeyword {
		return false
	}
	return HasList(conv)
}

// Apply re-derives the current list, applies the first matching mutation
// branch, and re-renders. Unrecognized sub-intents re-render the list
// unchanged; missing targets report softly instead of failing the turn.
// newID mints identifiers for appended items.
func Apply(input string, conv model.Conversation, newID func() string) string {
	return ApplyState(input, ParseItems(conv), ListTypeOf(conv), newID)
}

// ApplyState is Apply over an already-derived list state, for callers that
// cache the derivation (see Cache). The items slice may be mutated.
func ApplyState(input string, items []model.TodoItem, listType model.ListType, newID func() string) string {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "add") && addTargetRe.MatchString(lower):
		return applyAdd(input, listType, items, newID)
	case strings.Contains(lower, "remove") || strings.Contains(lower, "delete"):
		return applyRemove(input, listType, items)
	case strings.Contains(lower, "mark") || strings.Contains(lower, "complete") ||
		strings.Contains(lower, "check") || strings.Contains(lower, "done"):
		// "clear completed items" reaches here through the complete/done
		// keywords but is a clear, not a mark.
		if strings.Contains(lower, "clear") {
			return applyClear(listType, items)
		}
		return applyMark(input, listType, items)
	default:
		return Render(listType, items, fmt.Sprintf("Here's your current %s List:", listType))
	}
}

func applyAdd(input string, listType model.ListType, items []model.TodoItem, newID func() string) string {
	target := extractTarget(input, addPatterns)
	if target == "" {
		return Render(listType, items, fmt.Sprintf("Here's your current %s List:", listType))
	}
	items = append(items, model.TodoItem{
		ID:        newID(),
		Text:      target,
		Completed: false,
		MessageID: "new",
	})
	return Render(listType, items, fmt.Sprintf("I've added %q to your %s List.", target, listType))
}

func applyRemove(input string, listType model.ListType, items []model.TodoItem) string {
	target := extractTarget(input, removePatterns)
	if target == "" {
		return Render(listType, items, fmt.Sprintf("Here's your current %s List:", listType))
	}
	kept := make([]model.TodoItem, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Text), strings.ToLower(target)) {
			kept = append(kept, item)
		}
	}
	if len(kept) < len(items) {
		return Render(listType, kept, fmt.Sprintf("I've removed %q from your %s List.", target, listType))
	}
	return Render(listType, items, fmt.Sprintf("I couldn't find %q in your %s List. Here's your current list:", target, listType))
}

func applyMark(input string, listType model.ListType, items []model.TodoItem) string {
	target := extractTarget(input, markPatterns)
	if target == "" {
		return Render(listType, items, fmt.Sprintf("Here's your current %s List:", listType))
	}
	marked := false
	for i, item := range items {
		if !item.Completed && strings.Contains(strings.ToLower(item.Text), strings.ToLower(target)) {
			items[i].Completed = true
			marked = true
			break
		}
	}
	if marked {
		return Render(listType, items, fmt.Sprintf("I've marked %q as complete in your %s List.", target, listType))
	}
	return Render(listType, items, fmt.Sprintf("I couldn't find %q or it's already completed. Here's your current list:", target))
}

func applyClear(listType model.ListType, items []model.TodoItem) string {
	kept := make([]model.TodoItem, 0, len(items))
	for _, item := range items {
		if !item.Completed {
			kept = append(kept, item)
		}
	}
	if len(kept) < len(items) {
		return Render(listType, kept, fmt.Sprintf("I've cleared all completed items from your %s List.", listType))
	}
	return Render(listType, items, "There are no completed items to clear. Here's your current list:")
}

func extractTarget(input string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(input); m != nil && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
