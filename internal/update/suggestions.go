package update

import "strings"

// Quick-action suggestions shown under the input, refreshed to match the
// topic of the latest exchange.
func defaultSuggestions() []string {
	return []string{
		"Create a to-do list for today",
		"Schedule a meeting for Monday at 10am",
		"How can I improve my productivity?",
	}
}

func suggestionsForTopic(label string) []string {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "shopping") || strings.Contains(lower, "grocery"):
		return []string{
			"Add milk to my list",
			"Remove the first item from my list",
			"Mark bread as complete",
		}
	case strings.Contains(lower, "to-do") || strings.Contains(lower, "task"):
		return []string{
			"Mark the first task as complete",
			"Clear completed items",
			"How should I prioritize my tasks?",
		}
	case strings.Contains(lower, "event") || strings.Contains(lower, "calendar") || strings.Contains(lower, "meeting"):
		return []string{
			"Schedule a follow-up for Friday at 2pm",
			"Create a to-do list for the meeting",
		}
	case strings.Contains(lower, "productivity") || strings.Contains(lower, "focus"):
		return []string{
			"How do I stay focused?",
			"Tell me about the Pomodoro Technique",
			"Help me set a goal",
		}
	default:
		return defaultSuggestions()
	}
}
