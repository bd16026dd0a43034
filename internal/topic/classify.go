// Package topic labels new conversations: free text in, short title and
// icon out.
package topic

import (
	"strings"
)

type Topic struct {
	Label string
	Icon  string
}

// icons maps topic words to their icon. Scanned for the fallback phrase;
// the keyword rules below name their icons directly.
var icons = map[string]string{
	"todo":        "📝",
	"task":        "✅",
	"list":        "📋",
	"shopping":    "🛒",
	"grocery":     "🥑",
	"work":        "💼",
	"study":       "📚",
	"calendar":    "📅",
	"event":       "🗓️",
	"meeting":     "👥",
	"appointment": "🕒",
	"schedule":    "⏰",
	"goal":        "🎯",
	"objective":   "🏆",
	"productivity": "⚡",
	"focus":       "🧠",
	"time":        "⏱️",
	"management":  "📊",
	"health":      "💪",
	"fitness":     "🏃",
	"meditation":  "🧘",
	"mindfulness": "🌿",
	"habit":       "🔄",
	"routine":     "🔁",
	"project":     "📋",
	"idea":        "💡",
	"brainstorm":  "🌪️",
	"creativity":  "🎨",
	"motivation":  "🔥",
	"inspiration": "✨",
}

const defaultIcon = "🤖"

type rule struct {
	match func(string) bool
	topic Topic
}

func anyOf(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// rules run in order; the first match wins, so more specific list types
// must come after the generic to-do group exactly as listed here.
var rules = []rule{
	{anyOf("todo list", "to do list", "task list"), Topic{"To-do List", icons["todo"]}},
	{allOf(anyOf("list"), anyOf("create")), Topic{"To-do List", icons["todo"]}},
	{anyOf("shopping list"), Topic{"Shopping List", icons["shopping"]}},
	{anyOf("grocery list"), Topic{"Grocery List", icons["grocery"]}},
	{anyOf("work list"), Topic{"Work List", icons["work"]}},
	{anyOf("study list"), Topic{"Study List", icons["study"]}},
	{allOf(anyOf("calendar", "event", "meeting", "appointment"), anyOf("add", "create", "schedule")), Topic{"Calendar Event", icons["calendar"]}},
	{anyOf("goal", "objective", "target"), Topic{"Goal Setting", icons["goal"]}},
	{anyOf("productive", "productivity"), Topic{"Productivity", icons["productivity"]}},
	{anyOf("focus", "concentrate", "attention"), Topic{"Focus", icons["focus"]}},
	{func(s string) bool {
		return strings.Contains(s, "time management") || (strings.Contains(s, "time") && strings.Contains(s, "manage"))
	}, Topic{"Time Management", icons["time"]}},
	{anyOf("health", "wellness", "fitness", "exercise"), Topic{"Health & Wellness", icons["health"]}},
	{anyOf("meditation", "mindfulness", "relax", "calm"), Topic{"Mindfulness", icons["mindfulness"]}},
	{anyOf("habit", "routine", "daily", "regular"), Topic{"Habits & Routines", icons["habit"]}},
	{anyOf("project"), Topic{"Project Management", icons["project"]}},
	{anyOf("idea", "creative", "brainstorm", "inspiration"), Topic{"Ideas & Creativity", icons["idea"]}},
	{anyOf("motivate", "motivation", "inspire"), Topic{"Motivation", icons["motivation"]}},
}

var stopWords = map[string]bool{
	"what": true, "when": true, "where": true, "why": true, "how": true,
	"the": true, "and": true, "for": true, "with": true,
}

// Classify maps free text to a short title and icon. Keyword groups run in
// fixed priority order; unmatched input falls back to a phrase clipped from
// the first sentence. Pure function of its input.
func Classify(text string) Topic {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.match(lower) {
			return r.topic
		}
	}
	return fallbackTopic(text)
}

func fallbackTopic(text string) Topic {
	firstSentence := text
	if idx := strings.IndexAny(text, ".!?"); idx >= 0 {
		firstSentence = text[:idx]
	}
	firstSentence = strings.TrimSpace(firstSentence)

	words := strings.Fields(firstSentence)
	label := ""
	if len(words) <= 3 {
		label = firstSentence
	} else {
		mainIdx := -1
		for i, w := range words {
			if len(w) > 3 && !stopWords[strings.ToLower(w)] {
				mainIdx = i
				break
			}
		}
		if mainIdx >= 0 {
			start := mainIdx - 1
			if start < 0 {
				start = 0
			}
			end := mainIdx + 3
			if end > len(words) {
				end = len(words)
			}
			label = strings.Join(words[start:end], " ")
		} else {
			end := len(words)
			if end > 4 {
				end = 4
			}
			label = strings.Join(words[:end], " ")
		}
	}

	if runes := []rune(label); len(runes) > 25 {
		label = string(runes[:25]) + "..."
	}

	for _, w := range strings.Fields(strings.ToLower(label)) {
		if len(w) > 3 {
			if icon, ok := icons[w]; ok {
				return Topic{Label: label, Icon: icon}
			}
		}
	}
	return Topic{Label: label, Icon: defaultIcon}
}

// IconFor scans a topic label against the icon table, falling back to the
// default icon.
func IconFor(label string) string {
	lower := strings.ToLower(label)
	for key, icon := range icons {
		if strings.Contains(lower, key) {
			return icon
		}
	}
	return defaultIcon
}
