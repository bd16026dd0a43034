// Package respond is the top-level response engine: it classifies a user
// turn, dispatches to the matching generator, and returns assistant
// markdown for the caller to append. It never returns an error; inputs it
// does not recognize fall through to the default response.
package respond

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wiktorlazar/ordoai/internal/knowledge"
	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/todolist"
)

// citationLimit is how many knowledge entries a response cites at most.
const citationLimit = 2

// Engine generates assistant responses. Now and NewID are injectable so
// tests can pin dates and identifiers; both default to real sources.
type Engine struct {
	Now   func() time.Time
	NewID func() string

	lists *todolist.Cache
}

func New() *Engine {
	return &Engine{
		Now:   time.Now,
		NewID: func() string { return ulid.Make().String() },
		lists: todolist.NewCache(),
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return ulid.Make().String()
}

func (e *Engine) listState(conv model.Conversation) ([]model.TodoItem, model.ListType) {
	if e.lists == nil {
		e.lists = todolist.NewCache()
	}
	return e.lists.Derive(conv)
}

// Forget drops cached list state for a deleted conversation.
func (e *Engine) Forget(conversationID string) {
	if e.lists != nil {
		e.lists.Forget(conversationID)
	}
}

type rule struct {
	match   func(string) bool
	respond func(*Engine, string, []knowledge.Entry) string
}

var greetingRe = regexp.MustCompile(`(?i)\b(?:hello|hi|hey)\b`)

func contains(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}

// rules after the modify-list check, evaluated in fixed priority order;
// the first match wins.
var rules = []rule{
	{
		match: func(s string) bool {
			return contains("calendar", "event", "schedule", "appointment")(s) &&
				contains("add", "create", "new", "schedule")(s)
		},
		respond: func(e *Engine, input string, _ []knowledge.Entry) string {
			return e.eventResponse(input)
		},
	},
	{
		match: func(s string) bool {
			listish := contains("to do list", "todo list", "shopping list")(s) ||
				(strings.Contains(s, "list") && contains("make", "create")(s))
			return listish && contains("for", "of", "with")(s)
		},
		respond: func(e *Engine, input string, _ []knowledge.Entry) string {
			return e.listResponse(input)
		},
	},
	{
		match: func(s string) bool {
			return contains("todo", "task", "list")(s) ||
				(strings.Contains(s, "add") && contains("item", "task")(s))
		},
		respond: func(_ *Engine, input string, results []knowledge.Entry) string {
			return taskResponse(strings.ToLower(input), results)
		},
	},
	{
		match: contains("productive", "productivity", "focus", "efficient", "time management"),
		respond: func(_ *Engine, input string, results []knowledge.Entry) string {
			return productivityResponse(strings.ToLower(input), results)
		},
	},
	{
		match: contains("goal", "objective", "target", "achieve"),
		respond: func(_ *Engine, input string, results []knowledge.Entry) string {
			return goalResponse(strings.ToLower(input), results)
		},
	},
	{
		match: func(s string) bool {
			return greetingRe.MatchString(s) || contains("who are you", "what can you do")(s)
		},
		respond: func(_ *Engine, _ string, _ []knowledge.Entry) string {
			return greetingText
		},
	},
}

// Generate returns the assistant response for one user turn. The
// conversation is read-only history; the caller owns appending both turn
// halves. Modifying an existing to-do list short-circuits every other
// branch.
func (e *Engine) Generate(input string, conv model.Conversation) string {
	if todolist.IsModifyRequest(input, conv) {
		items, listType := e.listState(conv)
		return todolist.ApplyState(input, items, listType, e.newID)
	}

	lower := strings.ToLower(input)
	results := knowledge.Search(input, citationLimit, e.now())
	for _, r := range rules {
		if r.match(lower) {
			return r.respond(e, input, results)
		}
	}
	return defaultResponse(lower, results)
}

const greetingText = "Hello! I'm Ordo, your productivity assistant. I can help you with:\n\n" +
	"• Task and to-do list management\n" +
	"• Productivity tips and techniques\n" +
	"• Goal setting and achievement strategies\n" +
	"• Time management advice\n" +
	"• Focus and concentration improvement\n\n" +
	"What would you like assistance with today?"

func defaultResponse(lowerInput string, results []knowledge.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I understand you're asking about %q.\n\n", lowerInput)

	if len(results) > 0 {
		b.WriteString("Here's what I found from reliable sources:\n\n")
		for _, r := range results {
			dateInfo := ""
			if r.Date != "" {
				dateInfo = fmt.Sprintf(" (%s)", r.Date)
			}
			fmt.Fprintf(&b, "According to %s%s: %q", r.Source, dateInfo, r.Content)
			if r.URL != "" {
				fmt.Fprintf(&b, "\nSource: %s", r.URL)
			}
			b.WriteString("\n\n")
		}
		b.WriteString("Is there a specific aspect of this topic you'd like to explore further?\n\n")
		return b.String()
	}

	b.WriteString("I've searched for information on this topic, but I don't have specific data in my knowledge base. As your productivity assistant, I can help with task management, productivity techniques, goal setting, and time management.\n\n")
	b.WriteString("Would you like me to provide some general guidance on this topic, or would you prefer to ask about something more specific?\n\n")
	return b.String()
}
