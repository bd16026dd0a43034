package respond

import (
	"strings"
	"testing"
	"time"

	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/todolist"
)

// Wednesday, March 4 2026.
var fixedNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	n := 0
	return &Engine{
		Now: func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return "id-" + string(rune('0'+n))
		},
	}
}

func emptyConv() model.Conversation {
	return model.Conversation{ID: "c1", Title: "Chat", CreatedAt: fixedNow}
}

func listConv(texts ...string) model.Conversation {
	items := make([]model.TodoItem, len(texts))
	for i, t := range texts {
		items[i] = model.TodoItem{ID: "i" + t, Text: t}
	}
	conv := emptyConv()
	conv.Messages = append(conv.Messages, model.Message{
		ID:        "m1",
		Content:   todolist.Render(model.ListTypeTodo, items, "Your list:"),
		Role:      model.RoleAssistant,
		Timestamp: fixedNow,
	})
	return conv
}

func TestGenerateGreetingIgnoresHistory(t *testing.T) {
	e := testEngine()
	for _, conv := range []model.Conversation{emptyConv(), listConv("milk")} {
		out := e.Generate("hello", conv)
		if out != greetingText {
			t.Fatalf("Generate(hello) = %q, want fixed greeting", out)
		}
	}
}

func TestGenerateModifyShortCircuits(t *testing.T) {
	e := testEngine()
	out := e.Generate("add cheese to my list", listConv("milk", "eggs"))
	if !strings.Contains(out, `added "cheese"`) {
		t.Fatalf("reply = %q, want add confirmation", out)
	}
	for _, item := range []string{"milk", "eggs", "cheese"} {
		if !strings.Contains(out, "- [ ] "+item) {
			t.Fatalf("reply missing item %q: %q", item, out)
		}
	}
}

func TestGenerateEventBlock(t *testing.T) {
	e := testEngine()
	out := e.Generate("schedule a meeting called Standup on Monday at 9am", emptyConv())
	for _, want := range []string{
		"## Event: Standup",
		"Date: 3/9/2026",
		"Time: 9:00 am",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("event reply missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateListCreation(t *testing.T) {
	e := testEngine()
	out := e.Generate("create a shopping list with milk, eggs, and bread", emptyConv())
	if !strings.Contains(out, "# Shopping List") {
		t.Fatalf("reply missing heading: %q", out)
	}
	for _, item := range []string{"milk", "eggs", "bread"} {
		if !strings.Contains(out, "- [ ] "+item) {
			t.Fatalf("reply missing item %q: %q", item, out)
		}
	}
}

func TestGenerateCreatedListIsModifiable(t *testing.T) {
	e := testEngine()
	conv := emptyConv()
	created := e.Generate("create a shopping list with milk, eggs", conv)
	conv.Messages = append(conv.Messages, model.Message{
		ID: "m1", Content: created, Role: model.RoleAssistant, Timestamp: fixedNow,
	})

	out := e.Generate("remove milk from my list", conv)
	if strings.Contains(out, "- [ ] milk") {
		t.Fatalf("milk survived removal:\n%s", out)
	}
	if !strings.Contains(out, "- [ ] eggs") {
		t.Fatalf("eggs missing after removal:\n%s", out)
	}
	if !strings.Contains(out, "# Shopping List") {
		t.Fatalf("list label lost across turns:\n%s", out)
	}
}

func TestGenerateTaskAdvice(t *testing.T) {
	e := testEngine()
	out := e.Generate("how should I manage my tasks", emptyConv())
	if !strings.Contains(out, "1-3-5 rule") {
		t.Fatalf("reply = %q, want manage advice", out)
	}
	if !strings.Contains(out, "**Research findings:**") {
		t.Fatalf("reply missing citations: %q", out)
	}
}

func TestGenerateProductivityAdvice(t *testing.T) {
	e := testEngine()
	out := e.Generate("how can I improve my productivity", emptyConv())
	if !strings.Contains(out, "Pomodoro Technique") {
		t.Fatalf("reply = %q, want improve advice", out)
	}
	if !strings.Contains(out, "**Latest Research Findings:**") {
		t.Fatalf("reply missing dated citations: %q", out)
	}
}

func TestGenerateGoalAdvice(t *testing.T) {
	e := testEngine()
	out := e.Generate("help me set a goal", emptyConv())
	if !strings.Contains(out, "SMART framework") {
		t.Fatalf("reply = %q, want SMART advice", out)
	}
}

func TestGenerateDefaultResponse(t *testing.T) {
	e := testEngine()
	out := e.Generate("tell me about philosophy", emptyConv())
	if !strings.Contains(out, "I understand you're asking about") {
		t.Fatalf("reply = %q, want default acknowledgement", out)
	}
	// The knowledge store always supplies at least a synthesized entry.
	if !strings.Contains(out, "According to ") {
		t.Fatalf("reply missing citation: %q", out)
	}
}

func TestGenerateDeterministicUnderFixedClock(t *testing.T) {
	a := testEngine().Generate("what is deep work", emptyConv())
	b := testEngine().Generate("what is deep work", emptyConv())
	if a != b {
		t.Fatal("responses differ under identical clock and id source")
	}
}
