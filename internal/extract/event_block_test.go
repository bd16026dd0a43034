package extract

import "testing"

func TestEventBlockRoundTrip(t *testing.T) {
	content := "I've created a calendar event for you:\n\n" +
		"## Event: Standup\n" +
		"Date: 3/9/2026\n" +
		"Time: 9:00 am\n" +
		"Location: the office\n" +
		"\nThe event has been added to your calendar. You can find it in the event card above."

	ev, ok := EventBlock(content)
	if !ok {
		t.Fatal("expected an event card")
	}
	if ev.Title != "Standup" || ev.Date != "3/9/2026" || ev.Time != "9:00 am" || ev.Location != "the office" {
		t.Fatalf("unexpected event: %#v", ev)
	}
	if ev.Description != "" {
		t.Fatalf("unexpected description: %q", ev.Description)
	}
}

func TestEventBlockAbsent(t *testing.T) {
	if _, ok := EventBlock("# Shopping List\n\n- [ ] milk"); ok {
		t.Fatal("plain list should not parse as an event card")
	}
}
