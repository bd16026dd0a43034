package extract

import (
	"testing"

	"github.com/wiktorlazar/ordoai/internal/model"
)

func TestDetectListType(t *testing.T) {
	cases := []struct {
		in   string
		want model.ListType
	}{
		{"make me a shopping list with milk", model.ListTypeShopping},
		{"create a grocery list", model.ListTypeGrocery},
		{"work list for monday", model.ListTypeWork},
		{"study list for finals", model.ListTypeStudy},
		{"create a todo list for the week", model.ListTypeTodo},
	}
	for _, tc := range cases {
		if got := DetectListType(tc.in); got != tc.want {
			t.Fatalf("DetectListType(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestItemsFromTrailingClause(t *testing.T) {
	got := Items("create a shopping list with milk, eggs, and bread", model.ListTypeShopping)
	want := []string{"milk", "eggs", "bread"}
	assertItems(t, got, want)
}

func TestItemsClauseStopsAtPeriod(t *testing.T) {
	got := Items("make a list of apples, pears. thanks a lot", model.ListTypeTodo)
	want := []string{"apples", "pears"}
	assertItems(t, got, want)
}

func TestItemsFallbackFragments(t *testing.T) {
	got := Items("buy groceries; call the plumber, finish taxes", model.ListTypeTodo)
	want := []string{"buy groceries", "call the plumber", "finish taxes"}
	assertItems(t, got, want)
}

func TestItemsFragmentsSkipMetaTalk(t *testing.T) {
	got := Items("please create, a list", model.ListTypeTodo)
	// Both fragments mention the list or its creation, so the canned set
	// for the detected type is used instead.
	want := cannedItems[model.ListTypeTodo]
	assertItems(t, got, want)
}

func TestItemsCannedPerListType(t *testing.T) {
	for _, lt := range []model.ListType{
		model.ListTypeShopping, model.ListTypeGrocery,
		model.ListTypeWork, model.ListTypeStudy, model.ListTypeTodo,
	} {
		got := Items("xx", lt)
		if len(got) != len(cannedItems[lt]) {
			t.Fatalf("canned items for %s = %v", lt, got)
		}
	}
}

func assertItems(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items = %v, want %v", got, want)
		}
	}
}
