package model

// TodoItem is derived state: it is reconstructed from checkbox lines in
// assistant messages on every turn and never stored independently. IDs are
// positional within one parse pass and must be treated as ephemeral.
type TodoItem struct {
	ID        string
	Text      string
	Completed bool
	MessageID string
}

type ListType string

const (
	ListTypeTodo     ListType = "To-Do"
	ListTypeShopping ListType = "Shopping"
	ListTypeGrocery  ListType = "Grocery"
	ListTypeWork     ListType = "Work"
	ListTypeStudy    ListType = "Study"
)

func (l ListType) IsValid() bool {
	switch l {
	case ListTypeTodo, ListTypeShopping, ListTypeGrocery, ListTypeWork, ListTypeStudy:
		return true
	default:
		return false
	}
}

// Heading returns the exact markdown heading the renderer writes and the
// parser matches. Round-trip fidelity of this string is load-bearing.
func (l ListType) Heading() string {
	return "# " + string(l) + " List"
}
