package models

// Action tracks the lifecycle state of a row. Rows are never physically
// removed; deletes flip the action to ActionDeleted and every read path
// filters on Deleted().
type Action string

const (
	ActionAdded   Action = "A"
	ActionEdited  Action = "E"
	ActionDeleted Action = "D"
)

func (a Action) Deleted() bool {
	return a == ActionDeleted
}

func (a Action) Valid() bool {
	switch a {
	case ActionAdded, ActionEdited, ActionDeleted:
		return true
	default:
		return false
	}
}
