package notify

import (
	"slices"
	"time"
)

// Command is a store mutation. The set of commands is closed: Add,
// RemoveOne and RemoveAll.
type Command interface {
	command()
}

// Add appends a new notification with a fresh id.
type Add struct {
	Content  Content
	Category Category
}

// RemoveOne removes the notification with the given id, if present.
type RemoveOne struct {
	ID ID
}

// RemoveAll empties the list.
type RemoveAll struct{}

// Unknown stands in for a command kind this package does not understand,
// such as an unrecognized kind read from a script. Reduce ignores it.
type Unknown struct {
	Kind string
}

func (Add) command()       {}
func (RemoveOne) command() {}
func (RemoveAll) command() {}
func (Unknown) command()   {}

// Reduce applies cmd to list and returns the resulting list. The input slice
// is never modified: a changed list is always a new slice, and an unchanged
// list is returned as-is. Unrecognized commands leave the list unchanged.
func Reduce(list []Notification, cmd Command, ids *IDGenerator, now time.Time) []Notification {
	switch c := cmd.(type) {
	case Add:
		next := make([]Notification, len(list), len(list)+1)
		copy(next, list)
		return append(next, Notification{
			ID:        ids.Next(),
			Content:   c.Content,
			Category:  c.Category,
			CreatedAt: now,
		})

	case RemoveOne:
		idx := slices.IndexFunc(list, func(n Notification) bool { return n.ID == c.ID })
		if idx < 0 {
			return list
		}
		next := make([]Notification, 0, len(list)-1)
		next = append(next, list[:idx]...)
		return append(next, list[idx+1:]...)

	case RemoveAll:
		if len(list) == 0 {
			return list
		}
		return []Notification{}

	default:
		return list
	}
}
