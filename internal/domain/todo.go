package domain

import (
	"strings"
	"time"
)

// TodoStatus enumerates todo lifecycle states.
type TodoStatus string

const (
	TodoStatusPending   TodoStatus = "pending"
	TodoStatusCompleted TodoStatus = "completed"
)

// StatusFilterAll passes a status filter stage through unchanged.
const StatusFilterAll = "all"

// Display layouts for the persisted date/time strings.
const (
	DueDateLayout   = "02/01/2006"
	DueTimeLayout   = "15:04"
	TimestampLayout = "02/01/2006 15:04"
)

// Todo is the domain model for tasks. JSON tags follow the persisted-state
// contract of the `todos` collection. A todo belongs to exactly one user.
type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"dueDate"`
	DueTime     string     `json:"dueTime"`
	Status      TodoStatus `json:"status"`
	UserID      int64      `json:"userId"`
	CreatedAt   string     `json:"createdAt"`
}

// DueAt combines DueDate and DueTime into a local-time instant.
func (t Todo) DueAt() (time.Time, error) {
	return time.ParseInLocation(DueDateLayout+" "+DueTimeLayout, t.DueDate+" "+t.DueTime, time.Local)
}

// TodoStats aggregates counts over a todo collection.
type TodoStats struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
}

// Todos is the full task collection as persisted under the `todos` key.
// Derivations return fresh slices in original order and leave the receiver
// untouched; the caller persists the result.
type Todos []Todo

// ForUser returns the subsequence owned by userID.
func (ts Todos) ForUser(userID int64) Todos {
	out := make(Todos, 0, len(ts))
	for _, t := range ts {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

// MatchingSearch keeps todos whose title or description contains the term,
// case-insensitively. An empty term returns the input unchanged.
func (ts Todos) MatchingSearch(term string) Todos {
	if term == "" {
		return ts
	}
	needle := strings.ToLower(term)
	out := make(Todos, 0, len(ts))
	for _, t := range ts {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}

// WithStatus keeps todos matching status exactly; "all" returns the input
// unchanged.
func (ts Todos) WithStatus(status string) Todos {
	if status == "" || status == StatusFilterAll {
		return ts
	}
	out := make(Todos, 0, len(ts))
	for _, t := range ts {
		if string(t.Status) == status {
			out = append(out, t)
		}
	}
	return out
}

// Stats counts totals plus pending (upcoming) and completed todos.
func (ts Todos) Stats() TodoStats {
	stats := TodoStats{Total: len(ts)}
	for _, t := range ts {
		switch t.Status {
		case TodoStatusPending:
			stats.Upcoming++
		case TodoStatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// DueWithin returns non-completed todos whose due date-time falls within
// [now, now+window], inclusive of both bounds. Unparseable due strings are
// skipped.
func (ts Todos) DueWithin(now time.Time, window time.Duration) Todos {
	end := now.Add(window)
	out := make(Todos, 0, len(ts))
	for _, t := range ts {
		if t.Status == TodoStatusCompleted {
			continue
		}
		due, err := t.DueAt()
		if err != nil {
			continue
		}
		if !due.Before(now) && !due.After(end) {
			out = append(out, t)
		}
	}
	return out
}

// Replace swaps the entry matching updated.ID wholesale. Missing ids are a
// silent no-op.
func (ts Todos) Replace(updated Todo) Todos {
	out := make(Todos, len(ts))
	copy(out, ts)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}

// Remove drops the matching entry; the collection is unchanged when the id is
// unknown.
func (ts Todos) Remove(id int64) Todos {
	out := make(Todos, 0, len(ts))
	for _, t := range ts {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// ToggleStatus flips pending<->completed for the matching entry. Missing ids
// are a silent no-op.
func (ts Todos) ToggleStatus(id int64) Todos {
	out := make(Todos, len(ts))
	copy(out, ts)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if out[i].Status == TodoStatusCompleted {
			out[i].Status = TodoStatusPending
		} else {
			out[i].Status = TodoStatusCompleted
		}
	}
	return out
}

// FindByID returns the matching entry.
func (ts Todos) FindByID(id int64) (Todo, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return Todo{}, false
}

// NextID yields max(id)+1. Deletions never cause id reuse and rapid additions
// never collide, unlike timestamp or length based generation.
func (ts Todos) NextID() int64 {
	var max int64
	for _, t := range ts {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
