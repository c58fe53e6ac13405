package events

import (
	"time"

	"github.com/spec-kit/todo-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTodoCreated       EventType = "todo_created"
	EventTodoUpdated       EventType = "todo_updated"
	EventTodoStatusChanged EventType = "todo_status_changed"
	EventTodoDeleted       EventType = "todo_deleted"
	EventTodoDueSoon       EventType = "todo_due_soon"
	EventUserRoleChanged   EventType = "user_role_changed"
	EventUserStatusChanged EventType = "user_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TodoCreatedPayload payload.
type TodoCreatedPayload struct {
	TodoID  int64  `json:"todo_id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	DueTime string `json:"due_time"`
}

// TodoStatusChangedPayload payload.
type TodoStatusChangedPayload struct {
	TodoID    int64             `json:"todo_id"`
	OldStatus domain.TodoStatus `json:"old_status"`
	NewStatus domain.TodoStatus `json:"new_status"`
}

// TodoDeletedPayload payload.
type TodoDeletedPayload struct {
	TodoID int64 `json:"todo_id"`
}

// TodoDueSoonPayload payload emitted by the reminder worker.
type TodoDueSoonPayload struct {
	TodoID  int64  `json:"todo_id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	DueTime string `json:"due_time"`
}

// UserRoleChangedPayload payload.
type UserRoleChangedPayload struct {
	TargetUserID int64           `json:"target_user_id"`
	NewRole      domain.UserRole `json:"new_role"`
}

// UserStatusChangedPayload payload.
type UserStatusChangedPayload struct {
	TargetUserID int64 `json:"target_user_id"`
	IsActive     bool  `json:"is_active"`
}
