package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/todo-dashboard/internal/config"
	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/events"
	"github.com/spec-kit/todo-dashboard/internal/repository"
	apperrors "github.com/spec-kit/todo-dashboard/pkg/util"
)

// TodoService coordinates task workflows. Every mutation reads the entire
// collection from the store, applies a pure transformation, and writes the
// whole collection back.
type TodoService struct {
	todos       repository.TodoRepository
	dispatcher  events.Dispatcher
	submitDelay time.Duration
	now         func() time.Time
}

// TodoDependencies bundles requirements for the todo service.
type TodoDependencies struct {
	TodoRepo   repository.TodoRepository
	Dispatcher events.Dispatcher
}

// TodoDraft describes the add-flow payload. DueDate is already in the stored
// DD/MM/YYYY layout; the transport layer owns the input-format conversion.
type TodoDraft struct {
	Title       string
	Description string
	DueDate     string
	DueTime     string
}

// NewTodoService constructs the service.
func NewTodoService(cfg config.AppConfig, deps TodoDependencies) *TodoService {
	return &TodoService{
		todos:       deps.TodoRepo,
		dispatcher:  deps.Dispatcher,
		submitDelay: cfg.SubmitDelay(),
		now:         time.Now,
	}
}

// ListForUser returns the caller's todos, filtered by search term and status,
// in original collection order.
func (s *TodoService) ListForUser(ctx context.Context, userID int64, search, status string) (domain.Todos, error) {
	all, err := s.todos.All(ctx)
	if err != nil {
		return nil, err
	}
	return all.ForUser(userID).MatchingSearch(search).WithStatus(status), nil
}

// Stats aggregates counts over the caller's todos.
func (s *TodoService) Stats(ctx context.Context, userID int64) (domain.TodoStats, error) {
	all, err := s.todos.All(ctx)
	if err != nil {
		return domain.TodoStats{}, err
	}
	return all.ForUser(userID).Stats(), nil
}

// DueWithinWindow returns the caller's non-completed todos due within
// [now, now+window], both bounds inclusive.
func (s *TodoService) DueWithinWindow(ctx context.Context, userID int64, window time.Duration) (domain.Todos, error) {
	all, err := s.todos.All(ctx)
	if err != nil {
		return nil, err
	}
	return all.ForUser(userID).DueWithin(s.now(), window), nil
}

// Add validates the draft and appends a fresh pending todo owned by userID.
// The collection is left unchanged on any failure.
func (s *TodoService) Add(ctx context.Context, userID int64, draft TodoDraft) (domain.Todo, error) {
	if err := validateTodoFields(draft.Title, draft.Description, draft.DueDate, draft.DueTime); err != nil {
		return domain.Todo{}, err
	}
	if err := s.requireFuture(draft.DueDate, draft.DueTime); err != nil {
		return domain.Todo{}, err
	}

	if err := s.simulateLatency(ctx); err != nil {
		return domain.Todo{}, err
	}

	all, err := s.todos.All(ctx)
	if err != nil {
		return domain.Todo{}, err
	}

	todo := domain.Todo{
		ID:          all.NextID(),
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		DueTime:     draft.DueTime,
		Status:      domain.TodoStatusPending,
		UserID:      userID,
		CreatedAt:   s.now().Format(domain.TimestampLayout),
	}

	if err := s.todos.ReplaceAll(ctx, append(all, todo)); err != nil {
		return domain.Todo{}, err
	}

	s.publish(ctx, events.EventTodoCreated, userID, events.TodoCreatedPayload{
		TodoID:  todo.ID,
		Title:   todo.Title,
		DueDate: todo.DueDate,
		DueTime: todo.DueTime,
	})
	return todo, nil
}

// Edit replaces the entry matching updated.ID wholesale. The future-date rule
// applies only while the todo stays pending. Entries the caller does not own
// are treated as lookup misses and degrade to a silent no-op.
func (s *TodoService) Edit(ctx context.Context, userID int64, updated domain.Todo) (domain.Todo, error) {
	if err := validateTodoFields(updated.Title, updated.Description, updated.DueDate, updated.DueTime); err != nil {
		return domain.Todo{}, err
	}
	if updated.Status == domain.TodoStatusPending {
		if err := s.requireFuture(updated.DueDate, updated.DueTime); err != nil {
			return domain.Todo{}, err
		}
	}

	if err := s.simulateLatency(ctx); err != nil {
		return domain.Todo{}, err
	}

	all, err := s.todos.All(ctx)
	if err != nil {
		return domain.Todo{}, err
	}

	existing, ok := all.FindByID(updated.ID)
	if !ok || existing.UserID != userID {
		return updated, nil
	}

	// createdAt is set once at creation and never mutated.
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt

	if err := s.todos.ReplaceAll(ctx, all.Replace(updated)); err != nil {
		return domain.Todo{}, err
	}

	s.publish(ctx, events.EventTodoUpdated, userID, events.TodoCreatedPayload{
		TodoID:  updated.ID,
		Title:   updated.Title,
		DueDate: updated.DueDate,
		DueTime: updated.DueTime,
	})
	return updated, nil
}

// Remove deletes the matching entry once confirmed. Unknown or foreign ids
// leave the collection unchanged.
func (s *TodoService) Remove(ctx context.Context, userID, todoID int64) error {
	all, err := s.todos.All(ctx)
	if err != nil {
		return err
	}

	existing, ok := all.FindByID(todoID)
	if !ok || existing.UserID != userID {
		return nil
	}

	if err := s.todos.ReplaceAll(ctx, all.Remove(todoID)); err != nil {
		return err
	}

	s.publish(ctx, events.EventTodoDeleted, userID, events.TodoDeletedPayload{TodoID: todoID})
	return nil
}

// ToggleStatus flips pending<->completed for the matching entry.
func (s *TodoService) ToggleStatus(ctx context.Context, userID, todoID int64) (domain.Todo, bool, error) {
	all, err := s.todos.All(ctx)
	if err != nil {
		return domain.Todo{}, false, err
	}

	existing, ok := all.FindByID(todoID)
	if !ok || existing.UserID != userID {
		return domain.Todo{}, false, nil
	}

	toggled := all.ToggleStatus(todoID)
	if err := s.todos.ReplaceAll(ctx, toggled); err != nil {
		return domain.Todo{}, false, err
	}

	flipped, _ := toggled.FindByID(todoID)
	s.publish(ctx, events.EventTodoStatusChanged, userID, events.TodoStatusChangedPayload{
		TodoID:    todoID,
		OldStatus: existing.Status,
		NewStatus: flipped.Status,
	})
	return flipped, true, nil
}

// requireFuture enforces that the combined due date-time is strictly after
// the current moment.
func (s *TodoService) requireFuture(dueDate, dueTime string) error {
	due, err := (domain.Todo{DueDate: dueDate, DueTime: dueTime}).DueAt()
	if err != nil {
		return apperrors.NewValidationError("invalid due date or time", map[string]any{
			"dueDate": dueDate,
			"dueTime": dueTime,
		})
	}
	if !due.After(s.now()) {
		return apperrors.NewValidationError("due date and time must be in the future", nil)
	}
	return nil
}

// simulateLatency stands in for request latency on mutating submissions.
// Unlike the fixed timer it replaces, cancelling the context abandons the
// pending commit instead of leaving a dangling write.
func (s *TodoService) simulateLatency(ctx context.Context) error {
	if s.submitDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.submitDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *TodoService) publish(ctx context.Context, eventType events.EventType, userID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: s.now(),
		Payload:   payload,
	})
}

func validateTodoFields(title, description, dueDate, dueTime string) error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(dueDate) == "" {
		missing = append(missing, "dueDate")
	}
	if strings.TrimSpace(dueTime) == "" {
		missing = append(missing, "dueTime")
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("all fields are required", map[string]any{"missing": missing})
	}
	return nil
}
