package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/todo-dashboard/internal/config"
	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/events"
	"github.com/spec-kit/todo-dashboard/internal/repository"
)

// NotificationFeed groups a user's notification drawer contents.
type NotificationFeed struct {
	Upcoming  domain.Todos `json:"upcoming"`
	Completed domain.Todos `json:"completed"`
}

// NotificationService derives the due-soon feed and logs todo lifecycle
// events.
type NotificationService struct {
	todos      repository.TodoRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
	now        func() time.Time
}

// NewNotificationService creates the service.
func NewNotificationService(todos repository.TodoRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		todos:      todos,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// FeedForUser returns pending todos due within the configured window plus the
// most recent completed todos, capped by the feed limit.
func (n *NotificationService) FeedForUser(ctx context.Context, userID int64) (NotificationFeed, error) {
	all, err := n.todos.All(ctx)
	if err != nil {
		return NotificationFeed{}, err
	}

	mine := all.ForUser(userID)
	completed := mine.WithStatus(string(domain.TodoStatusCompleted))
	if limit := n.cfg.CompletedFeedLimit; limit > 0 && len(completed) > limit {
		completed = completed[:limit]
	}

	return NotificationFeed{
		Upcoming:  mine.DueWithin(n.now(), n.cfg.DueWindow()),
		Completed: completed,
	}, nil
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTodoCreated, n.handleTodoEvent)
	n.dispatcher.Subscribe(events.EventTodoUpdated, n.handleTodoEvent)
	n.dispatcher.Subscribe(events.EventTodoStatusChanged, n.handleTodoEvent)
	n.dispatcher.Subscribe(events.EventTodoDeleted, n.handleTodoEvent)
	n.dispatcher.Subscribe(events.EventTodoDueSoon, n.handleTodoDueSoon)
	n.dispatcher.Subscribe(events.EventUserRoleChanged, n.handleUserEvent)
	n.dispatcher.Subscribe(events.EventUserStatusChanged, n.handleUserEvent)
}

func (n *NotificationService) handleTodoEvent(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.Int64("user_id", event.UserID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTodoDueSoon(_ context.Context, event events.Event) error {
	n.logger.Info("TodoDueSoon",
		zap.Int64("user_id", event.UserID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleUserEvent(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.Int64("user_id", event.UserID),
		zap.Any("payload", event.Payload))
	return nil
}
