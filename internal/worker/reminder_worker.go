package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/todo-dashboard/internal/config"
	"github.com/spec-kit/todo-dashboard/internal/events"
	"github.com/spec-kit/todo-dashboard/internal/repository"
	"github.com/spec-kit/todo-dashboard/internal/service"
)

// ReminderWorker periodically scans for todos due within the notification
// window and publishes due-soon events for them.
type ReminderWorker struct {
	todos      repository.TodoRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewReminderWorker constructs the worker.
func NewReminderWorker(todos repository.TodoRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *ReminderWorker {
	return &ReminderWorker{todos: todos, dispatcher: dispatcher, logger: logger, cfg: cfg}
}

// Run blocks until the context is cancelled, scanning on each tick.
func (w *ReminderWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.ScanInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reminder worker stopped")
			return
		case <-ticker.C:
			if err := w.scan(ctx); err != nil {
				w.logger.Warn("reminder scan failed", zap.Error(err))
			}
		}
	}
}

func (w *ReminderWorker) scan(ctx context.Context) error {
	all, err := w.todos.All(ctx)
	if err != nil {
		return err
	}

	dueSoon := all.DueWithin(time.Now(), w.cfg.DueWindow())
	for _, todo := range dueSoon {
		_ = w.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTodoDueSoon,
			UserID:    todo.UserID,
			Timestamp: time.Now(),
			Payload: events.TodoDueSoonPayload{
				TodoID:  todo.ID,
				Title:   todo.Title,
				DueDate: todo.DueDate,
				DueTime: todo.DueTime,
			},
		})
	}
	if len(dueSoon) > 0 {
		w.logger.Debug("due-soon reminders published", zap.Int("count", len(dueSoon)))
	}
	return nil
}

// StartNotificationWorker registers notification handlers and launches the
// reminder loop.
func StartNotificationWorker(ctx context.Context, notifications *service.NotificationService, reminders *ReminderWorker) {
	if notifications != nil {
		notifications.RegisterHandlers()
	}
	if reminders != nil {
		go reminders.Run(ctx)
	}
}
