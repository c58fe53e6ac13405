package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/todo-dashboard/internal/config"
	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/events"
	"github.com/spec-kit/todo-dashboard/internal/persistence"
	"github.com/spec-kit/todo-dashboard/internal/repository"
)

func newNotificationService(t *testing.T) (*NotificationService, repository.TodoRepository) {
	t.Helper()
	repo := repository.NewTodoRepository(persistence.NewMemoryStore())
	cfg := config.NotificationConfig{DueWindowHours: 4, ScanIntervalMinutes: 15, CompletedFeedLimit: 3}
	svc := NewNotificationService(repo, events.NewInMemoryDispatcher(), zap.NewNop(), cfg)
	svc.now = fixedNow
	return svc, repo
}

func TestFeedForUserOverSeed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationService(t)

	feed, err := svc.FeedForUser(ctx, 1)
	require.NoError(t, err)

	require.Len(t, feed.Upcoming, 2)
	assert.Equal(t, int64(2), feed.Upcoming[0].ID)
	assert.Equal(t, int64(3), feed.Upcoming[1].ID)

	// exactly three completed seeds, so the cap is filled but not exceeded
	require.Len(t, feed.Completed, 3)
	for _, todo := range feed.Completed {
		assert.Equal(t, domain.TodoStatusCompleted, todo.Status)
	}
}

func TestFeedCompletedCappedAtLimit(t *testing.T) {
	ctx := context.Background()
	svc, repo := newNotificationService(t)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	all = append(all,
		domain.Todo{ID: 7, Title: "Extra one", Description: "d", DueDate: "16/09/2023", DueTime: "10:00", Status: domain.TodoStatusCompleted, UserID: 1, CreatedAt: "16/09/2023 09:00"},
		domain.Todo{ID: 8, Title: "Extra two", Description: "d", DueDate: "16/09/2023", DueTime: "11:00", Status: domain.TodoStatusCompleted, UserID: 1, CreatedAt: "16/09/2023 09:00"},
	)
	require.NoError(t, repo.ReplaceAll(ctx, all))

	feed, err := svc.FeedForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, feed.Completed, 3)
}

func TestFeedEmptyForOtherUsers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationService(t)

	feed, err := svc.FeedForUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, feed.Upcoming)
	assert.Empty(t, feed.Completed)
}
