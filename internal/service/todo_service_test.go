package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/todo-dashboard/internal/config"
	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/events"
	"github.com/spec-kit/todo-dashboard/internal/persistence"
	"github.com/spec-kit/todo-dashboard/internal/repository"
	apperrors "github.com/spec-kit/todo-dashboard/pkg/util"
)

// fixedNow pins the clock between the seed dataset's past and future due
// dates.
func fixedNow() time.Time {
	return time.Date(2025, 8, 1, 12, 0, 0, 0, time.Local)
}

func newTodoService(t *testing.T) (*TodoService, repository.TodoRepository) {
	t.Helper()
	repo := repository.NewTodoRepository(persistence.NewMemoryStore())
	svc := NewTodoService(config.AppConfig{}, TodoDependencies{
		TodoRepo:   repo,
		Dispatcher: events.NewInMemoryDispatcher(),
	})
	svc.now = fixedNow
	return svc, repo
}

func TestAddFutureDueSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTodoService(t)

	todo, err := svc.Add(ctx, 1, TodoDraft{
		Title:       "Prepare demo",
		Description: "Walk through the release notes",
		DueDate:     "02/08/2025",
		DueTime:     "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), todo.ID)
	assert.Equal(t, domain.TodoStatusPending, todo.Status)
	assert.Equal(t, int64(1), todo.UserID)
	assert.Equal(t, "01/08/2025 12:00", todo.CreatedAt)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestAddPastDueFailsAndLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTodoService(t)

	_, err := svc.Add(ctx, 1, TodoDraft{
		Title:       "Too late",
		Description: "already overdue",
		DueDate:     "16/09/2023",
		DueTime:     "18:00",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, persistence.SeedTodos(), all)
}

func TestAddDueExactlyNowFails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTodoService(t)

	_, err := svc.Add(ctx, 1, TodoDraft{
		Title:       "On the dot",
		Description: "not strictly in the future",
		DueDate:     "01/08/2025",
		DueTime:     "12:00",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestAddMissingFieldsFails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTodoService(t)

	_, err := svc.Add(ctx, 1, TodoDraft{Title: "No description", DueDate: "02/08/2025", DueTime: "10:00"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Add(ctx, 1, TodoDraft{Description: "no title", DueDate: "02/08/2025", DueTime: "10:00"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestAddCancelledBeforeLatencyElapsesWritesNothing(t *testing.T) {
	svc, repo := newTodoService(t)
	svc.submitDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Add(ctx, 1, TodoDraft{
		Title:       "Abandoned",
		Description: "caller navigated away",
		DueDate:     "02/08/2025",
		DueTime:     "10:00",
	})
	require.ErrorIs(t, err, context.Canceled)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, persistence.SeedTodos(), all)
}

func TestEditCompletedTodoSkipsFutureCheck(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTodoService(t)

	// seed todo 1 is completed with a 2023 due date
	updated, err := svc.Edit(ctx, 1, domain.Todo{
		ID:          1,
		Title:       "Submit project report (archived)",
		Description: "kept for reference",
		DueDate:     "16/09/2023",
		DueTime:     "18:00",
		Status:      domain.TodoStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, "Submit project report (archived)", updated.Title)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	got, _ := all.FindByID(1)
	assert.Equal(t, "Submit project report (archived)", got.Title)
}

func TestEditPendingTodoEnforcesFutureDue(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTodoService(t)

	_, err := svc.Edit(ctx, 1, domain.Todo{
		ID:          2,
		Title:       "Team stand-up meeting",
		Description: "moved backwards",
		DueDate:     "16/09/2023",
		DueTime:     "18:00",
		Status:      domain.TodoStatusPending,
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestEditPreservesCreatedAtAndOwner(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTodoService(t)

	_, err := svc.Edit(ctx, 1, domain.Todo{
		ID:          2,
		Title:       "Team stand-up meeting",
		Description: "rescheduled",
		DueDate:     "02/08/2025",
		DueTime:     "09:00",
		Status:      domain.TodoStatusPending,
		UserID:      42,
		CreatedAt:   "tampered",
	})
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	got, _ := all.FindByID(2)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "01/08/2025 08:00", got.CreatedAt)
}

func TestEditUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTodoService(t)

	_, err := svc.Edit(ctx, 1, domain.Todo{
		ID:          99,
		Title:       "Ghost",
		Description: "never stored",
		DueDate:     "02/08/2025",
		DueTime:     "10:00",
		Status:      domain.TodoStatusPending,
	})
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, persistence.SeedTodos(), all)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTodoService(t)

	require.NoError(t, svc.Remove(ctx, 1, 5))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	_, ok := all.FindByID(5)
	assert.False(t, ok)

	// unknown ids degrade silently
	require.NoError(t, svc.Remove(ctx, 1, 99))
	all, _ = repo.All(ctx)
	assert.Len(t, all, 5)
}

func TestRemoveForeignTodoIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTodoService(t)

	require.NoError(t, svc.Remove(ctx, 2, 1))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestToggleStatusDoubleRestores(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTodoService(t)

	first, ok, err := svc.ToggleStatus(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.TodoStatusCompleted, first.Status)

	second, ok, err := svc.ToggleStatus(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.TodoStatusPending, second.Status)
}

func TestToggleStatusUnknownID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTodoService(t)

	_, ok, err := svc.ToggleStatus(ctx, 1, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListForUserAppliesFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTodoService(t)

	all, err := svc.ListForUser(ctx, 1, "", "all")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	pending, err := svc.ListForUser(ctx, 1, "", "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	searched, err := svc.ListForUser(ctx, 1, "groceries", "all")
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, int64(5), searched[0].ID)
}

func TestStatsOverSeed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTodoService(t)

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TodoStats{Total: 6, Upcoming: 3, Completed: 3}, stats)
}

func TestDueWithinWindowOverSeed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTodoService(t)

	// at 2025-08-01 12:00 the stand-up (14:00) and follow-up (15:30) fall in
	// the 4h window; the 2023 entries are long past or completed
	due, err := svc.DueWithinWindow(ctx, 1, 4*time.Hour)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, int64(2), due[0].ID)
	assert.Equal(t, int64(3), due[1].ID)
}
