package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/persistence"
)

func TestTodoRepositorySeedFallback(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRepository(persistence.NewMemoryStore())

	todos, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, persistence.SeedTodos(), todos)
}

func TestTodoRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRepository(persistence.NewMemoryStore())

	want := domain.Todos{
		{ID: 1, Title: "One", Description: "first", DueDate: "01/08/2025", DueTime: "14:00", Status: domain.TodoStatusPending, UserID: 1, CreatedAt: "01/08/2025 08:00"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, want))

	got, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTodoRepositoryEmptyCollectionIsNotSeedFallback(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRepository(persistence.NewMemoryStore())

	require.NoError(t, repo.ReplaceAll(ctx, domain.Todos{}))

	got, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUserRepositorySeedFallbackAndLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(persistence.NewMemoryStore())

	users, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, persistence.SeedUsers(), users)

	byEmail, ok, err := repo.FindByEmail(ctx, "prashant@greedygame.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), byEmail.ID)

	_, ok, err = repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}
