package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/todo-dashboard/internal/domain"
)

func TestSeedTodosStatsForUserOne(t *testing.T) {
	stats := SeedTodos().ForUser(1).Stats()

	assert.Equal(t, domain.TodoStats{Total: 6, Upcoming: 3, Completed: 3}, stats)
}

func TestSeedIDsUnique(t *testing.T) {
	todoIDs := map[int64]bool{}
	for _, todo := range SeedTodos() {
		require.False(t, todoIDs[todo.ID], "duplicate todo id %d", todo.ID)
		todoIDs[todo.ID] = true
	}

	userIDs := map[int64]bool{}
	for _, user := range SeedUsers() {
		require.False(t, userIDs[user.ID], "duplicate user id %d", user.ID)
		userIDs[user.ID] = true
	}
}

func TestSeedDueDatesParse(t *testing.T) {
	for _, todo := range SeedTodos() {
		_, err := todo.DueAt()
		assert.NoError(t, err, "todo %d", todo.ID)
	}
}

func TestSeedHasOneSuperuser(t *testing.T) {
	supers := SeedUsers().Filter("", "superuser", "all")
	require.Len(t, supers, 1)
	assert.Equal(t, "fawaz@greedygame.com", supers[0].Email)
}
