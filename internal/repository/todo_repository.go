package repository

import (
	"context"
	"encoding/json"

	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/persistence"
)

// TodoRepository persists the whole todo collection through the storage
// adapter. Every mutation reads the full collection, transforms it, and
// writes it back.
type TodoRepository interface {
	All(ctx context.Context) (domain.Todos, error)
	ReplaceAll(ctx context.Context, todos domain.Todos) error
}

type todoRepository struct {
	store persistence.Store
}

// NewTodoRepository returns a store-backed implementation.
func NewTodoRepository(store persistence.Store) TodoRepository {
	return &todoRepository{store: store}
}

// All loads the collection, falling back to the seed dataset when the key is
// absent.
func (r *todoRepository) All(ctx context.Context) (domain.Todos, error) {
	raw, ok, err := r.store.Get(ctx, persistence.KeyTodos)
	if err != nil {
		return nil, err
	}
	if !ok {
		return persistence.SeedTodos(), nil
	}

	var todos domain.Todos
	if err := json.Unmarshal(raw, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// ReplaceAll persists the collection wholesale.
func (r *todoRepository) ReplaceAll(ctx context.Context, todos domain.Todos) error {
	raw, err := json.Marshal(todos)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, persistence.KeyTodos, raw)
}
