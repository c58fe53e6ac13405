package repository

import (
	"context"
	"encoding/json"

	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/persistence"
)

// UserRepository persists the whole account collection through the storage
// adapter.
type UserRepository interface {
	All(ctx context.Context) (domain.Users, error)
	ReplaceAll(ctx context.Context, users domain.Users) error
	FindByID(ctx context.Context, id int64) (domain.User, bool, error)
	FindByEmail(ctx context.Context, email string) (domain.User, bool, error)
}

type userRepository struct {
	store persistence.Store
}

// NewUserRepository returns a store-backed implementation.
func NewUserRepository(store persistence.Store) UserRepository {
	return &userRepository{store: store}
}

// All loads the collection, falling back to the seed dataset when the key is
// absent.
func (r *userRepository) All(ctx context.Context) (domain.Users, error) {
	raw, ok, err := r.store.Get(ctx, persistence.KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return persistence.SeedUsers(), nil
	}

	var users domain.Users
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ReplaceAll persists the collection wholesale.
func (r *userRepository) ReplaceAll(ctx context.Context, users domain.Users) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, persistence.KeyUsers, raw)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (domain.User, bool, error) {
	users, err := r.All(ctx)
	if err != nil {
		return domain.User{}, false, err
	}
	user, ok := users.FindByID(id)
	return user, ok, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	users, err := r.All(ctx)
	if err != nil {
		return domain.User{}, false, err
	}
	user, ok := users.FindByEmail(email)
	return user, ok, nil
}
