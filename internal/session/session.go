package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/persistence"
)

// State enumerates session lifecycle states.
type State string

const (
	StateLoading       State = "loading"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// ErrNoSession is returned when an operation needs an authenticated user.
var ErrNoSession = errors.New("no authenticated session")

// UserPatch carries profile fields to merge into the session user. Nil fields
// are left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Avatar *string
}

// Manager holds the currently authenticated user, derived from the storage
// adapter at startup. It replaces the original global session provider with
// an explicit handle passed to whichever components need it.
type Manager struct {
	store persistence.Store

	mu    sync.RWMutex
	state State
	user  domain.User
}

// NewManager creates a manager in the loading state.
func NewManager(store persistence.Store) *Manager {
	return &Manager{store: store, state: StateLoading}
}

// Init reads current_user from the store and settles into authenticated or
// anonymous. Always the first transition out of loading.
func (m *Manager) Init(ctx context.Context) error {
	raw, ok, err := m.store.Get(ctx, persistence.KeyCurrentUser)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !ok {
		m.state = StateAnonymous
		m.user = domain.User{}
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return err
	}
	m.state = StateAuthenticated
	m.user = user
	return nil
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Current returns the session user when authenticated.
func (m *Manager) Current() (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.state == StateAuthenticated
}

// IsSuperuser derives the authorization flag from the session user on every
// call; it is never cached.
func (m *Manager) IsSuperuser() bool {
	user, ok := m.Current()
	return ok && user.IsSuperuser()
}

// Login transitions to authenticated and persists the user as current_user.
func (m *Manager) Login(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, persistence.KeyCurrentUser, raw); err != nil {
		return err
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = user
	m.mu.Unlock()
	return nil
}

// Logout transitions to anonymous and clears every persisted collection.
// A full reset, not just session clearing.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx, persistence.KeyUsers, persistence.KeyTodos, persistence.KeyCurrentUser); err != nil {
		return err
	}

	m.mu.Lock()
	m.state = StateAnonymous
	m.user = domain.User{}
	m.mu.Unlock()
	return nil
}

// UpdateUser merges the patch into the current session user and re-persists.
func (m *Manager) UpdateUser(ctx context.Context, patch UserPatch) (domain.User, error) {
	m.mu.RLock()
	user := m.user
	authenticated := m.state == StateAuthenticated
	m.mu.RUnlock()

	if !authenticated {
		return domain.User{}, ErrNoSession
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}

	if err := m.Login(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Replace swaps the session user wholesale and re-persists. Used when a role
// self-change must be visible immediately.
func (m *Manager) Replace(ctx context.Context, user domain.User) error {
	m.mu.RLock()
	authenticated := m.state == StateAuthenticated
	m.mu.RUnlock()
	if !authenticated {
		return ErrNoSession
	}
	return m.Login(ctx, user)
}
