package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/events"
	"github.com/spec-kit/todo-dashboard/internal/repository"
	"github.com/spec-kit/todo-dashboard/internal/session"
	apperrors "github.com/spec-kit/todo-dashboard/pkg/util"
)

// UserService coordinates account management flows for superusers.
type UserService struct {
	users      repository.UserRepository
	sessions   *session.Manager
	dispatcher events.Dispatcher
	now        func() time.Time
}

// UserDependencies bundles requirements for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Sessions   *session.Manager
	Dispatcher events.Dispatcher
}

// UserDraft describes the add-user payload.
type UserDraft struct {
	Name   string
	Email  string
	Avatar string
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		sessions:   deps.Sessions,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// List applies search, role and status filters in sequence over the full
// account collection.
func (s *UserService) List(ctx context.Context, search, role, status string) (domain.Users, error) {
	all, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	return all.Filter(search, role, status), nil
}

// ToggleRole flips user<->superuser for the target. When the actor toggles
// their own record the session is refreshed from the result, so the change in
// visible permissions takes effect immediately.
func (s *UserService) ToggleRole(ctx context.Context, actorID, targetID int64) (domain.User, bool, error) {
	all, err := s.users.All(ctx)
	if err != nil {
		return domain.User{}, false, err
	}
	if _, ok := all.FindByID(targetID); !ok {
		return domain.User{}, false, nil
	}

	toggled := all.ToggleRole(targetID)
	if err := s.users.ReplaceAll(ctx, toggled); err != nil {
		return domain.User{}, false, err
	}

	updated, _ := toggled.FindByID(targetID)
	if actorID == targetID && s.sessions != nil {
		if err := s.sessions.Replace(ctx, updated); err != nil && !errors.Is(err, session.ErrNoSession) {
			return domain.User{}, false, err
		}
	}

	s.publish(ctx, events.EventUserRoleChanged, actorID, events.UserRoleChangedPayload{
		TargetUserID: targetID,
		NewRole:      updated.Role,
	})
	return updated, true, nil
}

// ToggleActive flips the target's active flag. Superusers are never
// deactivatable through this path; the call degrades to a no-op.
func (s *UserService) ToggleActive(ctx context.Context, actorID, targetID int64) (domain.User, bool, error) {
	all, err := s.users.All(ctx)
	if err != nil {
		return domain.User{}, false, err
	}
	target, ok := all.FindByID(targetID)
	if !ok {
		return domain.User{}, false, nil
	}
	if target.IsSuperuser() {
		return target, true, nil
	}

	toggled := all.ToggleActive(targetID)
	if err := s.users.ReplaceAll(ctx, toggled); err != nil {
		return domain.User{}, false, err
	}

	updated, _ := toggled.FindByID(targetID)
	s.publish(ctx, events.EventUserStatusChanged, actorID, events.UserStatusChangedPayload{
		TargetUserID: targetID,
		IsActive:     updated.IsActive,
	})
	return updated, true, nil
}

// Add appends a new account with defaults: role user, active, default avatar
// when none given, lastLogin stamped now. Fails with a duplicate-email
// conflict when the address is already taken, leaving the collection
// unchanged.
func (s *UserService) Add(ctx context.Context, draft UserDraft) (domain.User, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Email) == "" {
		return domain.User{}, apperrors.NewValidationError("name and email are required", nil)
	}

	all, err := s.users.All(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if _, exists := all.FindByEmail(draft.Email); exists {
		return domain.User{}, apperrors.NewDuplicateEmail(draft.Email)
	}

	avatar := draft.Avatar
	if avatar == "" {
		avatar = domain.DefaultAvatarURL
	}

	user := domain.User{
		ID:        all.NextID(),
		Name:      draft.Name,
		Email:     draft.Email,
		Avatar:    avatar,
		Role:      domain.RoleUser,
		LastLogin: s.now().Format(domain.TimestampLayout),
		IsActive:  true,
	}

	if err := s.users.ReplaceAll(ctx, append(all, user)); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, userID int64, payload interface{}) {
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
