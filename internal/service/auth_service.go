package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/todo-dashboard/internal/auth"
	"github.com/spec-kit/todo-dashboard/internal/config"
	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/repository"
	"github.com/spec-kit/todo-dashboard/internal/session"
	apperrors "github.com/spec-kit/todo-dashboard/pkg/util"
)

// AuthService coordinates the mock registration and login flows. Credentials
// are not a security boundary here: login matches on email, and a password is
// only verified when the account stored a hash at registration. Seeded
// accounts carry none.
type AuthService struct {
	users      repository.UserRepository
	sessions   *session.Manager
	tokenMgr   *auth.TokenManager
	bcryptCost int
	now        func() time.Time
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Sessions *session.Manager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.Sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		now:        time.Now,
	}
}

// Register creates a new account with default role and avatar, logs it in and
// issues a token. A taken email fails with a conflict and leaves the
// collection unchanged.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, string, time.Time, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return domain.User{}, "", time.Time{}, apperrors.NewValidationError("name, email and password are required", nil)
	}

	all, err := s.users.All(ctx)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}
	if _, exists := all.FindByEmail(email); exists {
		return domain.User{}, "", time.Time{}, apperrors.NewDuplicateEmail(email)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}

	user := domain.User{
		ID:           all.NextID(),
		Name:         name,
		Email:        email,
		Avatar:       domain.DefaultAvatarURL,
		Role:         domain.RoleUser,
		LastLogin:    s.now().Format(domain.TimestampLayout),
		IsActive:     true,
		PasswordHash: hash,
	}

	if err := s.users.ReplaceAll(ctx, append(all, user)); err != nil {
		return domain.User{}, "", time.Time{}, err
	}
	if err := s.sessions.Login(ctx, user); err != nil {
		return domain.User{}, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates by email and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, time.Time, error) {
	user, ok, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}
	if !ok {
		return domain.User{}, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}
	if user.PasswordHash != "" {
		if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
			return domain.User{}, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
	}

	if err := s.sessions.Login(ctx, user); err != nil {
		return domain.User{}, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout clears every persisted collection, a full reset rather than mere
// session teardown.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

// UpdateProfile merges the patch into the session user, re-persists the
// session and keeps the account collection in step.
func (s *AuthService) UpdateProfile(ctx context.Context, patch session.UserPatch) (domain.User, error) {
	updated, err := s.sessions.UpdateUser(ctx, patch)
	if errors.Is(err, session.ErrNoSession) {
		return domain.User{}, apperrors.NewUnauthorized("no authenticated session")
	}
	if err != nil {
		return domain.User{}, err
	}

	all, err := s.users.All(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if _, ok := all.FindByID(updated.ID); ok {
		if err := s.users.ReplaceAll(ctx, all.Replace(updated)); err != nil {
			return domain.User{}, err
		}
	}
	return updated, nil
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
