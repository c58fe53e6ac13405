package dto

import "github.com/spec-kit/todo-dashboard/internal/domain"

// UserCreateRequest payload for the superuser add-user flow.
type UserCreateRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// UserResponse mirrors the persisted user shape minus the password hash.
type UserResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Avatar    string          `json:"avatar"`
	Role      domain.UserRole `json:"role"`
	LastLogin string          `json:"lastLogin"`
	IsActive  bool            `json:"isActive"`
}

// NewUserResponse maps a domain user for transport.
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Role:      u.Role,
		LastLogin: u.LastLogin,
		IsActive:  u.IsActive,
	}
}

// NewUserResponses maps a collection, preserving order.
func NewUserResponses(us domain.Users) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, NewUserResponse(u))
	}
	return out
}
