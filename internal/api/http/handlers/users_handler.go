package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/todo-dashboard/internal/api/dto"
	"github.com/spec-kit/todo-dashboard/internal/auth"
	"github.com/spec-kit/todo-dashboard/internal/service"
	apperrors "github.com/spec-kit/todo-dashboard/pkg/util"
)

// UsersHandler exposes superuser account management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /users?search=&role=&status=.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context(),
		c.Query("search"),
		c.Query("role", "all"),
		c.Query("status", "all"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Add(c.Context(), service.UserDraft{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// ToggleRole handles PATCH /users/:id/role.
func (h *UsersHandler) ToggleRole(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, ok, err := h.users.ToggleRole(c.Context(), principal.User.ID, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !ok {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// ToggleActive handles PATCH /users/:id/status. Superuser targets are left
// untouched.
func (h *UsersHandler) ToggleActive(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, ok, err := h.users.ToggleActive(c.Context(), principal.User.ID, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !ok {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}
