package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/todo-dashboard/internal/api/dto"
	"github.com/spec-kit/todo-dashboard/internal/auth"
	"github.com/spec-kit/todo-dashboard/internal/domain"
	"github.com/spec-kit/todo-dashboard/internal/service"
	apperrors "github.com/spec-kit/todo-dashboard/pkg/util"
)

// TodosHandler exposes the per-user task endpoints.
type TodosHandler struct {
	todos         *service.TodoService
	notifications *service.NotificationService
}

// NewTodosHandler constructs handler.
func NewTodosHandler(todoService *service.TodoService, notificationService *service.NotificationService) *TodosHandler {
	return &TodosHandler{todos: todoService, notifications: notificationService}
}

// List handles GET /todos?search=&status=.
func (h *TodosHandler) List(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	todos, err := h.todos.ListForUser(c.Context(),
		principal.User.ID,
		c.Query("search"),
		c.Query("status", domain.StatusFilterAll))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": todos})
}

// Stats handles GET /todos/stats.
func (h *TodosHandler) Stats(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	stats, err := h.todos.Stats(c.Context(), principal.User.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Notifications handles GET /todos/notifications.
func (h *TodosHandler) Notifications(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	feed, err := h.notifications.FeedForUser(c.Context(), principal.User.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": feed})
}

// Create handles POST /todos.
func (h *TodosHandler) Create(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.TodoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	dueDate, err := dto.InputDateToStored(req.DueDate)
	if err != nil {
		return apperrors.NewValidationError("dueDate must be YYYY-MM-DD", map[string]any{"dueDate": req.DueDate})
	}

	todo, err := h.todos.Add(c.Context(), principal.User.ID, service.TodoDraft{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		DueTime:     req.DueTime,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": todo})
}

// Update handles PUT /todos/:id.
func (h *TodosHandler) Update(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.TodoUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	status := domain.TodoStatus(req.Status)
	if status != domain.TodoStatusPending && status != domain.TodoStatusCompleted {
		return apperrors.NewValidationError("status must be pending or completed", map[string]any{"status": req.Status})
	}

	dueDate, err := dto.InputDateToStored(req.DueDate)
	if err != nil {
		return apperrors.NewValidationError("dueDate must be YYYY-MM-DD", map[string]any{"dueDate": req.DueDate})
	}

	todo, err := h.todos.Edit(c.Context(), principal.User.ID, domain.Todo{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		DueTime:     req.DueTime,
		Status:      status,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": todo})
}

// Delete handles DELETE /todos/:id.
func (h *TodosHandler) Delete(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.todos.Remove(c.Context(), principal.User.ID, id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ToggleStatus handles PATCH /todos/:id/toggle.
func (h *TodosHandler) ToggleStatus(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	todo, ok, err := h.todos.ToggleStatus(c.Context(), principal.User.ID, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !ok {
		// unknown ids degrade to a no-op rather than an error
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": todo})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
