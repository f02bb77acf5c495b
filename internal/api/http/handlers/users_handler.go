package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/identity-service/internal/api/dto"
	"github.com/spec-kit/identity-service/internal/domain"
	"github.com/spec-kit/identity-service/internal/service"
	"github.com/spec-kit/identity-service/pkg/validate"
)

// UserDirectory is the user management surface the handler drives.
type UserDirectory interface {
	Register(ctx context.Context, in service.RegisterInput) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	Update(ctx context.Context, id string, in service.UpdateInput) (*domain.User, error)
}

// UsersHandler exposes registration and status endpoints.
type UsersHandler struct {
	users     UserDirectory
	validator *validate.Validator
}

func NewUsersHandler(users UserDirectory, validator *validate.Validator) *UsersHandler {
	return &UsersHandler{users: users, validator: validator}
}

// Register handles POST /users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if err := h.validator.Struct(req); err != nil {
		return mapServiceError(err)
	}

	user, err := h.users.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: req.Password,
		Company:  req.Company,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Update handles PATCH /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if err := h.validator.Struct(req); err != nil {
		return mapServiceError(err)
	}

	user, err := h.users.Update(c.UserContext(), c.Params("id"), service.UpdateInput{
		Name:     req.Name,
		Nickname: req.Nickname,
		Company:  req.Company,
		Password: req.Password,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Activate handles POST /users/:id/activate.
func (h *UsersHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

// Deactivate handles POST /users/:id/deactivate.
func (h *UsersHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *UsersHandler) setActive(c *fiber.Ctx, active bool) error {
	user, err := h.users.SetActive(c.UserContext(), c.Params("id"), active)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}
