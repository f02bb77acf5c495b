package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/identity-service/internal/api/dto"
	"github.com/spec-kit/identity-service/internal/auth"
	"github.com/spec-kit/identity-service/internal/domain"
	apperrors "github.com/spec-kit/identity-service/pkg/util"
)

// AuthGateway is the part of the auth service the handler drives.
type AuthGateway interface {
	Login(ctx context.Context, identifier, password string) (*domain.AccessToken, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler exposes login, profile and logout.
type AuthHandler struct {
	auth AuthGateway
}

func NewAuthHandler(gateway AuthGateway) *AuthHandler {
	return &AuthHandler{auth: gateway}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	identifier := req.LoginIdentifier()
	if identifier == "" || req.Password == "" {
		return apperrors.NewMissingCredentials()
	}

	token, err := h.auth.Login(c.UserContext(), identifier, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(dto.LoginResponse{
		AccessToken: token.Value,
		TokenType:   domain.TokenTypeBearer,
		ExpiresIn:   int64(token.TTL.Seconds()),
	})
}

// Me handles GET /auth and returns the caller's public profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, ok := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return apperrors.NewMissingToken()
	}
	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return mapServiceError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
