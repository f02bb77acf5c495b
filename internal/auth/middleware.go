package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/identity-service/internal/domain"
	apperrors "github.com/spec-kit/identity-service/pkg/util"
)

const subjectKey = "auth_subject"

// ErrRejected marks a token the authenticator refused, as opposed to an
// infrastructure failure while checking it.
var ErrRejected = errors.New("token rejected")

// Authenticator resolves a raw bearer token to an active subject.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// AuthMiddleware validates bearer tokens and loads the subject.
type AuthMiddleware struct {
	authenticator Authenticator
	isRejection   func(error) bool
}

// NewAuthMiddleware constructs middleware. isRejection reports which
// authenticator errors mean "bad token"; all others are rendered as internal.
func NewAuthMiddleware(authenticator Authenticator, isRejection func(error) bool) *AuthMiddleware {
	if isRejection == nil {
		isRejection = func(err error) bool { return errors.Is(err, ErrRejected) }
	}
	return &AuthMiddleware{authenticator: authenticator, isRejection: isRejection}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return apperrors.NewMissingToken()
	}

	user, err := m.authenticator.Authenticate(c.UserContext(), token)
	if err != nil {
		if m.isRejection(err) {
			return apperrors.NewInvalidToken()
		}
		return apperrors.NewInternalError(err)
	}

	c.Locals(subjectKey, user)
	return c.Next()
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// UserFromContext retrieves the authenticated subject.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(subjectKey).(*domain.User)
	return user, ok && user != nil
}
