package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/identity-service/internal/service"
	"github.com/spec-kit/identity-service/pkg/nit"
	apperrors "github.com/spec-kit/identity-service/pkg/util"
	"github.com/spec-kit/identity-service/pkg/validate"
)

// mapServiceError translates service sentinels into API errors.
func mapServiceError(err error) error {
	var invalidNIT *service.InvalidNITError
	var verr *validate.ValidationError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperrors.NewInvalidCredentials()
	case errors.Is(err, service.ErrInvalidToken):
		return apperrors.NewInvalidToken()
	case errors.Is(err, service.ErrEmailTaken):
		return apperrors.NewConflict("email already registered", map[string]any{"field": "email"})
	case errors.Is(err, service.ErrNicknameTaken):
		return apperrors.NewConflict("nickname already registered", map[string]any{"field": "nickname"})
	case errors.Is(err, service.ErrNITTaken):
		return apperrors.NewConflict("a company with this NIT already exists", map[string]any{"field": "nit"})
	case errors.Is(err, service.ErrUserNotFound):
		return apperrors.NewNotFound("user", nil)
	case errors.Is(err, service.ErrCompanyNotFound):
		return apperrors.NewNotFound("company", nil)
	case errors.As(err, &invalidNIT):
		return nitValidationError(invalidNIT.Err)
	case errors.As(err, &verr):
		return apperrors.NewValidationError("request validation failed", verr.Details())
	case errors.Is(err, service.ErrInvalidInput):
		return apperrors.NewValidationError(err.Error(), nil)
	default:
		return apperrors.MapError(err)
	}
}

func nitValidationError(err error) error {
	return apperrors.NewValidationError(err.Error(), map[string]any{
		"field": "nit",
		"kind":  nitErrorKind(err),
	})
}

// nitErrorKind names the check digit validator's failure for clients.
func nitErrorKind(err error) string {
	switch {
	case errors.Is(err, nit.ErrEmptyInput):
		return "EMPTY_INPUT"
	case errors.Is(err, nit.ErrInvalidCharacters):
		return "INVALID_CHARACTERS"
	case errors.Is(err, nit.ErrMissingCheckDigit):
		return "MISSING_CHECK_DIGIT"
	case errors.Is(err, nit.ErrCheckDigitMismatch):
		return "CHECK_DIGIT_MISMATCH"
	case errors.Is(err, nit.ErrInvalidLength):
		return "INVALID_LENGTH"
	default:
		return "INVALID"
	}
}

func invalidPayload() error {
	return fiber.NewError(http.StatusBadRequest, "invalid payload")
}
