package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/identity-service/internal/api/dto"
	"github.com/spec-kit/identity-service/pkg/nit"
)

// NITHandler exposes the check digit validator.
type NITHandler struct{}

func NewNITHandler() *NITHandler {
	return &NITHandler{}
}

// Validate handles POST /nit/validate.
func (h *NITHandler) Validate(c *fiber.Ctx) error {
	var req dto.NITValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}

	base, dv, err := nit.Split(req.NIT)
	if err != nil {
		return nitValidationError(err)
	}

	return c.JSON(fiber.Map{"data": dto.NITValidateResponse{
		Base:      base,
		DV:        dv,
		Formatted: nit.Format(base, dv, true),
	}})
}
