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

// CompanyRegistry is the company surface the handler drives.
type CompanyRegistry interface {
	Create(ctx context.Context, in service.CreateCompanyInput) (*domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
}

// CompaniesHandler exposes company registration.
type CompaniesHandler struct {
	companies CompanyRegistry
	validator *validate.Validator
}

func NewCompaniesHandler(companies CompanyRegistry, validator *validate.Validator) *CompaniesHandler {
	return &CompaniesHandler{companies: companies, validator: validator}
}

// Create handles POST /companies.
func (h *CompaniesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if err := h.validator.Struct(req); err != nil {
		return mapServiceError(err)
	}

	company, err := h.companies.Create(c.UserContext(), service.CreateCompanyInput{
		NIT:          req.NIT,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Address:      req.Address,
		Phone:        req.Phone,
		City:         req.City,
		Status:       domain.CompanyStatus(req.Status),
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCompanyResponse(company)})
}

// Get handles GET /companies/:id.
func (h *CompaniesHandler) Get(c *fiber.Ctx) error {
	company, err := h.companies.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewCompanyResponse(company)})
}
