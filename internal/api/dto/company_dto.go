package dto

import (
	"time"

	"github.com/spec-kit/identity-service/internal/domain"
)

// CreateCompanyRequest payload for new companies. NIT may include the check
// digit separated by '-', '.' or spaces; the company service validates it.
type CreateCompanyRequest struct {
	NIT          string  `json:"nit"`
	BusinessName string  `json:"business_name" validate:"required,max=255"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Status       string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// CompanyResponse renders a company with its NIT in canonical form.
type CompanyResponse struct {
	ID           string    `json:"id"`
	NIT          string    `json:"nit"`
	BusinessName string    `json:"business_name"`
	Description  *string   `json:"description"`
	Address      *string   `json:"address"`
	Phone        *string   `json:"phone"`
	City         *string   `json:"city"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		NIT:          c.NIT,
		BusinessName: c.BusinessName,
		Description:  c.Description,
		Address:      c.Address,
		Phone:        c.Phone,
		City:         c.City,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
