package repository

import (
	"context"

	"github.com/spec-kit/identity-service/internal/domain"
)

// CompanyRepository persists companies keyed by canonical NIT.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	GetByNIT(ctx context.Context, nit string) (*domain.Company, error)
}

type companyRepository struct {
	db DBTX
}

// NewCompanyRepository returns a Postgres-backed implementation.
func NewCompanyRepository(db DBTX) CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `id, nit, business_name, description, address, phone, city, status, created_at, updated_at`

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (nit, business_name, description, address, phone, city, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		company.NIT,
		company.BusinessName,
		company.Description,
		company.Address,
		company.Phone,
		company.City,
		company.Status,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	return mapError(err)
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE id=$1`, id)
}

func (r *companyRepository) GetByNIT(ctx context.Context, nit string) (*domain.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE nit=$1`, nit)
}

func (r *companyRepository) getOne(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID,
		&c.NIT,
		&c.BusinessName,
		&c.Description,
		&c.Address,
		&c.Phone,
		&c.City,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}
