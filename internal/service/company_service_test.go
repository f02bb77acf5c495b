package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/identity-service/internal/domain"
	"github.com/spec-kit/identity-service/pkg/nit"
)

func TestCompanyService_CreateNormalizesNIT(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), nil, nil)

	company, err := svc.Create(context.Background(), CreateCompanyInput{NIT: "800.197.268-4", BusinessName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "800197268", company.NIT)
	assert.Equal(t, domain.CompanyStatusActive, company.Status)

	got, err := svc.Get(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.BusinessName)
}

func TestCompanyService_DuplicateCanonicalNIT(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCompanyInput{NIT: "8001972684", BusinessName: "Acme"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateCompanyInput{NIT: "800197268-4", BusinessName: "Acme Copy"})
	require.ErrorIs(t, err, ErrNITTaken)
}

func TestCompanyService_InvalidNIT(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateCompanyInput{NIT: "800197268-5", BusinessName: "Acme"})
	var nitErr *InvalidNITError
	require.ErrorAs(t, err, &nitErr)
	assert.ErrorIs(t, err, nit.ErrCheckDigitMismatch)

	_, err = svc.Create(context.Background(), CreateCompanyInput{NIT: "800197268", BusinessName: "Acme"})
	assert.ErrorIs(t, err, nit.ErrMissingCheckDigit)
}

func TestCompanyService_Validation(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateCompanyInput{NIT: "8001972684", BusinessName: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateCompanyInput{NIT: "8001972684", BusinessName: "Acme", Status: "PAUSED"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCompanyNotFound)
}
