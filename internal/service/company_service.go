package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/identity-service/internal/domain"
	"github.com/spec-kit/identity-service/internal/events"
	"github.com/spec-kit/identity-service/internal/repository"
	"github.com/spec-kit/identity-service/pkg/nit"
)

var (
	ErrNITTaken        = errors.New("NIT_TAKEN")
	ErrCompanyNotFound = errors.New("company not found")
)

// InvalidNITError wraps the checksum validator's error kind.
type InvalidNITError struct {
	Err error
}

func (e *InvalidNITError) Error() string { return e.Err.Error() }

func (e *InvalidNITError) Unwrap() error { return e.Err }

// CreateCompanyInput carries the fields of a new company. NIT may contain separators.
type CreateCompanyInput struct {
	NIT          string
	BusinessName string
	Description  *string
	Address      *string
	Phone        *string
	City         *string
	Status       domain.CompanyStatus
}

// CompanyService registers companies under their canonical NIT.
type CompanyService struct {
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewCompanyService builds the service. dispatcher may be nil.
func NewCompanyService(companies repository.CompanyRepository, dispatcher events.Dispatcher, logger *zap.Logger) *CompanyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanyService{companies: companies, dispatcher: dispatcher, logger: logger}
}

// Create validates the NIT check digit and stores the company by its 9-digit base.
func (s *CompanyService) Create(ctx context.Context, in CreateCompanyInput) (*domain.Company, error) {
	base, err := nit.ValidateAndNormalize(in.NIT)
	if err != nil {
		return nil, &InvalidNITError{Err: err}
	}

	name := strings.TrimSpace(in.BusinessName)
	if name == "" || len(name) > 255 {
		return nil, fmt.Errorf("%w: business_name must be 1-255 characters", ErrInvalidInput)
	}

	status := in.Status
	switch status {
	case "":
		status = domain.CompanyStatusActive
	case domain.CompanyStatusActive, domain.CompanyStatusInactive:
	default:
		return nil, fmt.Errorf("%w: status must be ACTIVE or INACTIVE", ErrInvalidInput)
	}

	if _, err := s.companies.GetByNIT(ctx, base); err == nil {
		return nil, ErrNITTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	company := &domain.Company{
		NIT:          base,
		BusinessName: name,
		Description:  in.Description,
		Address:      in.Address,
		Phone:        in.Phone,
		City:         in.City,
		Status:       status,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrNITTaken
		}
		return nil, err
	}

	if s.dispatcher != nil {
		event := events.Event{
			Type:      events.EventCompanyRegistered,
			Timestamp: time.Now(),
			Payload:   events.CompanyRegisteredPayload{CompanyID: company.ID, NIT: company.NIT},
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return company, nil
}

// Get returns a company by id. Ids that are not UUIDs match no company.
func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrCompanyNotFound
	}
	company, err := s.companies.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	return company, err
}
