package domain

import "time"

// CompanyStatus represents lifecycle states for a company.
type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "ACTIVE"
	CompanyStatusInactive CompanyStatus = "INACTIVE"
)

// Company is a registered business identified by the canonical 9-digit NIT base.
type Company struct {
	ID           string
	NIT          string
	BusinessName string
	Description  *string
	Address      *string
	Phone        *string
	City         *string
	Status       CompanyStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
