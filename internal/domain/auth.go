package domain

import "time"

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// AccessToken describes an issued bearer token.
type AccessToken struct {
	Value     string
	SubjectID string
	ExpiresAt time.Time
	TTL       time.Duration
}
