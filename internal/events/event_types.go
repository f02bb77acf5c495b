package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded    EventType = "login_succeeded"
	EventLoginFailed       EventType = "login_failed"
	EventTokenRevoked      EventType = "token_revoked"
	EventUserRegistered    EventType = "user_registered"
	EventUserStatusChanged EventType = "user_status_changed"
	EventUserUpdated       EventType = "user_updated"
	EventCompanyRegistered EventType = "company_registered"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// LoginFailedPayload deliberately carries no failure cause.
type LoginFailedPayload struct {
	Identifier string `json:"identifier"`
}

// UserStatusChangedPayload payload.
type UserStatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// UserUpdatedPayload names the changed profile fields, never their values.
type UserUpdatedPayload struct {
	Fields []string `json:"fields"`
}

// TokenRevokedPayload payload.
type TokenRevokedPayload struct {
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CompanyRegisteredPayload payload.
type CompanyRegisteredPayload struct {
	CompanyID string `json:"company_id"`
	NIT       string `json:"nit"`
}
