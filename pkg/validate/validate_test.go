package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=5"`
	Status   string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(sample{Email: "a@example.com", Password: "longenough", Status: "ACTIVE"}))

	long := "toolong"
	err := v.Struct(sample{Email: "nope", Password: "short", Nickname: &long, Status: "PAUSED"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"email":    "email must be a valid email address",
		"password": "password must be at least 8 characters long",
		"nickname": "nickname must be at most 5 characters long",
		"status":   "status must be one of: ACTIVE INACTIVE",
	}, verr.Fields)
	assert.Contains(t, verr.Error(), "validation failed: ")
	assert.Len(t, verr.Details(), 4)
}
