package dto

// LoginRequest accepts the login key as identifier, email or nickname; the
// first non-empty one in that order is used.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Nickname   string `json:"nickname"`
	Password   string `json:"password"`
}

// LoginIdentifier returns the key to match against email then nickname.
func (r LoginRequest) LoginIdentifier() string {
	switch {
	case r.Identifier != "":
		return r.Identifier
	case r.Email != "":
		return r.Email
	default:
		return r.Nickname
	}
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
