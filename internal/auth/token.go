package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL applies when the caller does not override the lifetime.
const DefaultTokenTTL = 1800 * time.Second

var (
	ErrMissingSecret    = errors.New("token signing secret is not configured")
	ErrEmptySubject     = errors.New("token subject is empty")
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
)

// TokenManager handles issuing and validating HS256 bearer tokens.
// It is safe for concurrent use; its secret never changes after construction.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
	now    func() time.Time
}

// TokenOption configures a TokenManager.
type TokenOption func(*TokenManager)

// WithDefaultTTL overrides DefaultTokenTTL. Non-positive values are ignored.
func WithDefaultTTL(ttl time.Duration) TokenOption {
	return func(tm *TokenManager) {
		if ttl > 0 {
			tm.ttl = ttl
		}
	}
}

// WithLeeway tolerates clock skew when checking exp and iat.
func WithLeeway(leeway time.Duration) TokenOption {
	return func(tm *TokenManager) {
		if leeway > 0 {
			tm.leeway = leeway
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TokenOption {
	return func(tm *TokenManager) {
		if now != nil {
			tm.now = now
		}
	}
}

// NewTokenManager builds a new manager. An empty secret is refused.
func NewTokenManager(secret string, opts ...TokenOption) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	tm := &TokenManager{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(tm)
		}
	}
	return tm, nil
}

// Claims describes the JWT payload: sub, iat, exp and a jti used for revocation.
type Claims struct {
	jwt.RegisteredClaims
}

// SubjectID returns the sub claim.
func (c *Claims) SubjectID() string {
	return c.Subject
}

// TTL returns the default token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue signs a token for subjectID with the default lifetime.
func (tm *TokenManager) Issue(subjectID string) (string, time.Time, error) {
	return tm.IssueWithTTL(subjectID, tm.ttl)
}

// IssueWithTTL signs a token that expires ttl after now. A zero ttl yields a
// token that is already expired.
func (tm *TokenManager) IssueWithTTL(subjectID string, ttl time.Duration) (string, time.Time, error) {
	if subjectID == "" {
		return "", time.Time{}, ErrEmptySubject
	}

	issuedAt := jwt.NewNumericDate(tm.now())
	expiresAt := jwt.NewNumericDate(issuedAt.Add(ttl))
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt.Time, nil
}

// Verify checks structure, signature and expiry, in that order, and returns
// the claims. Errors are ErrMalformed, ErrInvalidSignature or ErrExpired.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parts := strings.Split(tokenStr, ".")
	if len(parts) < 3 {
		return nil, ErrMalformed
	}
	// Header and claims must parse on their own; everything after the second
	// dot is the signature span, so a '.' inside it is a bad signature.
	if _, _, err := jwt.NewParser().ParseUnverified(parts[0]+"."+parts[1]+".", &Claims{}); err != nil {
		return nil, ErrMalformed
	}
	if len(parts) > 3 {
		return nil, ErrInvalidSignature
	}
	if _, err := base64.RawURLEncoding.Strict().DecodeString(parts[2]); err != nil {
		return nil, ErrInvalidSignature
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(tm.leeway),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformed
	}
	if claims.Subject == "" || claims.IssuedAt == nil {
		return nil, ErrMalformed
	}
	return claims, nil
}
