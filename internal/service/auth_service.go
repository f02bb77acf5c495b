package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/identity-service/internal/auth"
	"github.com/spec-kit/identity-service/internal/config"
	"github.com/spec-kit/identity-service/internal/domain"
	"github.com/spec-kit/identity-service/internal/events"
	"github.com/spec-kit/identity-service/internal/repository"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown identifier,
	// inactive subject, wrong password or corrupt stored digest.
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	// ErrInvalidToken covers every bearer token failure.
	ErrInvalidToken = errors.New("INVALID_TOKEN")
	// ErrRevocationUnavailable is returned by Logout without a revocation list.
	ErrRevocationUnavailable = errors.New("token revocation is not configured")
)

// dummyPassword is hashed once at startup so that unknown identifiers cost
// a bcrypt comparison like known ones.
const dummyPassword = "identity-service/no-such-subject"

// SubjectRepository is the read side of the user directory the gateway needs.
type SubjectRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByNickname(ctx context.Context, nickname string) (*domain.User, error)
}

// RevocationList records logged-out token ids until they expire.
type RevocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService authenticates subjects by password and by bearer token.
type AuthService struct {
	users       SubjectRepository
	revocations RevocationList
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	tokenMgr    *auth.TokenManager
	hasher      *auth.Hasher
	now         func() time.Time
	dummyDigest string
}

// AuthDependencies encapsulates collaborators for the auth service.
// Revocations and Dispatcher are optional; Clock defaults to time.Now.
type AuthDependencies struct {
	Users       SubjectRepository
	Revocations RevocationList
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	Clock       func() time.Time
}

// NewAuthService builds the service. It fails when no signing secret is configured.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) (*AuthService, error) {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tokenMgr, err := auth.NewTokenManager(cfg.JWTSecret,
		auth.WithDefaultTTL(cfg.AccessTokenTTL()),
		auth.WithLeeway(cfg.TokenLeeway()),
		auth.WithClock(now),
	)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}

	return &AuthService{
		users:       deps.Users,
		revocations: deps.Revocations,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
		tokenMgr:    tokenMgr,
		hasher:      hasher,
		now:         now,
		dummyDigest: dummy,
	}, nil
}

// Login matches identifier against email first and nickname second, then
// verifies the password and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.AccessToken, error) {
	user, err := s.findSubject(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if user == nil {
		_, _ = s.hasher.Verify(password, s.dummyDigest)
		return nil, s.loginFailed(ctx, identifier)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Warn("stored password digest is malformed", zap.String("user_id", user.ID))
	}
	if !ok || !user.IsActive() {
		return nil, s.loginFailed(ctx, identifier)
	}

	token, exp, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.publish(ctx, events.Event{Type: events.EventLoginSucceeded, SubjectID: user.ID})
	return &domain.AccessToken{
		Value:     token,
		SubjectID: user.ID,
		ExpiresAt: exp,
		TTL:       s.tokenMgr.TTL(),
	}, nil
}

// Authenticate resolves a bearer token to an active subject. Status is read
// from the directory on every call.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.verify(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.SubjectID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("lookup subject: %w", err)
	}
	if !user.IsActive() {
		s.logger.Debug("token subject is not active", zap.String("user_id", user.ID))
		return nil, ErrInvalidToken
	}
	return user, nil
}

// Logout revokes token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.revocations == nil {
		return ErrRevocationUnavailable
	}
	claims, err := s.verify(ctx, token)
	if err != nil {
		return err
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if err := s.revocations.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventTokenRevoked,
		SubjectID: claims.SubjectID(),
		Payload:   events.TokenRevokedPayload{TokenID: claims.ID, ExpiresAt: claims.ExpiresAt.Time},
	})
	return nil
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Hasher exposes the password hasher so registration shares the work factor.
func (s *AuthService) Hasher() *auth.Hasher {
	return s.hasher
}

func (s *AuthService) verify(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.tokenMgr.Verify(token)
	if err != nil {
		s.logger.Debug("token rejected", zap.Error(err))
		return nil, ErrInvalidToken
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			s.logger.Debug("token revoked", zap.String("jti", claims.ID))
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

// findSubject returns (nil, nil) when neither key matches.
func (s *AuthService) findSubject(ctx context.Context, identifier string) (*domain.User, error) {
	if identifier == "" {
		return nil, nil
	}

	user, err := s.users.GetByEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup subject by email: %w", err)
	}

	user, err = s.users.GetByNickname(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup subject by nickname: %w", err)
	}
	return nil, nil
}

func (s *AuthService) loginFailed(ctx context.Context, identifier string) error {
	s.publish(ctx, events.Event{
		Type:    events.EventLoginFailed,
		Payload: events.LoginFailedPayload{Identifier: identifier},
	})
	return ErrInvalidCredentials
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
