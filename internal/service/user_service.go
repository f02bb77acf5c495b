package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/identity-service/internal/auth"
	"github.com/spec-kit/identity-service/internal/domain"
	"github.com/spec-kit/identity-service/internal/events"
	"github.com/spec-kit/identity-service/internal/repository"
)

// bcrypt ignores input beyond 72 bytes, so longer passwords are refused.
const (
	minPasswordLen = 8
	maxPasswordLen = 72
)

var (
	ErrEmailTaken    = errors.New("EMAIL_TAKEN")
	ErrNicknameTaken = errors.New("NICKNAME_TAKEN")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// RegisterInput carries the fields of a new directory user.
type RegisterInput struct {
	Name     string
	Email    string
	Nickname *string
	Password string
	Company  *string
}

// UpdateInput carries a partial profile change. Nil fields are left as
// they are; an empty nickname clears it.
type UpdateInput struct {
	Name     *string
	Nickname *string
	Company  *string
	Password *string
}

// UserService manages directory users.
type UserService struct {
	users      repository.UserRepository
	hasher     *auth.Hasher
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService builds the service. dispatcher may be nil.
func NewUserService(users repository.UserRepository, hasher *auth.Hasher, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, hasher: hasher, dispatcher: dispatcher, logger: logger}
}

// Register creates an active user with a hashed password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Nickname != nil {
		nick := strings.TrimSpace(*in.Nickname)
		in.Nickname = &nick
		if nick == "" {
			in.Nickname = nil
		}
	}
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if in.Nickname != nil {
		if _, err := s.users.GetByNickname(ctx, *in.Nickname); err == nil {
			return nil, ErrNicknameTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Nickname:     in.Nickname,
		PasswordHash: hash,
		Company:      in.Company,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, mapUserConflict(err)
	}

	s.publish(ctx, events.Event{Type: events.EventUserRegistered, SubjectID: user.ID})
	return user, nil
}

// Get returns a user by id. Ids that are not UUIDs match no user.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// SetActive flips the user's status. Tokens already issued to a deactivated
// user stop authenticating immediately.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	old := user.Status
	user.Status = domain.UserStatusInactive
	if active {
		user.Status = domain.UserStatusActive
	}
	if err := s.users.UpdateStatus(ctx, user.ID, user.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.UpdatedAt = time.Now().UTC()

	if old != user.Status {
		s.publish(ctx, events.Event{
			Type:      events.EventUserStatusChanged,
			SubjectID: user.ID,
			Payload:   events.UserStatusChangedPayload{OldStatus: string(old), NewStatus: string(user.Status)},
		})
	}
	return user, nil
}

// Update applies a partial profile change. A new password is rehashed with
// the service's work factor.
func (s *UserService) Update(ctx context.Context, id string, in UpdateInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var changed []string
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > 255 {
			return nil, fmt.Errorf("%w: name must be 1-255 characters", ErrInvalidInput)
		}
		user.Name = name
		changed = append(changed, "name")
	}
	if in.Nickname != nil {
		nick := strings.TrimSpace(*in.Nickname)
		if len(nick) > 50 {
			return nil, fmt.Errorf("%w: nickname must be at most 50 characters", ErrInvalidInput)
		}
		if nick == "" {
			user.Nickname = nil
		} else {
			other, err := s.users.GetByNickname(ctx, nick)
			switch {
			case err == nil && other.ID != user.ID:
				return nil, ErrNicknameTaken
			case err != nil && !errors.Is(err, repository.ErrNotFound):
				return nil, err
			}
			user.Nickname = &nick
		}
		changed = append(changed, "nickname")
	}
	if in.Company != nil {
		if len(*in.Company) > 100 {
			return nil, fmt.Errorf("%w: company must be at most 100 characters", ErrInvalidInput)
		}
		company := *in.Company
		user.Company = &company
		changed = append(changed, "company")
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
		changed = append(changed, "password")
	}

	if len(changed) == 0 {
		return user, nil
	}
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, mapUserConflict(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventUserUpdated,
		SubjectID: user.ID,
		Payload:   events.UserUpdatedPayload{Fields: changed},
	})
	return user, nil
}

// mapUserConflict picks the taken identifier from a unique violation.
func mapUserConflict(err error) error {
	switch {
	case errors.Is(err, repository.ErrNicknameConflict):
		return ErrNicknameTaken
	case errors.Is(err, repository.ErrDuplicate):
		return ErrEmailTaken
	default:
		return err
	}
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return fmt.Errorf("%w: password must be %d-%d bytes", ErrInvalidInput, minPasswordLen, maxPasswordLen)
	}
	return nil
}

func validateRegistration(in RegisterInput) error {
	switch {
	case in.Name == "" || len(in.Name) > 255:
		return fmt.Errorf("%w: name must be 1-255 characters", ErrInvalidInput)
	case !strings.Contains(in.Email, "@") || len(in.Email) > 255:
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	case in.Nickname != nil && len(*in.Nickname) > 50:
		return fmt.Errorf("%w: nickname must be at most 50 characters", ErrInvalidInput)
	case in.Company != nil && len(*in.Company) > 100:
		return fmt.Errorf("%w: company must be at most 100 characters", ErrInvalidInput)
	}
	return validatePassword(in.Password)
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
