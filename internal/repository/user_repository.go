package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/identity-service/internal/domain"
)

// Unique constraint violations on users, by column. Both satisfy
// errors.Is(err, ErrDuplicate).
var (
	ErrEmailConflict    = fmt.Errorf("%w: email", ErrDuplicate)
	ErrNicknameConflict = fmt.Errorf("%w: nickname", ErrDuplicate)
)

// Postgres default names for the UNIQUE columns of users.
const (
	usersEmailKey    = "users_email_key"
	usersNicknameKey = "users_nickname_key"
)

// UserRepository defines persistence access for directory users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByNickname(ctx context.Context, nickname string) (*domain.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, nickname, password_hash, company, status, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, nickname, password_hash, company, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Nickname,
		user.PasswordHash,
		user.Company,
		user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return mapUserWriteError(err)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, nickname=$2, password_hash=$3, company=$4, status=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Nickname,
		user.PasswordHash,
		user.Company,
		user.Status,
		user.ID,
	).Scan(&user.UpdatedAt)
	return mapUserWriteError(err)
}

func (r *userRepository) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error {
	const query = `UPDATE users SET status=$1, updated_at=NOW() WHERE id=$2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE nickname=$1`, nickname)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Nickname,
		&user.PasswordHash,
		&user.Company,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func mapUserWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case usersEmailKey:
			return ErrEmailConflict
		case usersNicknameKey:
			return ErrNicknameConflict
		}
	}
	return mapError(err)
}
