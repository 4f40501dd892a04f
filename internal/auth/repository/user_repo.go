package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lueberGandra/captal-api/internal/auth/domain"
)

// UserRepository provides persistence operations for users.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user with the given email or
// domain.ErrUserNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id, email, name, role, created_at
FROM users
WHERE email = $1;
`
	return scanUser(r.db.QueryRow(ctx, q, email))
}

// FindByID returns the user with the given id or domain.ErrUserNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const q = `
SELECT id, email, name, role, created_at
FROM users
WHERE id = $1;
`
	return scanUser(r.db.QueryRow(ctx, q, id))
}

// Create inserts a new user inside the given transaction. Role defaults
// to developer. A unique violation on email surfaces as
// domain.ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, tx pgx.Tx, email, name string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email required")
	}
	if name == "" {
		return nil, fmt.Errorf("name required")
	}

	const q = `
INSERT INTO users (id, email, name, role)
VALUES ($1, $2, $3, $4)
RETURNING id, email, name, role, created_at;
`
	u, err := scanUser(tx.QueryRow(ctx, q, uuid.New(), email, name, domain.RoleDeveloper))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

type row interface {
	Scan(dest ...any) error
}

func scanUser(r row) (*domain.User, error) {
	var u domain.User
	err := r.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
