package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/turnolab/turnos-backend-go/internal/domain/user"
	"github.com/turnolab/turnos-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (company_id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_id, email, password_hash, role, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query, newUser.CompanyID, newUser.Email, newUser.PasswordHash, newUser.Role).
		Scan(&created.ID, &created.CompanyID, &created.Email, &created.PasswordHash, &created.Role, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, company_id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.CompanyID, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return found, nil
}

// GetByEmail implements user.UserRepository. Emails are unique per
// company, not globally.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, companyID, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, company_id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE company_id = $1 AND email = $2
	`

	var found user.User
	err := q.QueryRow(ctx, query, companyID, email).
		Scan(&found.ID, &found.CompanyID, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return found, nil
}
