package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"campusevents/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (email, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, u.Email, u.Name, string(u.Role), u.PasswordHash, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.Role = domain.Role(role)
	return u, nil
}

func (r *userRepository) UpdateRoleByEmail(ctx context.Context, email string, role domain.Role) error {
	query := `UPDATE users SET role = $1 WHERE email = $2`
	result, err := r.DB.ExecContext(ctx, query, string(role), email)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
