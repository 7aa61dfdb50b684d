package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario; balance y timestamps los asigna la base.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING balance, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash).
		Scan(&user.Balance, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email, incluido el hash del password.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, balance, created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Balance, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// Update reemplaza name, email y password.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		UPDATE users SET name = $1, email = $2, password = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, email, balance, created_at, updated_at`
	var u entity.User
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.ID).Scan(
		&u.ID, &u.Name, &u.Email, &u.Balance, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, `DELETE FROM users WHERE id = $1 RETURNING id, name, email`, id).
		Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return &u, nil
}

// TopUp suma amount al saldo en una sola sentencia (sin lectura previa).
// Un saldo que desborda BIGINT se reporta como domain.ErrInvalidAmount.
func (r *UserRepo) TopUp(ctx context.Context, id string, amount int64) (*entity.User, error) {
	query := `
		UPDATE users SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, email, balance, updated_at`
	var u entity.User
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&u.ID, &u.Name, &u.Email, &u.Balance, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isOutOfRange(err) {
			return nil, domain.ErrInvalidAmount
		}
		return nil, fmt.Errorf("top up balance: %w", err)
	}
	return &u, nil
}

// GetBalance obtiene id, name, email y balance.
func (r *UserRepo) GetBalance(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, `SELECT id, name, email, balance FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user balance: %w", err)
	}
	return &u, nil
}
