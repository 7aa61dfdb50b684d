package repository

import (
	"context"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos que devuelven *entity.User retornan (nil, nil) si la fila no existe.
type UserRepository interface {
	// Create inserta el usuario (hash ya calculado) y completa balance y timestamps desde RETURNING.
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail incluye PasswordHash para la comparación del login.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update reemplaza name, email y password y fija updated_at.
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	// Delete devuelve solo id, name y email del usuario eliminado.
	Delete(ctx context.Context, id string) (*entity.User, error)
	// TopUp incrementa el saldo de forma atómica en amount (> 0).
	TopUp(ctx context.Context, id string, amount int64) (*entity.User, error)
	// GetBalance devuelve id, name, email y balance.
	GetBalance(ctx context.Context, id string) (*entity.User, error)
}
