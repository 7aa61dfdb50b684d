package usecase

import (
	"context"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/ports"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios (perfil y saldo). Registro y login viven en auth.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher ports.PasswordHasher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, hasher ports.PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// GetByEmail obtiene un usuario por email. El hash nunca sale de esta capa.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// Update reemplaza name, email y password (re-hasheado). ErrEmailAlreadyExists si el email es de otro usuario.
func (uc *UserUseCase) Update(ctx context.Context, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user, err := uc.repo.Update(ctx, &entity.User{
		ID:           in.ID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// Delete elimina el usuario y devuelve id, name y email.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.UserSummaryResponse, error) {
	user, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserSummaryResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// TopUp suma amount al saldo. Es la única operación que modifica balance.
func (uc *UserUseCase) TopUp(ctx context.Context, id string, amount int64) (*dto.TopUpResponse, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	user, err := uc.repo.TopUp(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.TopUpResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Balance:   user.Balance,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// GetBalance devuelve el saldo del usuario.
func (uc *UserUseCase) GetBalance(ctx context.Context, id string) (*dto.BalanceResponse, error) {
	user, err := uc.repo.GetBalance(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.BalanceResponse{ID: user.ID, Name: user.Name, Email: user.Email, Balance: user.Balance}, nil
}

// ToUserResponse convierte la entidad a DTO sin el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Balance:   u.Balance,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
