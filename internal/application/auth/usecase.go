package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/ports"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro y login.
// No emite tokens: el login solo verifica credenciales y devuelve el usuario.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   ports.PasswordHasher
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher ports.PasswordHasher) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher}
}

// RegisterUser crea un usuario con saldo 0: hashea el password y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	// La unicidad también la garantiza la base: una carrera entre dos registros termina en ErrEmailAlreadyExists.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return usecase.ToUserResponse(user), nil
}

// Login verifica email/password. Email desconocido y password incorrecto producen el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !uc.hasher.Compare(user.PasswordHash, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	return usecase.ToUserResponse(user), nil
}
