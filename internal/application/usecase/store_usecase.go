package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una tienda con ID generado por la aplicación.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	store := &entity.Store{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Address: in.Address,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List devuelve todas las tiendas (slice vacío, nunca nil).
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStoreResponse(s))
	}
	return out, nil
}

// GetByID obtiene una tienda; domain.ErrStoreNotFound si no existe.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(store), nil
}

// Update reemplaza nombre y dirección.
func (uc *StoreUseCase) Update(ctx context.Context, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.Update(ctx, &entity.Store{ID: in.ID, Name: in.Name, Address: in.Address})
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(store), nil
}

// Delete elimina la tienda y devuelve la fila borrada.
func (uc *StoreUseCase) Delete(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(store), nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}
