package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/ports"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// CreateItemInput datos ya validados para crear un item.
type CreateItemInput struct {
	Name    string
	Price   int64
	Stock   int64
	StoreID string
	Image   *ports.ImageUpload
}

// ItemUseCase casos de uso para items. La imagen se sube al host de medios antes del INSERT;
// si el INSERT falla la imagen subida no se elimina.
type ItemUseCase struct {
	repo   repository.ItemRepository
	stores repository.StoreRepository
	media  ports.MediaUploader
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, stores repository.StoreRepository, media ports.MediaUploader) *ItemUseCase {
	return &ItemUseCase{repo: repo, stores: stores, media: media}
}

// Create verifica que la tienda exista, sube la imagen e inserta el item.
func (uc *ItemUseCase) Create(ctx context.Context, in CreateItemInput) (*dto.ItemResponse, error) {
	if in.Image == nil {
		return nil, fmt.Errorf("%w: image", domain.ErrMissingFields)
	}
	if !domain.IsAllowedImage(in.Image.Filename) {
		return nil, domain.ErrInvalidImage
	}
	if err := uc.ensureStore(ctx, in.StoreID); err != nil {
		return nil, err
	}
	url, err := uc.media.Upload(ctx, *in.Image)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	item := &entity.Item{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Price:    in.Price,
		Stock:    in.Stock,
		StoreID:  in.StoreID,
		ImageURL: url,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica una actualización parcial. Si cambia store_id, la nueva tienda debe existir.
func (uc *ItemUseCase) Update(ctx context.Context, id string, patch entity.ItemPatch, image *ports.ImageUpload) (*dto.ItemResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrItemNotFound
	}
	if patch.StoreID != nil {
		if err := uc.ensureStore(ctx, *patch.StoreID); err != nil {
			return nil, err
		}
	}
	if image != nil {
		if !domain.IsAllowedImage(image.Filename) {
			return nil, domain.ErrInvalidImage
		}
		url, err := uc.media.Upload(ctx, *image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		patch.ImageURL = &url
	}
	item, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if item == nil {
		// borrado entre la verificación y el UPDATE
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

// List devuelve todos los items.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// GetByID obtiene un item; domain.ErrItemNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

// ListByStore lista los items de una tienda existente.
func (uc *ItemUseCase) ListByStore(ctx context.Context, storeID string) ([]dto.ItemResponse, error) {
	if err := uc.ensureStore(ctx, storeID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// Delete elimina el item y devuelve la fila borrada.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

func (uc *ItemUseCase) ensureStore(ctx context.Context, storeID string) error {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	return nil
}

func toItemResponses(list []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Price:     it.Price,
		Stock:     it.Stock,
		StoreID:   it.StoreID,
		ImageURL:  it.ImageURL,
		CreatedAt: it.CreatedAt,
	}
}
