package repository

import (
	"context"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	// Update aplica el patch con semántica COALESCE; (nil, nil) si el item no existe.
	Update(ctx context.Context, id string, patch entity.ItemPatch) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.Item, error)
	Delete(ctx context.Context, id string) (*entity.Item, error)
}
