package memory

import (
	"context"
	"time"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo items en memoria.
type ItemRepo struct {
	db *DB
}

// Create guarda el item; ErrStoreNotFound si la tienda no existe.
func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.stores[item.StoreID]; !ok {
		return domain.ErrStoreNotFound
	}
	item.CreatedAt = r.db.now()
	r.db.items[item.ID] = *item
	return nil
}

// Update aplica solo los campos no nil del patch.
func (r *ItemRepo) Update(_ context.Context, id string, patch entity.ItemPatch) (*entity.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[id]
	if !ok {
		return nil, nil
	}
	if patch.StoreID != nil {
		if _, ok := r.db.stores[*patch.StoreID]; !ok {
			return nil, domain.ErrStoreNotFound
		}
	}
	it = patch.Apply(it)
	r.db.items[id] = it
	return &it, nil
}

// List devuelve todos los items.
func (r *ItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	return r.filter(func(entity.Item) bool { return true }), nil
}

// GetByID obtiene un item; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	it, ok := r.db.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// ListByStore devuelve los items de una tienda.
func (r *ItemRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Item, error) {
	return r.filter(func(it entity.Item) bool { return it.StoreID == storeID }), nil
}

// Delete borra el item y sus transacciones.
func (r *ItemRepo) Delete(_ context.Context, id string) (*entity.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[id]
	if !ok {
		return nil, nil
	}
	r.db.deleteItemLocked(id)
	return &it, nil
}

func (r *ItemRepo) filter(keep func(entity.Item) bool) []*entity.Item {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	list := make([]*entity.Item, 0)
	for _, it := range r.db.items {
		if keep(it) {
			it := it
			list = append(list, &it)
		}
	}
	sortByCreated(list, func(it *entity.Item) time.Time { return it.CreatedAt })
	return list
}
