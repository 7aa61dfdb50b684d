package memory

import (
	"context"
	"time"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo tiendas en memoria.
type StoreRepo struct {
	db *DB
}

// Create guarda la tienda y fija created_at.
func (r *StoreRepo) Create(_ context.Context, store *entity.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	store.CreatedAt = r.db.now()
	r.db.stores[store.ID] = *store
	return nil
}

// List devuelve las tiendas por fecha de creación (slice vacío, nunca nil).
func (r *StoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	list := make([]*entity.Store, 0, len(r.db.stores))
	for _, s := range r.db.stores {
		s := s
		list = append(list, &s)
	}
	sortByCreated(list, func(s *entity.Store) time.Time { return s.CreatedAt })
	return list, nil
}

// GetByID obtiene una tienda; (nil, nil) si no existe.
func (r *StoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	s, ok := r.db.stores[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Update reemplaza nombre y dirección.
func (r *StoreRepo) Update(_ context.Context, store *entity.Store) (*entity.Store, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.stores[store.ID]
	if !ok {
		return nil, nil
	}
	s.Name = store.Name
	s.Address = store.Address
	r.db.stores[s.ID] = s
	return &s, nil
}

// Delete borra la tienda y en cascada sus items y las transacciones de esos items.
func (r *StoreRepo) Delete(_ context.Context, id string) (*entity.Store, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.stores[id]
	if !ok {
		return nil, nil
	}
	delete(r.db.stores, id)
	for iid, it := range r.db.items {
		if it.StoreID == id {
			r.db.deleteItemLocked(iid)
		}
	}
	return &s, nil
}
