package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	db Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(db Querier) *StoreRepo {
	return &StoreRepo{db: db}
}

const storeColumns = `id, name, address, created_at`

func scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	if err := row.Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una nueva tienda.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `INSERT INTO stores (id, name, address) VALUES ($1, $2, $3) RETURNING created_at`
	if err := r.db.QueryRow(ctx, query, store.ID, store.Name, store.Address).Scan(&store.CreatedAt); err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// List devuelve todas las tiendas por fecha de creación.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.db.Query(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	s, err := scanStore(r.db.QueryRow(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return s, nil
}

// Update reemplaza nombre y dirección.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) (*entity.Store, error) {
	query := `UPDATE stores SET name = $1, address = $2 WHERE id = $3 RETURNING ` + storeColumns
	s, err := scanStore(r.db.QueryRow(ctx, query, store.Name, store.Address, store.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update store: %w", err)
	}
	return s, nil
}

// Delete elimina la tienda; sus items se borran en cascada.
func (r *StoreRepo) Delete(ctx context.Context, id string) (*entity.Store, error) {
	s, err := scanStore(r.db.QueryRow(ctx, `DELETE FROM stores WHERE id = $1 RETURNING `+storeColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete store: %w", err)
	}
	return s, nil
}
