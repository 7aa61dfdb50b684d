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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	db Querier
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(db Querier) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `id, name, price, stock, store_id, image_url, created_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	if err := row.Scan(&it.ID, &it.Name, &it.Price, &it.Stock, &it.StoreID, &it.ImageURL, &it.CreatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Create persiste un nuevo item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, price, stock, store_id, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`
	err := r.db.QueryRow(ctx, query, item.ID, item.Name, item.Price, item.Stock, item.StoreID, item.ImageURL).
		Scan(&item.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrStoreNotFound
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update aplica el patch; los campos nil conservan su valor (COALESCE).
func (r *ItemRepo) Update(ctx context.Context, id string, patch entity.ItemPatch) (*entity.Item, error) {
	query := `
		UPDATE items SET
			name = COALESCE($1, name),
			price = COALESCE($2, price),
			stock = COALESCE($3, stock),
			store_id = COALESCE($4, store_id),
			image_url = COALESCE($5, image_url)
		WHERE id = $6
		RETURNING ` + itemColumns
	it, err := scanItem(r.db.QueryRow(ctx, query,
		patch.Name, patch.Price, patch.Stock, patch.StoreID, patch.ImageURL, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

// List devuelve todos los items.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items ORDER BY created_at`)
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// ListByStore lista los items de una tienda.
func (r *ItemRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items WHERE store_id = $1 ORDER BY created_at`, storeID)
}

// Delete elimina un item y devuelve la fila borrada.
func (r *ItemRepo) Delete(ctx context.Context, id string) (*entity.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `DELETE FROM items WHERE id = $1 RETURNING `+itemColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete item: %w", err)
	}
	return it, nil
}
