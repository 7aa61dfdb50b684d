package repository

import (
	"context"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
type TransactionRepository interface {
	// Create inserta con status pending; ErrReferenceNotFound si user_id o item_id no existen.
	Create(ctx context.Context, tx *entity.Transaction) error
	// MarkPaid fija status = paid sin revisar el estado previo.
	MarkPaid(ctx context.Context, id string) (*entity.Transaction, error)
	Delete(ctx context.Context, id string) (*entity.Transaction, error)
}
