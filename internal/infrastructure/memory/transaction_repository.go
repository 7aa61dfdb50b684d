package memory

import (
	"context"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo transacciones en memoria.
type TransactionRepo struct {
	db *DB
}

// Create guarda la transacción; ErrReferenceNotFound si falta el usuario o el item.
func (r *TransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[tx.UserID]; !ok {
		return domain.ErrReferenceNotFound
	}
	if _, ok := r.db.items[tx.ItemID]; !ok {
		return domain.ErrReferenceNotFound
	}
	tx.CreatedAt = r.db.now()
	r.db.transactions[tx.ID] = *tx
	return nil
}

// MarkPaid fija status = paid sin mirar el estado previo.
func (r *TransactionRepo) MarkPaid(_ context.Context, id string) (*entity.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.transactions[id]
	if !ok {
		return nil, nil
	}
	t.Pay()
	r.db.transactions[id] = t
	return &t, nil
}

// Delete borra la transacción y la devuelve.
func (r *TransactionRepo) Delete(_ context.Context, id string) (*entity.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.transactions[id]
	if !ok {
		return nil, nil
	}
	delete(r.db.transactions, id)
	return &t, nil
}
