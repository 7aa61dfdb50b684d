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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	db Querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones.
func NewTransactionRepository(db Querier) *TransactionRepo {
	return &TransactionRepo{db: db}
}

const transactionColumns = `id, user_id, item_id, quantity, total, status, created_at`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var status string
	if err := row.Scan(&t.ID, &t.UserID, &t.ItemID, &t.Quantity, &t.Total, &status, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Status = entity.TransactionStatus(status)
	return &t, nil
}

// Create persiste una transacción; user_id e item_id deben existir.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, item_id, quantity, total, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`
	err := r.db.QueryRow(ctx, query, tx.ID, tx.UserID, tx.ItemID, tx.Quantity, tx.Total, string(tx.Status)).
		Scan(&tx.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// MarkPaid fija status = 'paid' sin condición sobre el estado actual.
func (r *TransactionRepo) MarkPaid(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `UPDATE transactions SET status = 'paid' WHERE id = $1 RETURNING ` + transactionColumns
	t, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("pay transaction: %w", err)
	}
	return t, nil
}

// Delete elimina una transacción y devuelve la fila borrada.
func (r *TransactionRepo) Delete(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRow(ctx, `DELETE FROM transactions WHERE id = $1 RETURNING `+transactionColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	return t, nil
}
