package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// TransactionUseCase crea, paga y elimina transacciones.
// Pay solo cambia el estado: no descuenta saldo, no toca stock y no revisa el estado previo.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create registra una transacción en estado pending.
func (uc *TransactionUseCase) Create(ctx context.Context, userID, itemID string, quantity, total int64) (*dto.TransactionResponse, error) {
	if quantity <= 0 || total <= 0 {
		return nil, domain.ErrInvalidNumeric
	}
	tx := &entity.Transaction{
		ID:       uuid.New().String(),
		UserID:   userID,
		ItemID:   itemID,
		Quantity: quantity,
		Total:    total,
		Status:   entity.TransactionPending,
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Pay marca la transacción como pagada. Pagar dos veces devuelve la fila ya pagada.
func (uc *TransactionUseCase) Pay(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.MarkPaid(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrTransactionNotFound
	}
	return toTransactionResponse(tx), nil
}

// Delete elimina la transacción y devuelve la fila borrada.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrTransactionNotFound
	}
	return toTransactionResponse(tx), nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		ItemID:    t.ItemID,
		Quantity:  t.Quantity,
		Total:     t.Total,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}
