package entity

import "time"

// TransactionStatus ciclo de vida de una transacción: pending -> paid.
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionPaid    TransactionStatus = "paid"
)

// Transaction representa la compra de un item por un usuario.
// Total no se contrasta con price*quantity ni con el saldo del usuario.
type Transaction struct {
	ID        string
	UserID    string
	ItemID    string
	Quantity  int64
	Total     int64
	Status    TransactionStatus
	CreatedAt time.Time
}

// Pay marca la transacción como pagada. Es idempotente: no revisa el estado previo.
func (t *Transaction) Pay() {
	t.Status = TransactionPaid
}
