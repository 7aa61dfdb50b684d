package dto

import (
	"encoding/json"
	"time"
)

// CreateTransactionRequest entrada para crear una transacción (queda en pending).
type CreateTransactionRequest struct {
	UserID   string      `json:"user_id" form:"user_id" validate:"required,uuid15"`
	ItemID   string      `json:"item_id" form:"item_id" validate:"required,uuid15"`
	Quantity json.Number `json:"quantity" form:"quantity" validate:"required,posint"`
	Total    json.Number `json:"total" form:"total" validate:"required,posint"`
}

// PayTransactionRequest entrada para marcar una transacción como pagada.
type PayTransactionRequest struct {
	TransactionID string `json:"transaction_id" form:"transaction_id" validate:"required,uuid15"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	Quantity  int64     `json:"quantity"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
