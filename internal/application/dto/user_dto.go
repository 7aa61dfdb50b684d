package dto

import (
	"encoding/json"
	"time"
)

// RegisterRequest credenciales de registro. Se aceptan en query string (comportamiento histórico
// del endpoint) o en el cuerpo; el cuerpo tiene prioridad.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" query:"name" validate:"required"`
	Email    string `json:"email" form:"email" query:"email" validate:"required,shopemail"`
	Password string `json:"password" form:"password" query:"password" validate:"required"`
}

// LoginRequest credenciales de login (query string o cuerpo, igual que RegisterRequest).
type LoginRequest struct {
	Email    string `json:"email" form:"email" query:"email" validate:"required,shopemail"`
	Password string `json:"password" form:"password" query:"password" validate:"required"`
}

// UpdateUserRequest reemplazo completo del usuario; todos los campos son obligatorios.
type UpdateUserRequest struct {
	ID       string `json:"id" form:"id" validate:"required,uuid15"`
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,shopemail"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TopUpRequest recarga de saldo; amount debe ser un entero positivo.
type TopUpRequest struct {
	ID     string      `json:"id" form:"id" validate:"required,uuid15"`
	Amount json.Number `json:"amount" form:"amount" validate:"required,posint"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummaryResponse confirmación de borrado: solo id, name y email.
type UserSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BalanceResponse saldo de un usuario.
type BalanceResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Balance int64  `json:"balance"`
}

// TopUpResponse usuario tras la recarga.
type TopUpResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}
