package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrStoreNotFound       = errors.New("tienda no encontrada")
	ErrItemNotFound        = errors.New("item no encontrado")
	ErrTransactionNotFound = errors.New("transacción no encontrada")
	ErrReferenceNotFound   = errors.New("referencia inexistente")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrUnauthorized        = errors.New("no autorizado")

	// Validación de entrada (siempre antes de tocar la base de datos).
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrMissingFields  = errors.New("faltan campos requeridos")
	ErrInvalidID      = errors.New("formato de ID inválido")
	ErrInvalidEmail   = errors.New("formato de email inválido")
	ErrInvalidAmount  = errors.New("monto inválido")
	ErrInvalidImage   = errors.New("formato de imagen no permitido")
	ErrInvalidNumeric = errors.New("valor numérico inválido")
)
