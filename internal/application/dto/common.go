package dto

// Envelope cuerpo uniforme de todas las respuestas HTTP.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Payload any    `json:"payload"`
	Error   any    `json:"error"`
}

// ErrorResponse detalle estructurado del campo error del envelope.
// Vacío ({}) en respuestas exitosas.
type ErrorResponse struct {
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Códigos usados en ErrorResponse.Code.
const (
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL"
)
