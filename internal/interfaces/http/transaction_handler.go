package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/pkg/logger"
)

// TransactionHandler maneja creación, pago y borrado de transacciones.
type TransactionHandler struct {
	uc  *usecase.TransactionUseCase
	log *logger.Logger
}

// NewTransactionHandler construye el handler de transacciones.
func NewTransactionHandler(uc *usecase.TransactionUseCase, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear transacción
// @Description  Queda en estado pending. No se valida total contra precio ni saldo.
// @Tags         transaction
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "user_id, item_id, quantity, total"
// @Success      201  {object}  dto.Envelope{payload=dto.TransactionResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /transaction/create [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := bind(c, &in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return badRequest(c, "Invalid user or item ID format")
		case errors.Is(err, domain.ErrInvalidNumeric):
			return badRequest(c, "Quantity and total must be positive integers")
		}
		return badRequest(c, msgMissingFields)
	}
	quantity, errQty := dto.Int64(in.Quantity)
	total, errTotal := dto.Int64(in.Total)
	if errors.Join(errQty, errTotal) != nil {
		return badRequest(c, "Quantity and total must be positive integers")
	}
	out, err := h.uc.Create(c.UserContext(), in.UserID, in.ItemID, quantity, total)
	if err != nil {
		if errors.Is(err, domain.ErrReferenceNotFound) {
			return notFound(c, "User or item not found")
		}
		return internalError(c, h.log, "transaction.create", err, msgInternal)
	}
	return ok(c, fiber.StatusCreated, "Transaction created", out)
}

// Pay godoc
// @Summary      Pagar transacción
// @Description  Fija status = paid. Pagar una transacción ya pagada también responde 200.
// @Tags         transaction
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayTransactionRequest  true  "transaction_id"
// @Success      200  {object}  dto.Envelope{payload=dto.TransactionResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /transaction/pay [post]
func (h *TransactionHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayTransactionRequest
	if err := bind(c, &in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return badRequest(c, "Invalid transaction ID format")
		}
		return badRequest(c, "Missing transaction ID")
	}
	out, err := h.uc.Pay(c.UserContext(), in.TransactionID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return notFound(c, "Transaction not found")
		}
		return internalError(c, h.log, "transaction.pay", err, msgInternal)
	}
	return ok(c, fiber.StatusOK, "Transaction paid successfully", out)
}

// Delete godoc
// @Summary      Eliminar transacción
// @Tags         transaction
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción (UUID)"
// @Success      200  {object}  dto.Envelope{payload=dto.TransactionResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /transaction/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !domain.IsValidUUID(id) {
		return badRequest(c, "Invalid transaction ID format")
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return notFound(c, "Transaction not found")
		}
		return internalError(c, h.log, "transaction.delete", err, msgInternal)
	}
	return ok(c, fiber.StatusOK, "Transaction deleted", out)
}
