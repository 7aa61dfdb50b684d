package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/pkg/logger"
)

// StoreHandler maneja el CRUD de tiendas. Los 500 devuelven el mensaje del error.
type StoreHandler struct {
	uc  *usecase.StoreUseCase
	log *logger.Logger
}

// NewStoreHandler construye el handler de tiendas.
func NewStoreHandler(uc *usecase.StoreUseCase, log *logger.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, log: log}
}

// GetAll godoc
// @Summary      Listar tiendas
// @Tags         store
// @Produce      json
// @Success      200  {object}  dto.Envelope{payload=[]dto.StoreResponse}
// @Failure      500  {object}  dto.Envelope
// @Router       /store/getAll [get]
func (h *StoreHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c, h.log, "store.getAll", err, err.Error())
	}
	return ok(c, fiber.StatusOK, "Stores found", out)
}

// Create godoc
// @Summary      Crear tienda
// @Tags         store
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "name, address"
// @Success      201   {object}  dto.Envelope{payload=dto.StoreResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /store/create [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := bind(c, &in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "Missing store name or address")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return internalError(c, h.log, "store.create", err, err.Error())
	}
	return ok(c, fiber.StatusCreated, "Store created", out)
}

// GetByID godoc
// @Summary      Obtener tienda por ID
// @Tags         store
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda (UUID)"
// @Success      200  {object}  dto.Envelope{payload=dto.StoreResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /store/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !domain.IsValidUUID(id) {
		return badRequest(c, "Invalid store ID format")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return notFound(c, "Store doesn't exist")
		}
		return internalError(c, h.log, "store.getById", err, err.Error())
	}
	return ok(c, fiber.StatusOK, "Store found", out)
}

// Update godoc
// @Summary      Actualizar tienda
// @Tags         store
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStoreRequest  true  "id, name, address"
// @Success      200   {object}  dto.Envelope{payload=dto.StoreResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /store [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := bind(c, &in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return badRequest(c, "Invalid store ID format")
		}
		return badRequest(c, "All fields are required (id, name, address)")
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return notFound(c, "Store doesn't exist")
		}
		return internalError(c, h.log, "store.update", err, err.Error())
	}
	return ok(c, fiber.StatusOK, "Store updated", out)
}

// Delete godoc
// @Summary      Eliminar tienda
// @Description  Elimina la tienda y, en cascada, sus items.
// @Tags         store
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda (UUID)"
// @Success      200  {object}  dto.Envelope{payload=dto.StoreResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /store/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !domain.IsValidUUID(id) {
		return badRequest(c, "Invalid store ID format")
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return notFound(c, "Store doesn't exist")
		}
		return internalError(c, h.log, "store.delete", err, err.Error())
	}
	return ok(c, fiber.StatusOK, "Store deleted", out)
}
