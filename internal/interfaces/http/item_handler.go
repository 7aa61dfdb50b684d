package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/ports"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/pkg/logger"
)

const (
	msgMissingFields  = "Missing required fields"
	msgInvalidNumbers = "Price must be a positive integer and stock a non-negative integer"
	msgInvalidImage   = "Image must be jpg, jpeg or png"
)

// ItemHandler maneja items; create y update reciben multipart/form-data con el archivo en "image".
type ItemHandler struct {
	uc  *usecase.ItemUseCase
	log *logger.Logger
}

// NewItemHandler construye el handler de items.
func NewItemHandler(uc *usecase.ItemUseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// itemValidationMessage traduce un fallo de validación al mensaje del envelope.
func itemValidationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidID) && dto.FieldOf(err) == "store_id":
		return "Invalid store ID format"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid item ID format"
	case errors.Is(err, domain.ErrInvalidNumeric):
		return msgInvalidNumbers
	default:
		return msgMissingFields
	}
}

// Create godoc
// @Summary      Crear item
// @Tags         item
// @Accept       multipart/form-data
// @Produce      json
// @Param        name      formData  string  true  "Nombre"
// @Param        price     formData  int     true  "Precio (> 0)"
// @Param        stock     formData  int     true  "Stock (>= 0)"
// @Param        store_id  formData  string  true  "ID de la tienda"
// @Param        image     formData  file    true  "Imagen jpg/jpeg/png"
// @Success      201  {object}  dto.Envelope{payload=dto.ItemResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /item/create [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := bind(c, &in); err != nil {
		return badRequest(c, msgMissingFields)
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, itemValidationMessage(err))
	}
	img, closeImg, err := formImage(c)
	if err != nil {
		return internalError(c, h.log, "item.create", err, "Internal Server Error")
	}
	if img == nil {
		return badRequest(c, msgMissingFields)
	}
	defer closeImg()

	price, errPrice := dto.Int64(in.Price)
	stock, errStock := dto.Int64(in.Stock)
	if errors.Join(errPrice, errStock) != nil {
		return badRequest(c, msgInvalidNumbers)
	}
	out, err := h.uc.Create(c.UserContext(), usecase.CreateItemInput{
		Name:    in.Name,
		Price:   price,
		Stock:   stock,
		StoreID: in.StoreID,
		Image:   img,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidImage):
			return badRequest(c, msgInvalidImage)
		case errors.Is(err, domain.ErrStoreNotFound):
			return notFound(c, "Store doesn't exist")
		}
		return internalError(c, h.log, "item.create", err, "Internal Server Error")
	}
	return ok(c, fiber.StatusCreated, "Item created", out)
}

// Update godoc
// @Summary      Actualizar item (parcial)
// @Description  Los campos omitidos conservan su valor. Una imagen nueva reemplaza la anterior.
// @Tags         item
// @Accept       multipart/form-data
// @Produce      json
// @Param        id        formData  string  true   "ID del item"
// @Param        name      formData  string  false  "Nombre"
// @Param        price     formData  int     false  "Precio (> 0)"
// @Param        stock     formData  int     false  "Stock (>= 0)"
// @Param        store_id  formData  string  false  "ID de la tienda"
// @Param        image     formData  file    false  "Imagen jpg/jpeg/png"
// @Success      200  {object}  dto.Envelope{payload=dto.ItemResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /item [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := bind(c, &in); err != nil {
		return badRequest(c, msgMissingFields)
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, itemValidationMessage(err))
	}
	price, errPrice := dto.OptionalInt64(in.Price)
	stock, errStock := dto.OptionalInt64(in.Stock)
	if errors.Join(errPrice, errStock) != nil {
		return badRequest(c, msgInvalidNumbers)
	}
	patch := entity.ItemPatch{
		Name:    dto.OptionalString(in.Name),
		Price:   price,
		Stock:   stock,
		StoreID: dto.OptionalString(in.StoreID),
	}

	img, closeImg, err := formImage(c)
	if err != nil {
		return internalError(c, h.log, "item.update", err, "Failed to update item")
	}
	if img != nil {
		defer closeImg()
	}

	out, err := h.uc.Update(c.UserContext(), in.ID, patch, img)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return notFound(c, "Item not found")
		case errors.Is(err, domain.ErrStoreNotFound):
			return notFound(c, "Store doesn't exist")
		case errors.Is(err, domain.ErrInvalidImage):
			return badRequest(c, msgInvalidImage)
		}
		return internalError(c, h.log, "item.update", err, "Failed to update item")
	}
	return ok(c, fiber.StatusOK, "Item updated", out)
}

// GetAll godoc
// @Summary      Listar items
// @Tags         item
// @Produce      json
// @Success      200  {object}  dto.Envelope{payload=[]dto.ItemResponse}
// @Router       /item [get]
func (h *ItemHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c, h.log, "item.getAll", err, "Internal server error")
	}
	return ok(c, fiber.StatusOK, "Items found", out)
}

// GetByID godoc
// @Summary      Obtener item por ID
// @Tags         item
// @Produce      json
// @Param        id   path  string  true  "ID del item (UUID)"
// @Success      200  {object}  dto.Envelope{payload=dto.ItemResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /item/byId/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !domain.IsValidUUID(id) {
		return badRequest(c, "Invalid item ID format")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return notFound(c, "Item not found")
		}
		return internalError(c, h.log, "item.getById", err, err.Error())
	}
	return ok(c, fiber.StatusOK, "Item found", out)
}

// GetByStoreID godoc
// @Summary      Listar items de una tienda
// @Tags         item
// @Produce      json
// @Param        store_id  path  string  true  "ID de la tienda (UUID)"
// @Success      200  {object}  dto.Envelope{payload=[]dto.ItemResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /item/byStoreId/{store_id} [get]
func (h *ItemHandler) GetByStoreID(c *fiber.Ctx) error {
	storeID := c.Params("store_id")
	if !domain.IsValidUUID(storeID) {
		return badRequest(c, "Invalid store ID format")
	}
	out, err := h.uc.ListByStore(c.UserContext(), storeID)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return notFound(c, "Store doesn't exist")
		}
		return internalError(c, h.log, "item.getByStoreId", err, "Internal Server Error")
	}
	return ok(c, fiber.StatusOK, "Items found", out)
}

// Delete godoc
// @Summary      Eliminar item
// @Tags         item
// @Produce      json
// @Param        id   path  string  true  "ID del item (UUID)"
// @Success      200  {object}  dto.Envelope{payload=dto.ItemResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /item/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !domain.IsValidUUID(id) {
		return badRequest(c, "Invalid item ID format")
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return notFound(c, "Item not found")
		}
		return internalError(c, h.log, "item.delete", err, "Failed to delete item")
	}
	return ok(c, fiber.StatusOK, "Item deleted", out)
}

// formImage abre el archivo "image" del formulario multipart; (nil, nil, nil) si no viene.
func formImage(c *fiber.Ctx) (*ports.ImageUpload, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// sin multipart o sin el campo: no hay imagen
		return nil, func() {}, nil
	}
	return openImage(fh)
}

func openImage(fh *multipart.FileHeader) (*ports.ImageUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}
