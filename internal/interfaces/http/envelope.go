package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/pkg/logger"
)

// ok responde con el envelope de éxito; error siempre es un objeto vacío.
func ok(c *fiber.Ctx, status int, message string, payload any) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: true,
		Message: message,
		Payload: payload,
		Error:   fiber.Map{},
	})
}

// fail responde con el envelope de error y payload null.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: false,
		Message: message,
		Error:   dto.ErrorResponse{Code: code},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return fail(c, fiber.StatusBadRequest, dto.CodeValidation, message)
}

func notFound(c *fiber.Ctx, message string) error {
	return fail(c, fiber.StatusNotFound, dto.CodeNotFound, message)
}

// internalError registra el error con la operación y responde 500 con message.
func internalError(c *fiber.Ctx, log *logger.Logger, op string, err error, message string) error {
	log.Error().Err(err).Str("op", op).Str("request_id", requestID(c)).Msg("error inesperado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
		Success: false,
		Message: message,
		Error:   dto.ErrorResponse{Code: dto.CodeInternal, Detail: op},
	})
}

// ErrorHandler convierte los errores que escapan de los handlers (ruta inexistente,
// cuerpo demasiado grande, pánicos recuperados) al mismo envelope.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal Server Error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}
		code := dto.CodeInternal
		switch {
		case status == fiber.StatusNotFound:
			code = dto.CodeNotFound
		case status < fiber.StatusInternalServerError:
			code = dto.CodeValidation
		default:
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		return fail(c, status, code, message)
	}
}
