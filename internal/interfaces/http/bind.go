package http

import (
	"github.com/gofiber/fiber/v2"
)

// bind parsea el cuerpo (JSON, form o multipart) en out. Un cuerpo vacío no es error:
// los campos quedan en cero y la validación reporta los faltantes.
func bind(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}
