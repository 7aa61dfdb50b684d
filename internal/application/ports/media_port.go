package ports

import (
	"context"
	"io"
)

// ImageUpload archivo de imagen recibido en el formulario de un item.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaUploader define el puerto de salida hacia el host de imágenes.
// Upload devuelve la URL pública de la imagen ya redimensionada (máx. 500x500).
type MediaUploader interface {
	Upload(ctx context.Context, img ImageUpload) (string, error)
}
