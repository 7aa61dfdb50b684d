package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/jhoicas/marketplace-api/internal/application/ports"
	"github.com/jhoicas/marketplace-api/pkg/config"
)

// MaxDimension lado máximo de las imágenes guardadas; más chicas no se agrandan.
const MaxDimension = 500

var _ ports.MediaUploader = (*LocalUploader)(nil)

// LocalUploader guarda las imágenes en disco (MEDIA_LOCAL_DIR) y las sirve bajo MEDIA_PUBLIC_URL.
type LocalUploader struct {
	dir       string
	publicURL string
}

// NewLocalUploader crea el directorio de destino si no existe.
func NewLocalUploader(cfg config.MediaConfig) (*LocalUploader, error) {
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de medios: %w", err)
	}
	return &LocalUploader{dir: cfg.LocalDir, publicURL: strings.TrimRight(cfg.PublicURL, "/")}, nil
}

// Upload decodifica la imagen (jpeg o png), la limita a 500x500 y la guarda con un nombre nuevo.
func (u *LocalUploader) Upload(ctx context.Context, img ports.ImageUpload) (string, error) {
	src, format, err := image.Decode(img.Body)
	if err != nil {
		return "", fmt.Errorf("decodificar imagen: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out := Fit(src, MaxDimension, MaxDimension)

	var buf bytes.Buffer
	ext := ".png"
	switch format {
	case "jpeg":
		ext = ".jpg"
		err = jpeg.Encode(&buf, out, &jpeg.Options{Quality: 90})
	case "png":
		err = png.Encode(&buf, out)
	default:
		return "", fmt.Errorf("formato no soportado: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("codificar imagen: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(u.dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return path.Join(u.publicURL, name), nil
}

// Fit escala src para que quepa en maxW x maxH conservando la proporción (crop "limit").
func Fit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	nw, nh := maxW, h*maxW/w
	if nh > maxH {
		nw, nh = w*maxH/h, maxH
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
