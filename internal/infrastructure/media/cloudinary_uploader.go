package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/jhoicas/marketplace-api/internal/application/ports"
	"github.com/jhoicas/marketplace-api/pkg/config"
)

var _ ports.MediaUploader = (*CloudinaryUploader)(nil)

// uploadAPI es el subconjunto de uploader.API que se usa (permite sustituirlo en tests).
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryUploader sube las imágenes de los items a Cloudinary, limitadas a 500x500.
type CloudinaryUploader struct {
	api    uploadAPI
	folder string
}

// NewCloudinaryUploader crea el cliente desde CLOUDINARY_URL o desde cloud name/key/secret.
func NewCloudinaryUploader(cfg config.MediaConfig) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	}
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryUploader{api: &cld.Upload, folder: cfg.Folder}, nil
}

// Upload sube la imagen y devuelve su URL https.
func (u *CloudinaryUploader) Upload(ctx context.Context, img ports.ImageUpload) (string, error) {
	res, err := u.api.Upload(ctx, img.Body, uploader.UploadParams{
		Folder:         u.folder,
		AllowedFormats: api.CldAPIArray{"jpg", "png", "jpeg"},
		Transformation: "c_limit,h_500,w_500",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("cloudinary upload: respuesta sin secure_url")
	}
	return res.SecureURL, nil
}
