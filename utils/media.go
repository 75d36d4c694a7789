package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ProductImageFolder is the Cloudinary folder product images are uploaded to.
const ProductImageFolder = "ak-modern/products"

// MediaUploader turns an inline image (data URL or raw base64) into a hosted URL.
type MediaUploader interface {
	UploadImage(ctx context.Context, data string) (string, error)
}

// CloudinaryUploader uploads images to Cloudinary.
type CloudinaryUploader struct {
	Cld    *cloudinary.Cloudinary
	Folder string
}

// NewCloudinaryUploader connects using a cloudinary:// URL.
func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryUploader{Cld: cld, Folder: ProductImageFolder}, nil
}

// UploadImage uploads data and returns its secure URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, data string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := u.Cld.Upload.Upload(ctx, AsDataURL(data), uploader.UploadParams{Folder: u.Folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", errors.New("cloudinary upload: " + res.Error.Message)
	}
	return res.SecureURL, nil
}

// InlineUploader keeps images inline, returning them as data URLs.
type InlineUploader struct{}

func (InlineUploader) UploadImage(_ context.Context, data string) (string, error) {
	if strings.TrimSpace(data) == "" {
		return "", errors.New("empty image")
	}
	return AsDataURL(data), nil
}

// AsDataURL prefixes raw base64 with a JPEG data URL header. Data URLs and http(s) URLs pass through.
func AsDataURL(data string) string {
	data = strings.TrimSpace(data)
	if strings.HasPrefix(data, "data:") || strings.HasPrefix(data, "http://") || strings.HasPrefix(data, "https://") {
		return data
	}
	return "data:image/jpeg;base64," + data
}
