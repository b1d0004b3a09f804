// Package media wraps Cloudinary uploads for event cover images. The rest of
// the application treats images as plain URLs, so this stays a thin optional
// edge: no credentials, no client.
package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client uploads an image and returns its delivery URL.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
}

// Eager transformation applied on upload so cards load fast.
const imageEager = "q_auto,f_auto,w_800,c_fill"

var eagerAsyncFalse = false

type clientImpl struct {
	cloudName string
	uploader  *uploader.API
}

func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return "", err
	}
	if len(result.Eager) > 0 {
		return result.Eager[0].SecureURL, nil
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return BuildOptimizedImageURL(c.cloudName, result.PublicID), nil
}

// BuildOptimizedImageURL returns a Cloudinary delivery URL with the same
// optimizations for an already-uploaded public ID.
func BuildOptimizedImageURL(cloudName, publicID string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_800,c_fill/%s",
		cloudName, publicID)
}

// NewClientFromParams builds a Client from Cloudinary credentials.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{cloudName: cloudName, uploader: up}, nil
}
