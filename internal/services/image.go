package services

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"label-tool/internal/logger"
)

// ErrInvalidImage is returned when file contents cannot be decoded as an image.
var ErrInvalidImage = errors.New("invalid image")

// ImageDecoder turns encoded image bytes into an image.
type ImageDecoder interface {
	Decode(data []byte) (image.Image, error)
}

// ImageService handles reading images from the labeling folder
type ImageService struct {
	decoder ImageDecoder
	logger  logger.Logger
}

// NewImageService creates a new image service
func NewImageService(decoder ImageDecoder, log logger.Logger) *ImageService {
	return &ImageService{
		decoder: decoder,
		logger:  log,
	}
}

// LoadImage reads the file at path and decodes it.
func (is *ImageService) LoadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	img, err := is.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	bounds := img.Bounds()
	is.logger.Debug("ImageService", "image loaded", map[string]interface{}{
		"path":       path,
		"size_bytes": len(data),
		"width":      bounds.Dx(),
		"height":     bounds.Dy(),
	})

	return img, nil
}
