package services

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"label-tool/internal/logger"
)

// imageExtensions is matched case-sensitively against the text after the last dot.
var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"bmp":  true,
}

// DirectoryService lists the images of a flat labeling folder
type DirectoryService struct {
	logger logger.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(log logger.Logger) *DirectoryService {
	return &DirectoryService{logger: log}
}

// ListImages returns the image file names in dirPath, sorted lexicographically.
// Subdirectories are not traversed.
func (ds *DirectoryService) ListImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsImageFile(entry.Name()) {
			images = append(images, entry.Name())
		}
	}
	sort.Strings(images)

	ds.logger.Debug("DirectoryService", "directory listed", map[string]interface{}{
		"path":    dirPath,
		"entries": len(entries),
		"images":  len(images),
	})

	return images, nil
}

// IsImageFile reports whether name carries one of the supported image extensions.
func IsImageFile(name string) bool {
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return false
	}
	return imageExtensions[name[dot+1:]]
}
