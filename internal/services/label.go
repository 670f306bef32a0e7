package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"label-tool/internal/logger"
)

const labelFileExtension = ".json"

// LabelStore reads and writes the per-image label files kept next to each image.
type LabelStore struct {
	logger logger.Logger
}

// NewLabelStore creates a new label store
func NewLabelStore(log logger.Logger) *LabelStore {
	return &LabelStore{logger: log}
}

// LabelFileName replaces the extension of imageName with .json.
func LabelFileName(imageName string) string {
	return strings.TrimSuffix(imageName, filepath.Ext(imageName)) + labelFileExtension
}

// PathFor returns the label file path for an image in dirPath.
func (ls *LabelStore) PathFor(dirPath, imageName string) string {
	return filepath.Join(dirPath, LabelFileName(imageName))
}

// Exists reports whether the image already has a label file.
func (ls *LabelStore) Exists(dirPath, imageName string) bool {
	_, err := os.Stat(ls.PathFor(dirPath, imageName))
	return err == nil
}

// Read decodes the label id stored for an image.
func (ls *LabelStore) Read(dirPath, imageName string) (int, error) {
	path := ls.PathFor(dirPath, imageName)

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read label file: %w", err)
	}

	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return 0, fmt.Errorf("invalid label file %s: %w", filepath.Base(path), err)
	}

	ls.logger.Debug("LabelStore", "label loaded", map[string]interface{}{
		"path":  path,
		"label": id,
	})

	return id, nil
}

// Write stores id as the sole JSON content of the image's label file,
// replacing any previous label.
func (ls *LabelStore) Write(dirPath, imageName string, id int) error {
	path := ls.PathFor(dirPath, imageName)

	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to encode label: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write label file: %w", err)
	}

	ls.logger.Info("LabelStore", "label saved", map[string]interface{}{
		"path":  path,
		"label": id,
	})

	return nil
}

// ErrNoLabel is returned by ReadIfPresent when the image has no label file.
var ErrNoLabel = errors.New("image has no label file")

// ReadIfPresent is Read, but reports a missing file as ErrNoLabel.
func (ls *LabelStore) ReadIfPresent(dirPath, imageName string) (int, error) {
	id, err := ls.Read(dirPath, imageName)
	if errors.Is(err, os.ErrNotExist) {
		return 0, ErrNoLabel
	}
	return id, err
}
