package controllers

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"label-tool/internal/config"
	"label-tool/internal/logger"
	"label-tool/internal/models"
	"label-tool/internal/services"
)

const (
	MessageTitleWarning = "warning"
	MessageOpenFolder   = "Please open the image folder"
	MessageFinished     = "Finished!!"
	MessageFirstImage   = "No previous image. It's the first image."
)

// View is the surface the session controller drives. The Fyne main view
// implements it; tests use a recording fake.
type View interface {
	SetFiles(names []string, annotated []bool)
	SetAnnotated(index int, annotated bool)
	SelectFile(index int)
	ShowImage(img image.Image)
	ClearHighlight()
	HighlightLabel(id int)
	SetWindowTitle(title string)
	UpdateStatus(status string)
	ShowInfo(title, message string)
	ShowWarning(title string, err error)
}

// ImageLoader reads and decodes an image file.
type ImageLoader interface {
	LoadImage(path string) (image.Image, error)
}

// SessionController owns the labeling session and handles every user action.
// All methods run on the UI event goroutine.
type SessionController struct {
	config      *config.Config
	session     *models.Session
	directories *services.DirectoryService
	labels      *services.LabelStore
	images      ImageLoader
	logger      logger.Logger

	view View
}

// NewSessionController creates a controller with no folder open
func NewSessionController(
	cfg *config.Config,
	directories *services.DirectoryService,
	labels *services.LabelStore,
	images ImageLoader,
	log logger.Logger,
) *SessionController {
	return &SessionController{
		config:      cfg,
		session:     models.NewSession(),
		directories: directories,
		labels:      labels,
		images:      images,
		logger:      log,
	}
}

// SetView associates the view this controller updates
func (sc *SessionController) SetView(view View) {
	sc.view = view
}

// Session exposes the session state for inspection.
func (sc *SessionController) Session() *models.Session {
	return sc.session
}

// OpenDirectory scans dirPath and shows its first image. Reopening the
// current directory rescans it.
func (sc *SessionController) OpenDirectory(dirPath string) {
	if dirPath == "" {
		return
	}

	files, err := sc.directories.ListImages(dirPath)
	if err != nil {
		sc.logger.Error("SessionController", err, map[string]interface{}{"path": dirPath})
		sc.view.ShowWarning(MessageTitleWarning, err)
		return
	}

	annotated := make([]bool, len(files))
	for i, name := range files {
		annotated[i] = sc.labels.Exists(dirPath, name)
	}

	sc.session.Reset(dirPath, files, annotated)
	sc.view.ClearHighlight()
	sc.view.SetFiles(files, annotated)
	sc.view.ShowImage(nil)

	sc.logger.Info("SessionController", "directory opened", map[string]interface{}{
		"path":      dirPath,
		"images":    len(files),
		"annotated": sc.session.AnnotatedCount(),
	})

	if len(files) == 0 {
		sc.view.SetWindowTitle(dirPath)
		sc.publishStatus()
		return
	}

	sc.SwitchTo(0)
	sc.view.SetWindowTitle(dirPath)
	if _, ok := sc.session.Current(); !ok {
		sc.publishStatus()
	}
}

// SwitchTo displays the image at index. Selecting the image already shown
// does nothing beyond clearing the label highlight.
func (sc *SessionController) SwitchTo(index int) {
	sc.view.ClearHighlight()

	if current, ok := sc.session.Current(); ok && current == index {
		return
	}

	name, ok := sc.session.File(index)
	if !ok {
		sc.logger.Warning("SessionController", "switch index out of range", map[string]interface{}{
			"index": index,
			"count": sc.session.Len(),
		})
		return
	}

	dirPath := sc.session.DirPath()
	img, err := sc.images.LoadImage(filepath.Join(dirPath, name))
	if err != nil {
		sc.logger.Error("SessionController", err, map[string]interface{}{"file": name})
		sc.view.ShowWarning("Warning", err)
		return
	}

	sc.view.ShowImage(img)
	sc.view.SetWindowTitle(dirPath)
	sc.session.SetCurrent(index)
	sc.view.SelectFile(index)

	label, err := sc.labels.ReadIfPresent(dirPath, name)
	switch {
	case errors.Is(err, services.ErrNoLabel):
	case err != nil:
		sc.logger.Error("SessionController", err, map[string]interface{}{"file": name})
		sc.view.ShowWarning("Warning", err)
	default:
		sc.view.HighlightLabel(label)
	}

	sc.publishStatus()
}

// RecordLabel writes label id for the current image and moves on to the next one.
func (sc *SessionController) RecordLabel(id int) {
	index, ok := sc.session.Current()
	if !ok {
		sc.view.ShowInfo(MessageTitleWarning, MessageOpenFolder)
		return
	}

	dirPath := sc.session.DirPath()
	name, _ := sc.session.File(index)

	sc.view.SetWindowTitle(dirPath + " * ")

	if err := sc.labels.Write(dirPath, name, id); err != nil {
		sc.logger.Error("SessionController", err, map[string]interface{}{
			"file":  name,
			"label": id,
		})
		sc.view.ShowWarning(MessageTitleWarning, err)
		return
	}

	labelName, _ := sc.config.NameByID(id)
	sc.logger.Info("SessionController", "image labeled", map[string]interface{}{
		"file":       name,
		"label":      id,
		"label_name": labelName,
	})

	sc.view.SetWindowTitle(dirPath)
	sc.markLabelFile(name)
	sc.view.HighlightLabel(id)
	sc.publishStatus()

	sc.Next()
}

// markLabelFile flags every image backed by the same label file as name,
// since a.jpg and a.png both resolve to a.json.
func (sc *SessionController) markLabelFile(name string) {
	labelFile := services.LabelFileName(name)
	for i, file := range sc.session.Files() {
		if services.LabelFileName(file) == labelFile {
			sc.session.MarkAnnotated(i)
			sc.view.SetAnnotated(i, true)
		}
	}
}

// Next moves to the following image.
func (sc *SessionController) Next() {
	index, ok := sc.session.Current()
	if !ok {
		sc.view.ShowInfo(MessageTitleWarning, MessageOpenFolder)
		return
	}

	if index == sc.session.Len()-1 {
		sc.view.ShowInfo(MessageTitleWarning, MessageFinished)
		return
	}

	sc.SwitchTo(index + 1)
}

// Previous moves to the preceding image.
func (sc *SessionController) Previous() {
	index, ok := sc.session.Current()
	if !ok {
		sc.view.ShowInfo(MessageTitleWarning, MessageOpenFolder)
		return
	}

	if index == 0 {
		sc.view.ShowInfo(MessageTitleWarning, MessageFirstImage)
		return
	}

	sc.SwitchTo(index - 1)
}

// SelectFile jumps to the named image, as picked in the file list.
func (sc *SessionController) SelectFile(name string) {
	index := sc.session.IndexOf(name)
	if index < 0 {
		sc.logger.Debug("SessionController", "selected file not in session", map[string]interface{}{
			"file": name,
		})
		return
	}

	sc.SwitchTo(index)
}

func (sc *SessionController) publishStatus() {
	index, ok := sc.session.Current()
	if !ok {
		sc.view.UpdateStatus(fmt.Sprintf("No images  (%d annotated)", sc.session.AnnotatedCount()))
		return
	}

	name, _ := sc.session.File(index)
	sc.view.UpdateStatus(fmt.Sprintf("%d/%d  %s  (%d annotated)",
		index+1, sc.session.Len(), name, sc.session.AnnotatedCount()))
}
