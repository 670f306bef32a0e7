package views

import (
	"image"
	"os"

	"label-tool/internal/config"
	"label-tool/internal/logger"
	"label-tool/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
)

// MainView is the labeling window: toolbar, image, label buttons and file list
type MainView struct {
	// UI Components
	window       fyne.Window
	toolbar      *components.Toolbar
	imageDisplay *components.ImageDisplay
	labelPanel   *components.LabelPanel
	fileList     *components.FileList
	statusBar    *components.StatusBar
	logger       logger.Logger

	// Event handlers - connected to controller
	openDirectoryHandler func(path string)
	previousHandler      func()
	nextHandler          func()
	labelHandler         func(id int)
	fileHandler          func(name string)
}

// NewMainView creates the main view for the configured labels
func NewMainView(window fyne.Window, labels []config.Label, log logger.Logger) *MainView {
	view := &MainView{
		window: window,
		logger: log,
	}

	view.initializeComponents(labels)
	view.buildLayout()
	view.setupEventHandlers()
	view.setupMenu()
	view.setupShortcuts()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(labels []config.Label) {
	mv.toolbar = components.NewToolbar()
	mv.imageDisplay = components.NewImageDisplay()
	mv.labelPanel = components.NewLabelPanel(labels)
	mv.fileList = components.NewFileList()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	sidePanel := container.NewVSplit(
		container.NewVScroll(mv.labelPanel.GetContainer()),
		mv.fileList.GetContainer(),
	)
	sidePanel.SetOffset(0.4)

	content := container.NewHSplit(mv.imageDisplay.GetContainer(), sidePanel)
	content.SetOffset(0.75)

	mv.window.SetContent(container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		content,                     // center
	))
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetOpenHandler(mv.showFolderDialog)
	mv.toolbar.SetPreviousHandler(mv.previous)
	mv.toolbar.SetNextHandler(mv.next)
	mv.toolbar.SetExitHandler(mv.window.Close)

	mv.labelPanel.SetLabelHandler(func(id int) {
		if mv.labelHandler != nil {
			mv.labelHandler(id)
		}
	})

	mv.fileList.SetOpenHandler(func(name string) {
		// The list keeps focus after a tap, which would swallow the A/D keys.
		mv.window.Canvas().Unfocus()
		if mv.fileHandler != nil {
			mv.fileHandler(name)
		}
	})
}

// setupMenu creates the File menu mirroring the toolbar
func (mv *MainView) setupMenu() {
	openItem := fyne.NewMenuItem("Open", mv.showFolderDialog)
	openItem.Shortcut = openShortcut
	previousItem := fyne.NewMenuItem("Previous (A)", mv.previous)
	nextItem := fyne.NewMenuItem("Next (D)", mv.next)
	exitItem := fyne.NewMenuItem("Exit", mv.window.Close)
	exitItem.Shortcut = exitShortcut
	exitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		openItem,
		previousItem,
		nextItem,
		fyne.NewMenuItemSeparator(),
		exitItem,
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

var (
	openShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}
	exitShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierShortcutDefault}
)

// setupShortcuts binds Ctrl+O, Ctrl+Q and the bare A/D navigation keys
func (mv *MainView) setupShortcuts() {
	canvas := mv.window.Canvas()
	canvas.AddShortcut(openShortcut, func(fyne.Shortcut) { mv.showFolderDialog() })
	canvas.AddShortcut(exitShortcut, func(fyne.Shortcut) { mv.window.Close() })

	canvas.SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyA:
			mv.previous()
		case fyne.KeyD:
			mv.next()
		}
	})
}

func (mv *MainView) previous() {
	if mv.previousHandler != nil {
		mv.previousHandler()
	}
}

func (mv *MainView) next() {
	if mv.nextHandler != nil {
		mv.nextHandler()
	}
}

// showFolderDialog asks for an image folder, starting in the home directory.
// Cancelling the dialog or a dialog error leaves the session as it is.
func (mv *MainView) showFolderDialog() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			mv.logger.Debug("MainView", "folder selection failed", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		if uri == nil || mv.openDirectoryHandler == nil {
			return
		}
		mv.openDirectoryHandler(uri.Path())
	}, mv.window)

	if home, err := os.UserHomeDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(home)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}

	folderDialog.Show()
}

// Event handler setters - called by the application

// SetOpenDirectoryHandler sets the handler for a chosen folder
func (mv *MainView) SetOpenDirectoryHandler(handler func(path string)) {
	mv.openDirectoryHandler = handler
}

// SetPreviousHandler sets the handler for previous image requests
func (mv *MainView) SetPreviousHandler(handler func()) {
	mv.previousHandler = handler
}

// SetNextHandler sets the handler for next image requests
func (mv *MainView) SetNextHandler(handler func()) {
	mv.nextHandler = handler
}

// SetLabelHandler sets the handler for label button taps
func (mv *MainView) SetLabelHandler(handler func(id int)) {
	mv.labelHandler = handler
}

// SetFileHandler sets the handler for file list double taps
func (mv *MainView) SetFileHandler(handler func(name string)) {
	mv.fileHandler = handler
}

// UI update methods - called by the session controller

// SetFiles replaces the file list
func (mv *MainView) SetFiles(names []string, annotated []bool) {
	mv.fileList.SetFiles(names, annotated)
}

// SetAnnotated updates one file's check mark
func (mv *MainView) SetAnnotated(index int, annotated bool) {
	mv.fileList.SetAnnotated(index, annotated)
}

// SelectFile marks a file list entry as selected
func (mv *MainView) SelectFile(index int) {
	mv.fileList.Select(index)
}

// ShowImage displays img; nil shows the placeholder
func (mv *MainView) ShowImage(img image.Image) {
	mv.imageDisplay.SetImage(img)
}

// ClearHighlight resets every label button
func (mv *MainView) ClearHighlight() {
	mv.labelPanel.ClearHighlight()
}

// HighlightLabel marks the button of the stored label
func (mv *MainView) HighlightLabel(id int) {
	mv.labelPanel.Highlight(id)
}

// SetWindowTitle updates the window title
func (mv *MainView) SetWindowTitle(title string) {
	mv.window.SetTitle(title)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowWarning displays an error dialog carrying the error text
func (mv *MainView) ShowWarning(title string, err error) {
	mv.logger.Debug("MainView", "showing warning", map[string]interface{}{
		"title": title,
		"error": err.Error(),
	})
	dialog.ShowError(err, mv.window)
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
