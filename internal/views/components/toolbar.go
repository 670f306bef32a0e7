package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the navigation actions: open, previous, next and exit
type Toolbar struct {
	toolbar *widget.Toolbar

	// Event handlers
	openHandler     func()
	previousHandler func()
	nextHandler     func()
	exitHandler     func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { invoke(t.openHandler) }),
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() { invoke(t.previousHandler) }),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() { invoke(t.nextHandler) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.CancelIcon(), func() { invoke(t.exitHandler) }),
	)
	return t
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}

// SetOpenHandler sets the open folder handler
func (t *Toolbar) SetOpenHandler(handler func()) {
	t.openHandler = handler
}

// SetPreviousHandler sets the previous image handler
func (t *Toolbar) SetPreviousHandler(handler func()) {
	t.previousHandler = handler
}

// SetNextHandler sets the next image handler
func (t *Toolbar) SetNextHandler(handler func()) {
	t.nextHandler = handler
}

// SetExitHandler sets the exit handler
func (t *Toolbar) SetExitHandler(handler func()) {
	t.exitHandler = handler
}

// GetContainer returns the toolbar widget
func (t *Toolbar) GetContainer() fyne.CanvasObject {
	return t.toolbar
}
