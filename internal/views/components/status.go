package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const defaultStatus = "Open a folder to start labeling"

// StatusBar displays the labeling progress line
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel(defaultStatus),
	}
	sb.container = container.NewHBox(sb.statusLabel)
	return sb
}

// SetStatus updates the status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
