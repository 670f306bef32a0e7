package components

import (
	"image/color"

	"label-tool/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const LabelButtonMinHeight = 60

// LabelPanel shows one button per configured label. Buttons are addressed by
// label id through a table built once from the config.
type LabelPanel struct {
	container    *widget.Card
	buttons      map[int]*widget.Button
	highlighted  int
	hasHighlight bool

	labelHandler func(id int)
}

// NewLabelPanel creates buttons for labels in config order
func NewLabelPanel(labels []config.Label) *LabelPanel {
	lp := &LabelPanel{
		buttons: make(map[int]*widget.Button, len(labels)),
	}

	rows := make([]fyne.CanvasObject, 0, len(labels))
	for _, label := range labels {
		id := label.ID
		button := widget.NewButton(label.Name, func() {
			if lp.labelHandler != nil {
				lp.labelHandler(id)
			}
		})
		button.Importance = widget.MediumImportance
		lp.buttons[id] = button

		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(0, LabelButtonMinHeight))
		rows = append(rows, container.NewStack(spacer, button))
	}

	lp.container = widget.NewCard("Label Select", "status", container.NewVBox(rows...))
	return lp
}

// SetLabelHandler sets the handler called with the id of a tapped label button
func (lp *LabelPanel) SetLabelHandler(handler func(id int)) {
	lp.labelHandler = handler
}

// Button returns the button for a label id
func (lp *LabelPanel) Button(id int) (*widget.Button, bool) {
	button, ok := lp.buttons[id]
	return button, ok
}

// Highlight marks the button of label id. Unknown ids leave every button plain.
func (lp *LabelPanel) Highlight(id int) {
	lp.ClearHighlight()

	button, ok := lp.buttons[id]
	if !ok {
		return
	}
	button.Importance = widget.DangerImportance
	button.Refresh()
	lp.highlighted = id
	lp.hasHighlight = true
}

// ClearHighlight restores the default look of all buttons
func (lp *LabelPanel) ClearHighlight() {
	if !lp.hasHighlight {
		return
	}
	if button, ok := lp.buttons[lp.highlighted]; ok {
		button.Importance = widget.MediumImportance
		button.Refresh()
	}
	lp.hasHighlight = false
}

// Highlighted returns the highlighted label id, if any
func (lp *LabelPanel) Highlighted() (int, bool) {
	return lp.highlighted, lp.hasHighlight
}

// GetContainer returns the panel card
func (lp *LabelPanel) GetContainer() fyne.CanvasObject {
	return lp.container
}
