package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FileList shows the folder's images with a check mark on annotated ones.
// A double tap on a row opens that image.
type FileList struct {
	container *widget.Card
	list      *widget.List
	files     []string
	annotated []bool

	openHandler func(name string)
}

// NewFileList creates a new, empty file list
func NewFileList() *FileList {
	fl := &FileList{}

	fl.list = widget.NewList(
		func() int {
			return len(fl.files)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.CheckButtonIcon()),
				newFileRow(),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			fl.updateRow(id, item)
		},
	)

	fl.container = widget.NewCard("File List", "", fl.list)
	return fl
}

func (fl *FileList) updateRow(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(fl.files) {
		return
	}

	cont := item.(*fyne.Container)
	icon := cont.Objects[0].(*widget.Icon)
	row := cont.Objects[1].(*fileRow)

	if fl.annotated[id] {
		icon.SetResource(theme.CheckButtonCheckedIcon())
	} else {
		icon.SetResource(theme.CheckButtonIcon())
	}

	name := fl.files[id]
	row.SetText(name)
	row.onTapped = func() {
		fl.list.Select(id)
	}
	row.onDoubleTapped = func() {
		if fl.openHandler != nil {
			fl.openHandler(name)
		}
	}
}

// SetOpenHandler sets the handler called with the double-tapped file name
func (fl *FileList) SetOpenHandler(handler func(name string)) {
	fl.openHandler = handler
}

// SetFiles replaces every entry
func (fl *FileList) SetFiles(names []string, annotated []bool) {
	fl.files = append([]string(nil), names...)
	fl.annotated = make([]bool, len(names))
	copy(fl.annotated, annotated)

	fl.list.UnselectAll()
	fl.list.Refresh()
}

// SetAnnotated updates the check mark of one entry
func (fl *FileList) SetAnnotated(index int, annotated bool) {
	if index < 0 || index >= len(fl.annotated) {
		return
	}
	fl.annotated[index] = annotated
	fl.list.RefreshItem(index)
}

// Select highlights an entry and scrolls it into view
func (fl *FileList) Select(index int) {
	if index < 0 || index >= len(fl.files) {
		return
	}
	fl.list.Select(index)
	fl.list.ScrollTo(index)
}

// Len returns the number of entries
func (fl *FileList) Len() int {
	return len(fl.files)
}

// IsAnnotated returns the check state of an entry
func (fl *FileList) IsAnnotated(index int) bool {
	if index < 0 || index >= len(fl.annotated) {
		return false
	}
	return fl.annotated[index]
}

// GetContainer returns the list card
func (fl *FileList) GetContainer() fyne.CanvasObject {
	return fl.container
}

// fileRow is a label that reports single and double taps.
type fileRow struct {
	widget.Label
	onTapped       func()
	onDoubleTapped func()
}

func newFileRow() *fileRow {
	row := &fileRow{}
	row.ExtendBaseWidget(row)
	return row
}

// Tapped implements fyne.Tappable.
func (r *fileRow) Tapped(_ *fyne.PointEvent) {
	if r.onTapped != nil {
		r.onTapped()
	}
}

// DoubleTapped implements fyne.DoubleTappable.
func (r *fileRow) DoubleTapped(_ *fyne.PointEvent) {
	if r.onDoubleTapped != nil {
		r.onDoubleTapped()
	}
}
