package views

import (
	"errors"
	"image"
	"testing"

	"label-tool/internal/config"
	"label-tool/internal/controllers"
	"label-tool/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ controllers.View = (*MainView)(nil)

func newTestView(t *testing.T) (*MainView, fyne.Window) {
	t.Helper()
	test.NewTempApp(t)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	labels := []config.Label{{Name: "ok", ID: 0}, {Name: "defect", ID: 1}}
	return NewMainView(window, labels, logger.NewNop()), window
}

func TestMainView_NavigationKeys(t *testing.T) {
	view, window := newTestView(t)

	var calls []string
	view.SetPreviousHandler(func() { calls = append(calls, "previous") })
	view.SetNextHandler(func() { calls = append(calls, "next") })

	onKey := window.Canvas().OnTypedKey()
	require.NotNil(t, onKey)
	onKey(&fyne.KeyEvent{Name: fyne.KeyD})
	onKey(&fyne.KeyEvent{Name: fyne.KeyA})
	onKey(&fyne.KeyEvent{Name: fyne.KeyS})

	assert.Equal(t, []string{"next", "previous"}, calls)
}

func TestMainView_LabelButtonsReachHandler(t *testing.T) {
	view, _ := newTestView(t)

	var got []int
	view.SetLabelHandler(func(id int) { got = append(got, id) })

	button, ok := view.labelPanel.Button(1)
	require.True(t, ok)
	test.Tap(button)

	assert.Equal(t, []int{1}, got)
}

func TestMainView_ControllerUpdates(t *testing.T) {
	view, window := newTestView(t)

	view.SetFiles([]string{"a.png", "b.png"}, []bool{true, false})
	view.SetAnnotated(1, true)
	view.SelectFile(1)
	view.ShowImage(image.NewGray(image.Rect(0, 0, 3, 3)))
	view.HighlightLabel(1)
	view.SetWindowTitle("/data")
	view.UpdateStatus("2/2  b.png  (2 annotated)")

	assert.Equal(t, 2, view.fileList.Len())
	assert.True(t, view.fileList.IsAnnotated(1))
	assert.True(t, view.imageDisplay.HasImage())
	id, ok := view.labelPanel.Highlighted()
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, "/data", window.Title())
	assert.Equal(t, "2/2  b.png  (2 annotated)", view.statusBar.GetStatus())

	view.ClearHighlight()
	view.ShowImage(nil)
	_, ok = view.labelPanel.Highlighted()
	assert.False(t, ok)
	assert.False(t, view.imageDisplay.HasImage())
}

func TestMainView_Dialogs(t *testing.T) {
	view, window := newTestView(t)

	view.ShowInfo("warning", "Finished!!")
	assert.Len(t, window.Canvas().Overlays().List(), 1)

	view.ShowWarning("Warning", errors.New("Invalid image"))
	assert.Len(t, window.Canvas().Overlays().List(), 2)
	assert.NotNil(t, window.Canvas().Overlays().Top())
}
