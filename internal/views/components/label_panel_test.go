package components

import (
	"testing"

	"label-tool/internal/config"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLabels() []config.Label {
	return []config.Label{
		{Name: "cat", ID: 0},
		{Name: "dog", ID: 5},
	}
}

func TestLabelPanel_TapReportsID(t *testing.T) {
	test.NewTempApp(t)
	panel := NewLabelPanel(testLabels())

	var got []int
	panel.SetLabelHandler(func(id int) { got = append(got, id) })

	button, ok := panel.Button(5)
	require.True(t, ok)
	assert.Equal(t, "dog", button.Text)

	test.Tap(button)
	assert.Equal(t, []int{5}, got)
}

func TestLabelPanel_Highlight(t *testing.T) {
	test.NewTempApp(t)
	panel := NewLabelPanel(testLabels())
	cat, _ := panel.Button(0)
	dog, _ := panel.Button(5)

	panel.Highlight(5)
	assert.Equal(t, widget.DangerImportance, dog.Importance)
	assert.Equal(t, widget.MediumImportance, cat.Importance)

	panel.Highlight(0)
	assert.Equal(t, widget.DangerImportance, cat.Importance)
	assert.Equal(t, widget.MediumImportance, dog.Importance)

	id, ok := panel.Highlighted()
	assert.True(t, ok)
	assert.Equal(t, 0, id)

	panel.ClearHighlight()
	assert.Equal(t, widget.MediumImportance, cat.Importance)
	_, ok = panel.Highlighted()
	assert.False(t, ok)
}

func TestLabelPanel_HighlightUnknownID(t *testing.T) {
	test.NewTempApp(t)
	panel := NewLabelPanel(testLabels())

	panel.Highlight(0)
	panel.Highlight(42)

	cat, _ := panel.Button(0)
	assert.Equal(t, widget.MediumImportance, cat.Importance)
	_, ok := panel.Highlighted()
	assert.False(t, ok)
}
