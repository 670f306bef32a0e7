package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderRow(t *testing.T, fl *FileList, id int) (*widget.Icon, *fileRow) {
	t.Helper()
	item := fl.list.CreateItem()
	fl.list.UpdateItem(id, item)

	cont, ok := item.(*fyne.Container)
	require.True(t, ok)
	return cont.Objects[0].(*widget.Icon), cont.Objects[1].(*fileRow)
}

func TestFileList_RowsReflectAnnotation(t *testing.T) {
	test.NewTempApp(t)
	fl := NewFileList()
	fl.SetFiles([]string{"a.png", "b.jpg"}, []bool{false, true})

	assert.Equal(t, 2, fl.Len())

	icon, row := renderRow(t, fl, 0)
	assert.Equal(t, "a.png", row.Text)
	assert.Equal(t, theme.CheckButtonIcon().Name(), icon.Resource.Name())

	icon, row = renderRow(t, fl, 1)
	assert.Equal(t, "b.jpg", row.Text)
	assert.Equal(t, theme.CheckButtonCheckedIcon().Name(), icon.Resource.Name())

	fl.SetAnnotated(0, true)
	assert.True(t, fl.IsAnnotated(0))
	icon, _ = renderRow(t, fl, 0)
	assert.Equal(t, theme.CheckButtonCheckedIcon().Name(), icon.Resource.Name())
}

func TestFileList_DoubleTapOpensFile(t *testing.T) {
	test.NewTempApp(t)
	fl := NewFileList()
	fl.SetFiles([]string{"a.png", "b.jpg", "c.bmp"}, nil)

	var opened []string
	fl.SetOpenHandler(func(name string) { opened = append(opened, name) })

	_, row := renderRow(t, fl, 2)
	row.DoubleTapped(&fyne.PointEvent{})

	assert.Equal(t, []string{"c.bmp"}, opened)
}

func TestFileList_SetFilesReplaces(t *testing.T) {
	test.NewTempApp(t)
	fl := NewFileList()
	fl.SetFiles([]string{"a.png", "b.jpg"}, []bool{true, true})
	fl.SetFiles([]string{"z.png"}, nil)

	assert.Equal(t, 1, fl.Len())
	assert.False(t, fl.IsAnnotated(0))
	assert.False(t, fl.IsAnnotated(1))

	fl.SetAnnotated(5, true)
	fl.Select(5)
}
