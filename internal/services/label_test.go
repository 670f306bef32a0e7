package services

import (
	"os"
	"path/filepath"
	"testing"

	"label-tool/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFileName(t *testing.T) {
	assert.Equal(t, "cat.json", LabelFileName("cat.jpg"))
	assert.Equal(t, "img.001.json", LabelFileName("img.001.png"))
	assert.Equal(t, "noext.json", LabelFileName("noext"))
}

func TestLabelStore_WriteRead(t *testing.T) {
	dir := t.TempDir()
	store := NewLabelStore(logger.NewNop())

	assert.False(t, store.Exists(dir, "a.png"))

	require.NoError(t, store.Write(dir, "a.png", 3))
	assert.True(t, store.Exists(dir, "a.png"))

	data, err := os.ReadFile(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, "3", string(data))

	id, err := store.Read(dir, "a.png")
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestLabelStore_WriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewLabelStore(logger.NewNop())

	require.NoError(t, store.Write(dir, "a.png", 1))
	require.NoError(t, store.Write(dir, "a.png", 2))

	id, err := store.Read(dir, "a.png")
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestLabelStore_WriteFailure(t *testing.T) {
	store := NewLabelStore(logger.NewNop())

	err := store.Write(filepath.Join(t.TempDir(), "missing"), "a.png", 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLabelStore_ReadIfPresent(t *testing.T) {
	dir := t.TempDir()
	store := NewLabelStore(logger.NewNop())

	_, err := store.ReadIfPresent(dir, "a.png")
	assert.ErrorIs(t, err, ErrNoLabel)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`"dog"`), 0644))
	_, err = store.ReadIfPresent(dir, "b.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoLabel)
}
