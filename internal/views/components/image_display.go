package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ImageAreaWidth  = 860
	ImageAreaHeight = 500
)

// ImageDisplay shows the current image scaled to fit, keeping its aspect ratio
type ImageDisplay struct {
	container   *fyne.Container
	image       *canvas.Image
	placeholder image.Image
	hasImage    bool
}

// NewImageDisplay creates a new image display component
func NewImageDisplay() *ImageDisplay {
	display := &ImageDisplay{
		placeholder: createPlaceholderImage(),
	}

	display.image = canvas.NewImageFromImage(display.placeholder)
	display.image.FillMode = canvas.ImageFillContain
	display.image.ScaleMode = canvas.ImageScaleSmooth
	display.image.SetMinSize(fyne.NewSize(ImageAreaWidth, ImageAreaHeight))

	background := canvas.NewRectangle(color.RGBA{R: 252, G: 252, B: 252, A: 255})
	display.container = container.NewStack(
		background,
		container.NewPadded(display.image),
	)

	return display
}

// createPlaceholderImage returns a light gray frame shown before any image is loaded
func createPlaceholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, ImageAreaWidth, ImageAreaHeight))

	lightGray := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	for y := 0; y < ImageAreaHeight; y++ {
		for x := 0; x < ImageAreaWidth; x++ {
			img.Set(x, y, lightGray)
		}
	}

	borderColor := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for x := 0; x < ImageAreaWidth; x++ {
		img.Set(x, 0, borderColor)
		img.Set(x, ImageAreaHeight-1, borderColor)
	}
	for y := 0; y < ImageAreaHeight; y++ {
		img.Set(0, y, borderColor)
		img.Set(ImageAreaWidth-1, y, borderColor)
	}

	return img
}

// SetImage displays img, or the placeholder when img is nil
func (id *ImageDisplay) SetImage(img image.Image) {
	if img != nil {
		id.image.Image = img
		id.hasImage = true
	} else {
		id.image.Image = id.placeholder
		id.hasImage = false
	}
	id.image.Refresh()
}

// HasImage returns true if a real image is displayed
func (id *ImageDisplay) HasImage() bool {
	return id.hasImage
}

// GetContainer returns the main container
func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}
