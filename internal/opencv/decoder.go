// Package opencv decodes labeling images through OpenCV.
package opencv

import (
	"fmt"
	"image"
	"image/color"

	"label-tool/internal/services"

	"gocv.io/x/gocv"
)

// Decoder implements services.ImageDecoder with gocv.IMDecode, which covers
// every format the labeling folder accepts (jpg, jpeg, png, bmp).
type Decoder struct{}

// NewDecoder creates a new OpenCV decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes encoded image bytes into an RGBA or Gray image.
func (d *Decoder) Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, services.ErrInvalidImage
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrInvalidImage, err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, services.ErrInvalidImage
	}

	return MatToImage(mat)
}

// MatToImage converts an 8-bit BGR or single-channel Mat to a Go image
func MatToImage(mat gocv.Mat) (image.Image, error) {
	if mat.Type() != gocv.MatTypeCV8UC1 && mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unsupported Mat type: %v", mat.Type())
	}

	rows := mat.Rows()
	cols := mat.Cols()

	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("Mat data access failed: %w", err)
	}

	switch mat.Channels() {
	case 1:
		img := image.NewGray(image.Rect(0, 0, cols, rows))
		copy(img.Pix, data)
		return img, nil
	case 3:
		return bgrToRGBA(data, rows, cols), nil
	default:
		return nil, fmt.Errorf("unsupported channel count: %d", mat.Channels())
	}
}

// bgrToRGBA converts packed BGR bytes to an RGBA image
func bgrToRGBA(data []uint8, rows, cols int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := (y*cols + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: data[i+2], G: data[i+1], B: data[i], A: 255})
		}
	}

	return img
}
