package icer

import (
	"image"
	"image/color"
)

// Image is a decoded ICER image: Height rows of Width pixels, each pixel
// Channels bytes wide (3 for interleaved RGB, 1 for grayscale).
// Image implements image.Image.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// newImage assembles the result from converted pixels using the actual
// reconstructed dimensions.
func newImage(pix []uint8, width, height, channels int) (*Image, error) {
	if len(pix) != width*height*channels {
		return nil, statusError(StageConvert, StatusOutputBufTooSmall)
	}
	return &Image{Width: width, Height: height, Channels: channels, Pix: pix}, nil
}

// Stride returns the distance in bytes between vertically adjacent pixels.
func (m *Image) Stride() int {
	return m.Width * m.Channels
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (m *Image) PixOffset(x, y int) int {
	return y*m.Stride() + x*m.Channels
}

// Row returns the bytes of row y.
func (m *Image) Row(y int) []uint8 {
	if y < 0 || y >= m.Height {
		return nil
	}
	off := y * m.Stride()
	return m.Pix[off : off+m.Stride()]
}

// Gray reports whether the image holds a single channel.
func (m *Image) Gray() bool {
	return m.Channels == 1
}

func (m *Image) ColorModel() color.Model {
	if m.Gray() {
		return color.GrayModel
	}
	return color.RGBAModel
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

func (m *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		if m.Gray() {
			return color.Gray{}
		}
		return color.RGBA{}
	}
	i := m.PixOffset(x, y)
	if m.Gray() {
		return color.Gray{Y: m.Pix[i]}
	}
	return color.RGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: 255}
}

// ToStdlib copies the image into the closest standard library type:
// *image.Gray for grayscale, *image.RGBA otherwise.
func (m *Image) ToStdlib() image.Image {
	if m.Gray() {
		img := image.NewGray(m.Bounds())
		for y := range m.Height {
			copy(img.Pix[y*img.Stride:], m.Row(y))
		}
		return img
	}

	img := image.NewRGBA(m.Bounds())
	for y := range m.Height {
		for x := range m.Width {
			src := m.PixOffset(x, y)
			dst := img.PixOffset(x, y)
			img.Pix[dst+0] = m.Pix[src+0]
			img.Pix[dst+1] = m.Pix[src+1]
			img.Pix[dst+2] = m.Pix[src+2]
			img.Pix[dst+3] = 255
		}
	}
	return img
}
