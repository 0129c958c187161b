package lensdemo

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Color is an RGB color with components nominally in [0, 1].
type Color struct {
	R, G, B float32
}

// RGB creates a color from its components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Gray creates a color with all three components set to v.
func Gray(v float32) Color {
	return Color{R: v, G: v, B: v}
}

// Image is a rectangular grid of RGB pixels stored as float32.
// Dimensions are fixed for the life of the image.
type Image struct {
	width  int
	height int
	data   []float32 // RGB, 3 floats per pixel
}

// NewImage creates a black image with the given dimensions.
// Negative dimensions are treated as zero.
func NewImage(width, height int) *Image {
	width, height = max(width, 0), max(height, 0)
	return &Image{
		width:  width,
		height: height,
		data:   make([]float32, width*height*3),
	}
}

// Width returns the width of the image.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height of the image.
func (m *Image) Height() int {
	return m.height
}

// Data returns the raw pixel data, 3 floats per pixel in row-major order.
func (m *Image) Data() []float32 {
	return m.data
}

// Set sets the color of a single pixel. Out-of-bounds writes are ignored.
func (m *Image) Set(x, y int, c Color) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := (y*m.width + x) * 3
	m.data[i+0] = c.R
	m.data[i+1] = c.G
	m.data[i+2] = c.B
}

// Get returns the color of a single pixel, or black when out of bounds.
func (m *Image) Get(x, y int) Color {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Color{}
	}
	i := (y*m.width + x) * 3
	return Color{R: m.data[i+0], G: m.data[i+1], B: m.data[i+2]}
}

// FillRect fills the half-open rectangle [x0,x1)×[y0,y1), clipped to the image.
func (m *Image) FillRect(x0, y0, x1, y1 int, c Color) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, m.width), min(y1, m.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.Set(x, y, c)
		}
	}
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	out := &Image{width: m.width, height: m.height, data: make([]float32, len(m.data))}
	copy(out.data, m.data)
	return out
}

// ToRGBA quantizes the image to 8 bits per channel.
// Components are clipped to [0, 1], scaled by 255 and truncated.
func (m *Image) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for p := 0; p < m.width*m.height; p++ {
		img.Pix[p*4+0] = quantize(m.data[p*3+0])
		img.Pix[p*4+1] = quantize(m.data[p*3+1])
		img.Pix[p*4+2] = quantize(m.data[p*3+2])
		img.Pix[p*4+3] = 0xff
	}
	return img
}

// FromImage converts any image to an Image.
// Translucent pixels are flattened over white.
func FromImage(img image.Image) *Image {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Opaque() {
		return fromRGBA(rgba)
	}

	bounds := img.Bounds()
	out := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			a := float32(c.A) / 255
			out.Set(x, y, Color{
				R: float32(c.R)/255*a + (1 - a),
				G: float32(c.G)/255*a + (1 - a),
				B: float32(c.B)/255*a + (1 - a),
			})
		}
	}
	return out
}

// fromRGBA converts an opaque 8-bit image back to normalized floats.
func fromRGBA(img *image.RGBA) *Image {
	bounds := img.Bounds()
	out := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			i := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			j := (y*out.width + x) * 3
			out.data[j+0] = float32(img.Pix[i+0]) / 255
			out.data[j+1] = float32(img.Pix[i+1]) / 255
			out.data[j+2] = float32(img.Pix[i+2]) / 255
		}
	}
	return out
}

// SavePNG writes the image to path as an 8-bit RGB PNG.
func (m *Image) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // output path comes from configuration
	if err != nil {
		return fmt.Errorf("lensdemo: save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("lensdemo: save %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, m.ToRGBA()); err != nil {
		return fmt.Errorf("lensdemo: encode %s: %w", path, err)
	}
	return nil
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	c := m.Get(x, y)
	return color.RGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: 0xff}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// quantize maps a normalized component to 8 bits, truncating.
func quantize(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v * 255)
}
