// Package image565 provides a packed RGB565 color and image format.
//
// Encoding is lossy: Pack keeps the top 5, 6 and 5 bits of each channel.
// Converting a color that already sits on the 5-6-5 grid is exact.
package image565

import (
	"image"
	"image/color"
)

// RGB565 is a packed 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 uint16

// Common colors.
const (
	Black   RGB565 = 0x0000
	Blue    RGB565 = 0x001F
	Red     RGB565 = 0xF800
	Green   RGB565 = 0x07E0
	Cyan    RGB565 = 0x07FF
	Magenta RGB565 = 0xF81F
	Yellow  RGB565 = 0xFFE0
	White   RGB565 = 0xFFFF
)

// Pack packs 8-bit red, green and blue channels into an RGB565 color.
// The low 3, 2 and 3 bits of each channel are discarded.
func Pack(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3))
}

// Channels returns the 8-bit channels of c with the discarded low bits
// cleared. Pack(c.Channels()) == c for every c.
func (c RGB565) Channels() (r, g, b uint8) {
	return uint8(c>>8) & 0xF8, uint8(c>>3) & 0xFC, uint8(c << 3)
}

// Bytes returns the high and low bytes of c in bus order.
func (c RGB565) Bytes() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}

// RGBA implements color.Color.
//
// Each channel is widened by replicating its top bits into the vacated low
// bits, so full intensity maps to 0xFFFF.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to RGB565.
var Model = color.ModelFunc(toRGB565)

// Image is an RGB565 image stored big-endian, 2 bytes per pixel, in the
// order the controller consumes it.
type Image struct {
	Pix    []byte          // Pixel data (hi, lo per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	i := p.PixOffset(x, y)
	return RGB565(p.Pix[i])<<8 | RGB565(p.Pix[i+1])
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(RGB565))
}

// SetRGB565 sets the pixel at (x, y) without color conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i], p.Pix[i+1] = c.Bytes()
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

// Opaque reports whether the image is fully opaque, which RGB565 always is.
func (p *Image) Opaque() bool {
	return true
}
