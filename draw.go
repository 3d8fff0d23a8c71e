package tftlcd

import (
	"errors"
	"image"
	"image/draw"

	"github.com/flavioheleno/tftlcd/image565"
	"periph.io/x/conn/v3/display"
)

var _ display.Drawer = (*Dev)(nil)

// Color565 packs 8-bit red, green and blue channels into an RGB565 color.
func Color565(r, g, b uint8) image565.RGB565 {
	return image565.Pack(r, g, b)
}

// SetPixel sets the pixel at (x, y). Off-screen points are ignored.
//
// Only the upper-left window corner is programmed; the lower-right corner
// stays at its full-screen default.
func (d *Dev) SetPixel(x, y int, c image565.RGB565) error {
	if err := d.ready(); err != nil {
		return err
	}
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return nil
	}
	d.streaming = false
	hi, lo := c.Bytes()
	return d.bus.tx(func() error {
		if err := d.putOrigin(x, y); err != nil {
			return err
		}
		if err := d.command(d.p.gramWrite); err != nil {
			return err
		}
		if err := d.bus.WriteByte(hi); err != nil {
			return err
		}
		return d.bus.WriteByte(lo)
	})
}

// DrawHLine draws a horizontal run of length pixels starting at (x, y),
// clipped to the screen.
func (d *Dev) DrawHLine(x, y, length int, c image565.RGB565) error {
	if err := d.ready(); err != nil {
		return err
	}
	x2 := x + length - 1
	if length <= 0 || y < 0 || y >= d.h || x >= d.w || x2 < 0 {
		return nil
	}
	if x < 0 {
		x = 0
	}
	if x2 >= d.w {
		x2 = d.w - 1
	}
	return d.fillWindow(x, y, x2, y, c)
}

// DrawVLine draws a vertical run of length pixels starting at (x, y),
// clipped to the screen.
func (d *Dev) DrawVLine(x, y, length int, c image565.RGB565) error {
	if err := d.ready(); err != nil {
		return err
	}
	y2 := y + length - 1
	if length <= 0 || x < 0 || x >= d.w || y >= d.h || y2 < 0 {
		return nil
	}
	if y < 0 {
		y = 0
	}
	if y2 >= d.h {
		y2 = d.h - 1
	}
	return d.fillWindow(x, y, x, y2, c)
}

// FillRect fills the w×h rectangle at (x, y), clipped to the screen.
func (d *Dev) FillRect(x, y, w, h int, c image565.RGB565) error {
	if err := d.ready(); err != nil {
		return err
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(d.Bounds())
	if w <= 0 || h <= 0 || r.Empty() {
		return nil
	}
	return d.fillWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1, c)
}

// FillScreen fills the whole screen.
func (d *Dev) FillScreen(c image565.RGB565) error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.fillWindow(0, 0, d.w-1, d.h-1, c)
}

// fillWindow fills the inclusive rectangle and restores the default
// lower-right corner.
func (d *Dev) fillWindow(x1, y1, x2, y2 int, c image565.RGB565) error {
	d.streaming = false
	if err := d.setWindow(x1, y1, x2, y2); err != nil {
		return err
	}
	if err := d.fill(c, (x2-x1+1)*(y2-y1+1)); err != nil {
		return err
	}
	return d.resetLowerRight()
}

// Draw draws src onto the display. It implements display.Drawer.
//
// The destination is clipped to the display, then the covered region is
// streamed one row per chunk.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if err := d.ready(); err != nil {
		return err
	}
	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	// Convert only when the source is not already RGB565.
	img, ok := src.(*image565.Image)
	if !ok {
		img = image565.NewImage(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(img, img.Rect, src, sp, draw.Src)
		sp = image.Point{}
	}

	if err := d.SetAddrWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1); err != nil {
		return err
	}
	row := make([]image565.RGB565, r.Dx())
	for y := 0; y < r.Dy(); y++ {
		for x := range row {
			row[x] = img.RGB565At(sp.X+x, sp.Y+y)
		}
		if err := d.StreamPixels(row, y == 0); err != nil {
			return err
		}
	}
	d.streaming = false
	return d.resetLowerRight()
}

// Write writes a full frame of big-endian RGB565 pixels, as laid out by
// image565.Image for the display bounds.
func (d *Dev) Write(pixels []byte) (int, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	if len(pixels) != 2*d.w*d.h {
		return 0, errors.New("tftlcd: invalid buffer size")
	}
	img := &image565.Image{Pix: pixels, Stride: 2 * d.w, Rect: d.Bounds()}
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		return 0, err
	}
	return len(pixels), nil
}
