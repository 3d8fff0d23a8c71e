package tftlcd

import (
	"errors"

	"github.com/flavioheleno/tftlcd/image565"
)

// fillBlock is the number of pixels emitted per unrolled fill block.
const fillBlock = 64

// ErrNoStream is returned by StreamPixels when a continuation chunk arrives
// while no pixel stream is open.
var ErrNoStream = errors.New("tftlcd: no pixel stream to continue")

// fill writes n >= 1 pixels of color c into the current window.
//
// When both bytes of c are equal, only the first pixel drives the data lines;
// every following byte is a bare write strobe re-latching the value the bus
// still holds.
func (d *Dev) fill(c image565.RGB565, n int) error {
	hi, lo := c.Bytes()
	return d.bus.tx(func() error {
		if err := d.command(d.p.gramWrite); err != nil {
			return err
		}
		if err := d.bus.WriteByte(hi); err != nil {
			return err
		}
		if err := d.bus.WriteByte(lo); err != nil {
			return err
		}
		n--

		emit := func(px int) error {
			for ; px > 0; px-- {
				if err := d.bus.WriteByte(hi); err != nil {
					return err
				}
				if err := d.bus.WriteByte(lo); err != nil {
					return err
				}
			}
			return nil
		}
		if hi == lo {
			emit = func(px int) error {
				return d.bus.strobes(2 * px)
			}
		}
		for blocks := n / fillBlock; blocks > 0; blocks-- {
			if err := emit(fillBlock); err != nil {
				return err
			}
		}
		return emit(n % fillBlock)
	})
}

// StreamPixels writes colors into the current address window.
//
// The first chunk of a transfer must set first, which issues the GRAM write
// command; later chunks continue the same transfer. Any other drawing call
// ends the stream, after which a continuation returns ErrNoStream.
func (d *Dev) StreamPixels(colors []image565.RGB565, first bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	if !first && !d.streaming {
		return ErrNoStream
	}
	err := d.bus.tx(func() error {
		if first {
			if err := d.command(d.p.gramWrite); err != nil {
				return err
			}
		} else if err := d.bus.Data(); err != nil {
			return err
		}
		for _, c := range colors {
			hi, lo := c.Bytes()
			if err := d.bus.WriteByte(hi); err != nil {
				return err
			}
			if err := d.bus.WriteByte(lo); err != nil {
				return err
			}
		}
		return nil
	})
	d.streaming = err == nil
	return err
}

// ReadPixel returns the color of the pixel at (x, y), or 0 when the point
// is off screen.
//
// It is much slower than a write: the data lines are turned around twice.
func (d *Dev) ReadPixel(x, y int) (image565.RGB565, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return 0, nil
	}
	d.streaming = false
	var c image565.RGB565
	err := d.bus.tx(func() error {
		if err := d.putOrigin(x, y); err != nil {
			return err
		}
		if err := d.command(d.p.gramRead); err != nil {
			return err
		}
		return d.bus.WithReadDirection(func() error {
			var buf [3]byte
			for i := 0; i < d.p.readDummies; i++ {
				if _, err := d.bus.ReadByte(); err != nil {
					return err
				}
			}
			n := 3
			if d.p.readPacked {
				n = 2
			}
			for i := 0; i < n; i++ {
				v, err := d.bus.ReadByte()
				if err != nil {
					return err
				}
				buf[i] = v
			}
			if d.p.readPacked {
				c = image565.RGB565(buf[0])<<8 | image565.RGB565(buf[1])
			} else {
				c = image565.Pack(buf[0], buf[1], buf[2])
			}
			return nil
		})
	})
	return c, err
}
