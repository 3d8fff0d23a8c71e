package tftlcd

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/flavioheleno/tftlcd/image565"
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/gpio"
)

var (
	// ErrHalted is returned by drawing calls after Halt.
	ErrHalted = errors.New("tftlcd: halted")
	// ErrNotRunning is returned by drawing calls before Begin.
	ErrNotRunning = errors.New("tftlcd: not initialized, call Begin first")
)

// Rotation is a clockwise display orientation.
type Rotation uint8

const (
	Rotate0   Rotation = iota // Portrait
	Rotate90                  // Landscape
	Rotate180                 // Portrait, upside down
	Rotate270                 // Landscape, upside down
)

// Opts is the configuration for the display.
type Opts struct {
	// Controller selects the register set and initialization sequence.
	Controller Controller

	// Native (unrotated) dimensions in pixels. Zero uses the controller
	// default: 240x320 for HX8347G and ILI932x, 320x480 for HX8357D.
	W int
	H int

	// Optional hardware reset pin
	RST gpio.PinOut

	// Clock used for all hardware delays. Nil uses the real clock.
	Clock clockwork.Clock
}

// Dev is the device handle for the display.
//
// Dev is not safe for concurrent use; callers that draw from several
// goroutines must serialize access.
type Dev struct {
	regs
	p   *profile
	rst gpio.PinOut

	// Native geometry
	nw, nh int
	// Logical geometry for the current rotation
	w, h int
	rot  Rotation

	// State
	running   bool
	halted    bool
	streaming bool
}

// New creates a device for the controller selected in opts on bus b.
//
// The display is not touched beyond idling the bus; call Begin to reset and
// initialize it.
func New(b *Bus, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("tftlcd: bus is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	if int(opts.Controller) >= len(profiles) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownController, opts.Controller)
	}
	p := profiles[opts.Controller]

	w, h := opts.W, opts.H
	if w == 0 {
		w = p.w
	}
	if h == 0 {
		h = p.h
	}
	if w < 0 || w > 0xFFFF || h < 0 || h > 0xFFFF {
		return nil, errors.New("tftlcd: width and height must be between 1 and 65535")
	}

	clk := opts.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	d := &Dev{
		regs: regs{bus: b, clk: clk, wide: p.wideRegs},
		p:    p,
		rst:  opts.RST,
		nw:   w,
		nh:   h,
		w:    w,
		h:    h,
	}
	if d.rst != nil {
		if err := d.rst.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("tftlcd: failed to idle RST: %w", err)
		}
	}
	return d, nil
}

// Detect identifies the controller on b, then creates a device for it.
// opts.Controller is ignored.
func Detect(b *Bus, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("tftlcd: bus is required")
	}
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	r := regs{bus: b, clk: o.Clock}
	id, err := r.identify()
	if err != nil {
		return nil, err
	}
	c, err := ProfileFor(id)
	if err != nil {
		return nil, err
	}
	o.Controller = c
	return New(b, &o)
}

// Reset resets the controller and resynchronizes its byte-pair state
// machine.
//
// If a reset pin was provided it is pulsed low for 2ms; otherwise the
// controller's software reset command is sent, if it has one. Four 0x00
// command bytes follow, which some controllers need after an unclean reset.
func (d *Dev) Reset() error {
	if err := d.bus.SetDirection(Write); err != nil {
		return err
	}
	if err := d.bus.Deselect(); err != nil {
		return err
	}
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("tftlcd: failed to pull RST low: %w", err)
		}
		d.clk.Sleep(2 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("tftlcd: failed to pull RST high: %w", err)
		}
	} else {
		for _, c := range d.p.softReset {
			if err := d.writeReg(c); err != nil {
				return err
			}
		}
	}
	return d.bus.tx(func() error {
		if err := d.bus.Command(); err != nil {
			return err
		}
		if err := d.bus.WriteByte(0x00); err != nil {
			return err
		}
		return d.bus.strobes(3)
	})
}

// Begin resets the controller, replays its initialization table and
// applies the current rotation.
func (d *Dev) Begin() error {
	if d.halted {
		return ErrHalted
	}
	if err := d.Reset(); err != nil {
		return err
	}
	d.clk.Sleep(200 * time.Millisecond)
	for _, s := range d.p.init {
		if s.delay != 0 {
			d.clk.Sleep(s.delay)
			continue
		}
		if err := d.writeReg(s.reg, s.data...); err != nil {
			return fmt.Errorf("tftlcd: init register 0x%02X: %w", s.reg, err)
		}
	}
	d.running = true
	return d.SetRotation(d.rot)
}

// Identify runs the controller detection protocol and returns the raw ID.
//
// Detection is best effort: a missing or unsupported panel yields a
// meaningless ID rather than an error. Use ProfileFor to map it.
func (d *Dev) Identify() (uint16, error) {
	r := regs{bus: d.bus, clk: d.clk}
	return r.identify()
}

// SetRotation sets the display orientation and restores the default
// full-screen lower-right window corner.
func (d *Dev) SetRotation(rot Rotation) error {
	if err := d.ready(); err != nil {
		return err
	}
	rot &= 3
	d.rot = rot
	d.w, d.h = d.nw, d.nh
	if rot == Rotate90 || rot == Rotate270 {
		d.w, d.h = d.nh, d.nw
	}
	d.streaming = false
	v := d.p.rotations[rot]
	var err error
	if d.p.wideRot {
		err = d.writeReg16(d.p.memAccess, v)
	} else {
		err = d.writeReg(d.p.memAccess, byte(v))
	}
	if err != nil {
		return err
	}
	return d.resetLowerRight()
}

// Rotation returns the current orientation.
func (d *Dev) Rotation() Rotation {
	return d.rot
}

// Controller returns the controller the device was created for.
func (d *Dev) Controller() Controller {
	for c, p := range profiles {
		if p == d.p {
			return Controller(c)
		}
	}
	return 0
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds returns the display bounds in the current rotation.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.w, d.h)
}

// Halt turns the display off.
// After calling Halt, drawing calls fail until a new device is created.
func (d *Dev) Halt() error {
	d.halted = true
	d.streaming = false
	if !d.running {
		return d.bus.Halt()
	}
	if err := d.writeReg(d.p.off.reg, d.p.off.data...); err != nil {
		return err
	}
	return d.bus.Halt()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tftlcd.Dev{%s %dx%d}", d.p.name, d.w, d.h)
}

// ready reports whether drawing calls may touch the bus.
func (d *Dev) ready() error {
	if d.halted {
		return ErrHalted
	}
	if !d.running {
		return ErrNotRunning
	}
	return nil
}
