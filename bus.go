package tftlcd

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

var _ conn.Resource = (*Bus)(nil)

// Direction is the direction of the 8-bit data path.
type Direction uint8

const (
	// Write drives the data lines from the host. It is the resting direction.
	Write Direction = iota
	// Read samples the data lines driven by the controller.
	Read
)

func (d Direction) String() string {
	if d == Read {
		return "read"
	}
	return "write"
}

// ErrWrongDirection is returned when a transfer is attempted while the bus is
// in the other direction.
var ErrWrongDirection = errors.New("tftlcd: transfer in wrong bus direction")

// Pins is the GPIO wiring of the parallel bus.
//
// All control lines are active low. Either D or Group must be set: Group
// drives all eight data lines with a single call, which is much faster on
// hosts that support it.
type Pins struct {
	CS gpio.PinOut // Chip select
	CD gpio.PinOut // Command (low) / data (high)
	WR gpio.PinOut // Write strobe
	RD gpio.PinOut // Read strobe

	D     [8]gpio.PinIO // Data lines, D[0] is the least significant bit
	Group gpio.Group    // Alternative to D: the first 8 pins are D0..D7
}

// lines is the 8-bit data path.
type lines interface {
	drive(v byte) error
	sample() (byte, error)
	input() error
	output() error
}

// Bus is an 8-bit parallel command/data bus with discrete CS, C/D, WR and RD
// lines.
//
// Bus is not safe for concurrent use.
type Bus struct {
	cs, cd, wr, rd gpio.PinOut
	data           lines
	dir            Direction
}

// NewBus configures the pins of p and returns the bus in its idle state:
// deselected, data mode, both strobes released, data lines driven.
func NewBus(p *Pins) (*Bus, error) {
	if p == nil || p.CS == nil || p.CD == nil || p.WR == nil || p.RD == nil {
		return nil, errors.New("tftlcd: CS, CD, WR and RD pins are required")
	}
	b := &Bus{cs: p.CS, cd: p.CD, wr: p.WR, rd: p.RD}
	if p.Group != nil {
		l, err := newGroupLines(p.Group)
		if err != nil {
			return nil, err
		}
		b.data = l
	} else {
		l := &pinLines{}
		for i, d := range p.D {
			if d == nil {
				return nil, fmt.Errorf("tftlcd: data line D%d is missing", i)
			}
			l[i] = d
		}
		b.data = l
	}
	for _, c := range []gpio.PinOut{b.cs, b.cd, b.wr, b.rd} {
		if err := c.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("tftlcd: failed to idle %s: %w", c, err)
		}
	}
	if err := b.data.output(); err != nil {
		return nil, err
	}
	return b, nil
}

// Direction returns the current data path direction.
func (b *Bus) Direction() Direction {
	return b.dir
}

// SetDirection reconfigures the data lines as outputs (Write) or inputs
// (Read). It is expensive compared to a byte transfer; batch transfers of one
// direction together.
func (b *Bus) SetDirection(d Direction) error {
	if d == b.dir {
		return nil
	}
	var err error
	if d == Read {
		err = b.data.input()
	} else {
		err = b.data.output()
	}
	if err != nil {
		return err
	}
	b.dir = d
	return nil
}

// WithReadDirection switches the bus to Read, runs fn, then always restores
// Write.
func (b *Bus) WithReadDirection(fn func() error) error {
	if err := b.SetDirection(Read); err != nil {
		return err
	}
	err := fn()
	if werr := b.SetDirection(Write); err == nil {
		err = werr
	}
	return err
}

// Select asserts chip select.
func (b *Bus) Select() error {
	return b.cs.Out(gpio.Low)
}

// Deselect releases chip select.
func (b *Bus) Deselect() error {
	return b.cs.Out(gpio.High)
}

// Command sets the C/D line so that following bytes are commands.
func (b *Bus) Command() error {
	return b.cd.Out(gpio.Low)
}

// Data sets the C/D line so that following bytes are data.
func (b *Bus) Data() error {
	return b.cd.Out(gpio.High)
}

// WriteByte drives v on the data lines and latches it with a write strobe.
func (b *Bus) WriteByte(v byte) error {
	if b.dir != Write {
		return ErrWrongDirection
	}
	if err := b.data.drive(v); err != nil {
		return err
	}
	return b.strobe()
}

// Strobe pulses the write strobe without driving new data. The controller
// latches whatever byte the data lines still hold from the last WriteByte.
func (b *Bus) Strobe() error {
	if b.dir != Write {
		return ErrWrongDirection
	}
	return b.strobe()
}

// strobes pulses the write strobe n times.
func (b *Bus) strobes(n int) error {
	if b.dir != Write {
		return ErrWrongDirection
	}
	for ; n > 0; n-- {
		if err := b.strobe(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) strobe() error {
	if err := b.wr.Out(gpio.Low); err != nil {
		return err
	}
	return b.wr.Out(gpio.High)
}

// ReadByte pulses the read strobe and samples the data lines.
func (b *Bus) ReadByte() (byte, error) {
	if b.dir != Read {
		return 0, ErrWrongDirection
	}
	if err := b.rd.Out(gpio.Low); err != nil {
		return 0, err
	}
	v, err := b.data.sample()
	if err != nil {
		return 0, err
	}
	return v, b.rd.Out(gpio.High)
}

// tx runs fn with the chip selected and deselects it afterwards, even on
// error.
func (b *Bus) tx(fn func() error) error {
	if err := b.Select(); err != nil {
		return err
	}
	err := fn()
	if derr := b.Deselect(); err == nil {
		err = derr
	}
	return err
}

// Halt releases the bus: write direction, chip deselected.
func (b *Bus) Halt() error {
	if err := b.SetDirection(Write); err != nil {
		return err
	}
	return b.Deselect()
}

// String returns a string representation of the bus.
func (b *Bus) String() string {
	return fmt.Sprintf("tftlcd.Bus{cs=%s, cd=%s, wr=%s, rd=%s, %s}", b.cs, b.cd, b.wr, b.rd, b.dir)
}

// pinLines drives the data path one GPIO at a time.
type pinLines [8]gpio.PinIO

func (l *pinLines) drive(v byte) error {
	for i, p := range l {
		if err := p.Out(gpio.Level(v&(1<<uint(i)) != 0)); err != nil {
			return err
		}
	}
	return nil
}

func (l *pinLines) sample() (byte, error) {
	var v byte
	for i, p := range l {
		if p.Read() == gpio.High {
			v |= 1 << uint(i)
		}
	}
	return v, nil
}

func (l *pinLines) input() error {
	for _, p := range l {
		if err := p.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			return fmt.Errorf("tftlcd: failed to set %s as input: %w", p, err)
		}
	}
	return nil
}

func (l *pinLines) output() error {
	for _, p := range l {
		if err := p.Out(gpio.Low); err != nil {
			return fmt.Errorf("tftlcd: failed to set %s as output: %w", p, err)
		}
	}
	return nil
}

// groupLines drives the data path through a gpio.Group.
type groupLines struct {
	g    gpio.Group
	pins [8]gpio.PinIO
}

const dataMask gpio.GPIOValue = 0xFF

func newGroupLines(g gpio.Group) (*groupLines, error) {
	pins := g.Pins()
	if len(pins) < 8 {
		return nil, fmt.Errorf("tftlcd: group %s has %d pins, need 8", g, len(pins))
	}
	l := &groupLines{g: g}
	for i := range l.pins {
		p, ok := pins[i].(gpio.PinIO)
		if !ok {
			return nil, fmt.Errorf("tftlcd: group pin %s is not a gpio.PinIO", pins[i])
		}
		l.pins[i] = p
	}
	return l, nil
}

func (l *groupLines) drive(v byte) error {
	return l.g.Out(gpio.GPIOValue(v), dataMask)
}

func (l *groupLines) sample() (byte, error) {
	v, err := l.g.Read(dataMask)
	return byte(v), err
}

func (l *groupLines) input() error {
	for _, p := range l.pins {
		if err := p.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			return fmt.Errorf("tftlcd: failed to set %s as input: %w", p, err)
		}
	}
	return nil
}

func (l *groupLines) output() error {
	return l.g.Out(0, dataMask)
}
