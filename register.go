package tftlcd

import (
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// settleDelay precedes each data byte of registers wider than 16 bits.
	settleDelay = 10 * time.Microsecond
	// readDelay lets the controller turn the bus around before a read.
	readDelay = 50 * time.Microsecond
)

// regs composes bus transfers into register accesses.
type regs struct {
	bus *Bus
	clk clockwork.Clock
	// wide is set for controllers with 16-bit register addresses.
	wide bool
}

// command sends a register address in command mode and leaves the bus in
// data mode. The chip must be selected.
func (r *regs) command(addr uint16) error {
	if err := r.bus.Command(); err != nil {
		return err
	}
	if r.wide {
		if err := r.bus.WriteByte(byte(addr >> 8)); err != nil {
			return err
		}
	}
	if err := r.bus.WriteByte(byte(addr)); err != nil {
		return err
	}
	return r.bus.Data()
}

// put writes a register within an open transaction.
func (r *regs) put(addr uint16, data ...byte) error {
	if err := r.command(addr); err != nil {
		return err
	}
	settle := len(data) > 2
	for _, v := range data {
		if settle {
			r.clk.Sleep(settleDelay)
		}
		if err := r.bus.WriteByte(v); err != nil {
			return err
		}
	}
	return nil
}

// putPair writes the high byte of v to hi and the low byte to lo, within an
// open transaction.
func (r *regs) putPair(hi, lo uint16, v uint16) error {
	if err := r.put(hi, byte(v>>8)); err != nil {
		return err
	}
	return r.put(lo, byte(v))
}

// put16 writes a 16-bit value most significant byte first, within an open
// transaction.
func (r *regs) put16(addr, v uint16) error {
	return r.put(addr, byte(v>>8), byte(v))
}

// put32 writes a 32-bit value most significant byte first, within an open
// transaction.
func (r *regs) put32(addr uint16, v uint32) error {
	return r.put(addr, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// writeReg writes data to register addr in its own transaction.
func (r *regs) writeReg(addr uint16, data ...byte) error {
	return r.bus.tx(func() error {
		return r.put(addr, data...)
	})
}

func (r *regs) writeReg16(addr, v uint16) error {
	return r.writeReg(addr, byte(v>>8), byte(v))
}

func (r *regs) writeReg24(addr uint16, v uint32) error {
	return r.writeReg(addr, byte(v>>16), byte(v>>8), byte(v))
}

func (r *regs) writeReg32(addr uint16, v uint32) error {
	return r.writeReg(addr, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (r *regs) writeRegPair(hi, lo uint16, v uint16) error {
	return r.bus.tx(func() error {
		return r.putPair(hi, lo, v)
	})
}

// readReg reads four bytes from register addr, most significant first.
// Controllers that emit a dummy byte first leave it in the top byte.
func (r *regs) readReg(addr uint16) (uint32, error) {
	var v uint32
	err := r.bus.tx(func() error {
		if err := r.command(addr); err != nil {
			return err
		}
		return r.bus.WithReadDirection(func() error {
			r.clk.Sleep(readDelay)
			for i := 0; i < 4; i++ {
				b, err := r.bus.ReadByte()
				if err != nil {
					return err
				}
				v = v<<8 | uint32(b)
			}
			return nil
		})
	})
	return v, err
}
