package tftlcd

import "time"

const (
	idRetries    = 5
	idRetryDelay = 50 * time.Microsecond
	// unlockDelay is how long the HX8357D needs after SETC before its
	// status register reads back.
	unlockDelay = 300 * time.Millisecond
)

// identify probes the bus for a controller ID. Probes run in a fixed order
// and the first that matches wins:
//
//  1. Read ID4 (0xD3), retried, looking for 0x9341.
//  2. If register 0x04 reads 0x8000, unlock with SETC and expect 0x990000
//     from 0xD0, meaning HX8357D.
//  3. Read two bytes back after a 0x00 command, which is where HX8347G and
//     ILI932x report their ID.
//
// The probes use 8-bit register addresses, so r must not be wide.
func (r *regs) identify() (uint16, error) {
	for i := 0; i < idRetries; i++ {
		v, err := r.readReg(ili9341ReadID4)
		if err != nil {
			return 0, err
		}
		r.clk.Sleep(idRetryDelay)
		if id := uint16(v); id == 0x9341 {
			return id, nil
		}
	}

	v, err := r.readReg(hx8357ReadDDID)
	if err != nil {
		return 0, err
	}
	if v == 0x8000 {
		if err := r.writeReg24(hx8357DSetC, 0xFF8357); err != nil {
			return 0, err
		}
		r.clk.Sleep(unlockDelay)
		v, err := r.readReg(hx8357DReadD0)
		if err != nil {
			return 0, err
		}
		if v == 0x990000 {
			return 0x8357, nil
		}
	}

	var hi, lo byte
	err = r.bus.tx(func() error {
		if err := r.bus.Command(); err != nil {
			return err
		}
		// Two 0x00 command bytes; the second reuses the latched value.
		if err := r.bus.WriteByte(0x00); err != nil {
			return err
		}
		if err := r.bus.Strobe(); err != nil {
			return err
		}
		return r.bus.WithReadDirection(func() error {
			if err := r.bus.Data(); err != nil {
				return err
			}
			var err error
			if hi, err = r.bus.ReadByte(); err != nil {
				return err
			}
			lo, err = r.bus.ReadByte()
			return err
		})
	})
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
