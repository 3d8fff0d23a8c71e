package tftlcd

// SetAddrWindow sets the controller's address window to the inclusive
// rectangle (x1, y1)-(x2, y2) in the current rotation.
//
// Coordinates are not clipped: callers must pass x1 <= x2 and y1 <= y2
// within Bounds. Use it before StreamPixels.
func (d *Dev) SetAddrWindow(x1, y1, x2, y2 int) error {
	if err := d.ready(); err != nil {
		return err
	}
	d.streaming = false
	return d.setWindow(x1, y1, x2, y2)
}

// setWindow programs all four window edges.
func (d *Dev) setWindow(x1, y1, x2, y2 int) error {
	return d.bus.tx(func() error {
		switch d.p.window {
		case windowPacked:
			if err := d.put32(hx8357CASet, uint32(x1)<<16|uint32(x2)); err != nil {
				return err
			}
			return d.put32(hx8357PASet, uint32(y1)<<16|uint32(y2))
		case windowCounter:
			return d.putNativeWindow(x1, y1, x2, y2)
		default:
			if err := d.putPair(hx8347gColStartHi, hx8347gColStartLo, uint16(x1)); err != nil {
				return err
			}
			if err := d.putPair(hx8347gRowStartHi, hx8347gRowStartLo, uint16(y1)); err != nil {
				return err
			}
			if err := d.putPair(hx8347gColEndHi, hx8347gColEndLo, uint16(x2)); err != nil {
				return err
			}
			return d.putPair(hx8347gRowEndHi, hx8347gRowEndLo, uint16(y2))
		}
	})
}

// resetLowerRight restores the window's lower-right corner to the bottom
// right of the screen, so that a single pixel write only needs to move the
// upper-left corner.
//
// Controllers without separate corner registers get the full-screen window.
func (d *Dev) resetLowerRight() error {
	if d.p.window != windowPairs {
		return d.setWindow(0, 0, d.w-1, d.h-1)
	}
	return d.bus.tx(func() error {
		if err := d.putPair(hx8347gColEndHi, hx8347gColEndLo, uint16(d.w-1)); err != nil {
			return err
		}
		return d.putPair(hx8347gRowEndHi, hx8347gRowEndLo, uint16(d.h-1))
	})
}

// putOrigin points the controller at (x, y) with the lower-right corner
// left at its default. The chip must be selected.
func (d *Dev) putOrigin(x, y int) error {
	switch d.p.window {
	case windowPacked:
		if err := d.put32(hx8357CASet, uint32(x)<<16|uint32(d.w-1)); err != nil {
			return err
		}
		return d.put32(hx8357PASet, uint32(y)<<16|uint32(d.h-1))
	case windowCounter:
		nx, ny := d.native(x, y)
		if err := d.put16(ili932xGRAMHorAD, uint16(nx)); err != nil {
			return err
		}
		return d.put16(ili932xGRAMVerAD, uint16(ny))
	default:
		if d.p.repeatMemAccess {
			if err := d.put(d.p.memAccess, byte(d.p.rotations[d.rot])); err != nil {
				return err
			}
		}
		if err := d.putPair(hx8347gColStartHi, hx8347gColStartLo, uint16(x)); err != nil {
			return err
		}
		return d.putPair(hx8347gRowStartHi, hx8347gRowStartLo, uint16(y))
	}
}

// native maps a point in the current rotation to controller-native
// coordinates.
func (d *Dev) native(x, y int) (int, int) {
	switch d.rot {
	case Rotate90:
		return d.nw - 1 - y, x
	case Rotate180:
		return d.nw - 1 - x, d.nh - 1 - y
	case Rotate270:
		return y, d.nh - 1 - x
	}
	return x, y
}

// putNativeWindow programs the start/end registers of controllers that
// ignore the scan direction for window addresses, then sets the address
// counter to the corner the scan starts from. The chip must be selected.
func (d *Dev) putNativeWindow(x1, y1, x2, y2 int) error {
	// Opposite corners in native space; the counter starts where (x1, y1)
	// lands.
	ax, ay := d.native(x1, y1)
	bx, by := d.native(x2, y2)
	cx, cy := ax, ay
	if ax > bx {
		ax, bx = bx, ax
	}
	if ay > by {
		ay, by = by, ay
	}
	for _, w := range [...]struct {
		addr uint16
		v    int
	}{
		{ili932xHorStartAD, ax},
		{ili932xHorEndAD, bx},
		{ili932xVerStartAD, ay},
		{ili932xVerEndAD, by},
		{ili932xGRAMHorAD, cx},
		{ili932xGRAMVerAD, cy},
	} {
		if err := d.put16(w.addr, uint16(w.v)); err != nil {
			return err
		}
	}
	return nil
}
