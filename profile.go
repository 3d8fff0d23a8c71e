package tftlcd

import (
	"errors"
	"fmt"
	"time"
)

// Controller identifies a supported display controller.
type Controller uint8

const (
	// HX8347G uses 8-bit registers and addresses 16-bit coordinates through
	// pairs of adjacent hi/lo registers.
	HX8347G Controller = iota
	// HX8357D uses multi-byte command blocks and packs the start and end of
	// each window axis into one 32-bit register.
	HX8357D
	// ILI932x (ILI9325/ILI9328) uses 16-bit registers and an address
	// counter.
	ILI932x
)

func (c Controller) String() string {
	switch c {
	case HX8347G:
		return "HX8347G"
	case HX8357D:
		return "HX8357D"
	case ILI932x:
		return "ILI932x"
	default:
		return fmt.Sprintf("Controller(%d)", uint8(c))
	}
}

// ErrUnknownController is returned when a detected ID does not map to a
// supported controller.
var ErrUnknownController = errors.New("tftlcd: unknown controller")

// ProfileFor maps a controller ID, as returned by Identify, to a controller.
func ProfileFor(id uint16) (Controller, error) {
	switch id {
	case 0x7575:
		return HX8347G, nil
	case 0x8357:
		return HX8357D, nil
	case 0x9325, 0x9328:
		return ILI932x, nil
	}
	return 0, fmt.Errorf("%w: id 0x%04X", ErrUnknownController, id)
}

// windowMode selects how the address window is programmed.
type windowMode uint8

const (
	// windowPairs programs each edge through a hi/lo register pair.
	windowPairs windowMode = iota
	// windowPacked programs each axis with one start<<16|end register.
	windowPacked
	// windowCounter programs native-orientation start/end registers and a
	// separate GRAM address counter.
	windowCounter
)

// step is one entry of an initialization table: a register write, or a
// pause when delay is non-zero.
type step struct {
	reg   uint16
	data  []byte
	delay time.Duration
}

func reg(addr uint16, data ...byte) step {
	return step{reg: addr, data: data}
}

func reg16(addr, v uint16) step {
	return step{reg: addr, data: []byte{byte(v >> 8), byte(v)}}
}

func pause(ms int) step {
	return step{delay: time.Duration(ms) * time.Millisecond}
}

// profile is the immutable description of a controller.
type profile struct {
	name string
	w, h int // Native dimensions

	wideRegs bool // 16-bit register addresses
	window   windowMode
	init     []step

	memAccess uint16    // Register holding the scan direction
	rotations [4]uint16 // memAccess value per rotation
	wideRot   bool      // memAccess takes a 16-bit value

	// repeatMemAccess re-asserts the scan direction before each single
	// pixel write.
	repeatMemAccess bool

	gramWrite uint16
	gramRead  uint16
	// readDummies is the number of bytes to discard after a GRAM read
	// command. Three channel bytes follow, or two packed bytes when
	// readPacked is set.
	readDummies int
	readPacked  bool

	softReset []uint16 // Commands issued when no reset line is wired
	off       step     // Display-off register write
}

var profiles = [...]*profile{
	HX8347G: {
		name:            "HX8347G",
		w:               240,
		h:               320,
		window:          windowPairs,
		init:            hx8347gInit,
		memAccess:       hx8347gMemAccess,
		rotations:       [4]uint16{0x00, 0x60, 0xC0, 0xA0},
		repeatMemAccess: true,
		gramWrite:       hx8347gGRAM,
		gramRead:        hx8347gGRAM,
		readDummies:     1,
		off:             reg(hx8347gDispCtrl, 0x38),
	},
	HX8357D: {
		name:      "HX8357D",
		w:         320,
		h:         480,
		window:    windowPacked,
		init:      hx8357dInit,
		memAccess: hx8357MADCtl,
		rotations: [4]uint16{
			hx8357DMADCtlMX | hx8357DMADCtlMY,
			hx8357DMADCtlMY | hx8357DMADCtlMV,
			0x00,
			hx8357DMADCtlMX | hx8357DMADCtlMV,
		},
		gramWrite:   hx8357RAMWr,
		gramRead:    hx8357RAMRd,
		readDummies: 1,
		softReset:   []uint16{hx8357SWReset},
		off:         reg(hx8357DispOff),
	},
	ILI932x: {
		name:        "ILI932x",
		w:           240,
		h:           320,
		wideRegs:    true,
		window:      windowCounter,
		init:        ili932xInit,
		memAccess:   ili932xEntryMod,
		rotations:   [4]uint16{0x1030, 0x1028, 0x1000, 0x1018},
		wideRot:     true,
		gramWrite:   ili932xRWGRAM,
		gramRead:    ili932xRWGRAM,
		readDummies: 2,
		readPacked:  true,
		off:         reg16(ili932xDispCtrl1, 0x0000),
	},
}

var hx8347gInit = []step{
	reg(0x2E, 0x89), reg(0x29, 0x8F), reg(0x2B, 0x02), reg(0xE2, 0x00),
	reg(0xE4, 0x01), reg(0xE5, 0x10), reg(0xE6, 0x01), reg(0xE7, 0x10),
	reg(0xE8, 0x70), reg(0xF2, 0x00), reg(0xEA, 0x00), reg(0xEB, 0x20),
	reg(0xEC, 0x3C), reg(0xED, 0xC8), reg(0xE9, 0x38), reg(0xF1, 0x01),

	// Gamma is left at its reset values.

	reg(0x1B, 0x1A), reg(0x1A, 0x02), reg(0x24, 0x61), reg(0x25, 0x5C),

	// Power on
	reg(0x18, 0x36), reg(0x19, 0x01), reg(0x1F, 0x88), pause(5),
	reg(0x1F, 0x80), pause(5), reg(0x1F, 0x90), pause(5),
	reg(0x1F, 0xD4), pause(5), reg(0x17, 0x05),

	// Display on
	reg(0x36, 0x09), reg(hx8347gDispCtrl, 0x38), pause(40), reg(hx8347gDispCtrl, 0x3C),

	// Full screen window
	reg(hx8347gColStartHi, 0x00), reg(hx8347gColStartLo, 0x00),
	reg(hx8347gColEndHi, 0x00), reg(hx8347gColEndLo, 0xEF),
	reg(hx8347gRowStartHi, 0x00), reg(hx8347gRowStartLo, 0x00),
	reg(hx8347gRowEndHi, 0x01), reg(hx8347gRowEndLo, 0x3F),
}

var hx8357dInit = []step{
	reg(hx8357SWReset),
	reg(hx8357DSetC, 0xFF, 0x83, 0x57),
	pause(250),
	reg(hx8357SetRGB, 0x00, 0x00, 0x06, 0x06),
	reg(hx8357DSetCom, 0x25),  // -1.52V
	reg(hx8357SetOsc, 0x68),   // Normal mode 70Hz, idle mode 55Hz
	reg(hx8357SetPanel, 0x05), // BGR, gate direction swapped
	reg(hx8357SetPwr1, 0x00, 0x15, 0x1C, 0x1C, 0x83, 0xAA),
	reg(hx8357DSetSTBA, 0x50, 0x50, 0x01, 0x3C, 0x1E, 0x08),
	reg(hx8357DSetCyc, 0x02, 0x40, 0x00, 0x2A, 0x2A, 0x0D, 0x78),
	reg(hx8357ColMod, 0x55), // 16 bits per pixel
	reg(hx8357MADCtl, 0xC0),
	reg(hx8357TEOn, 0x00),
	reg(hx8357TearLine, 0x00, 0x02),
	reg(hx8357SleepOut),
	pause(150),
	reg(hx8357DispOn),
	pause(50),
}

var ili932xInit = []step{
	reg16(ili932xStartOsc, 0x0001),
	pause(50),
	reg16(ili932xDrivOutCtrl, 0x0100),
	reg16(ili932xDrivWavCtrl, 0x0700),
	reg16(ili932xEntryMod, 0x1030),
	reg16(ili932xResizeCtrl, 0x0000),
	reg16(ili932xDispCtrl2, 0x0202),
	reg16(ili932xDispCtrl3, 0x0000),
	reg16(ili932xDispCtrl4, 0x0000),
	reg16(ili932xRGBIfCtrl1, 0x0000),
	reg16(ili932xFrmMarkerPos, 0x0000),
	reg16(ili932xRGBIfCtrl2, 0x0000),
	reg16(ili932xPowCtrl1, 0x0000),
	reg16(ili932xPowCtrl2, 0x0007),
	reg16(ili932xPowCtrl3, 0x0000),
	reg16(ili932xPowCtrl4, 0x0000),
	pause(200),
	reg16(ili932xPowCtrl1, 0x1690),
	reg16(ili932xPowCtrl2, 0x0227),
	pause(50),
	reg16(ili932xPowCtrl3, 0x001A),
	pause(50),
	reg16(ili932xPowCtrl4, 0x1800),
	reg16(ili932xPowCtrl7, 0x002A),
	pause(50),
	reg16(ili932xGammaCtrl1, 0x0000),
	reg16(ili932xGammaCtrl2, 0x0000),
	reg16(ili932xGammaCtrl3, 0x0000),
	reg16(ili932xGammaCtrl4, 0x0206),
	reg16(ili932xGammaCtrl5, 0x0808),
	reg16(ili932xGammaCtrl6, 0x0007),
	reg16(ili932xGammaCtrl7, 0x0201),
	reg16(ili932xGammaCtrl8, 0x0000),
	reg16(ili932xGammaCtrl9, 0x0000),
	reg16(ili932xGammaCtrl10, 0x0000),
	reg16(ili932xGRAMHorAD, 0x0000),
	reg16(ili932xGRAMVerAD, 0x0000),
	reg16(ili932xHorStartAD, 0x0000),
	reg16(ili932xHorEndAD, 0x00EF),
	reg16(ili932xVerStartAD, 0x0000),
	reg16(ili932xVerEndAD, 0x013F),
	reg16(ili932xGateScanCtrl1, 0xA700), // Driver output control
	reg16(ili932xGateScanCtrl2, 0x0003),
	reg16(ili932xGateScanCtrl3, 0x0000),
	reg16(ili932xPanelIfCtrl1, 0x0010),
	reg16(ili932xPanelIfCtrl2, 0x0000),
	reg16(ili932xPanelIfCtrl3, 0x0003),
	reg16(ili932xPanelIfCtrl4, 0x1100),
	reg16(ili932xPanelIfCtrl5, 0x0000),
	reg16(ili932xPanelIfCtrl6, 0x0000),
	reg16(ili932xDispCtrl1, 0x0133), // Main screen on
}
