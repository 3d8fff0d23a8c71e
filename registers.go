package tftlcd

// HX8347G registers.
const (
	hx8347gColStartHi = 0x02
	hx8347gColStartLo = 0x03
	hx8347gColEndHi   = 0x04
	hx8347gColEndLo   = 0x05
	hx8347gRowStartHi = 0x06
	hx8347gRowStartLo = 0x07
	hx8347gRowEndHi   = 0x08
	hx8347gRowEndLo   = 0x09
	hx8347gMemAccess  = 0x16
	hx8347gGRAM       = 0x22
	hx8347gDispCtrl   = 0x28
)

// HX8357D commands. The window, GRAM and MADCTL commands are shared with the
// ILI9341 command set.
const (
	hx8357SWReset   = 0x01
	hx8357SleepOut  = 0x11
	hx8357DispOff   = 0x28
	hx8357DispOn    = 0x29
	hx8357CASet     = 0x2A
	hx8357PASet     = 0x2B
	hx8357RAMWr     = 0x2C
	hx8357RAMRd     = 0x2E
	hx8357TEOn      = 0x35
	hx8357MADCtl    = 0x36
	hx8357ColMod    = 0x3A
	hx8357TearLine  = 0x44
	hx8357SetOsc    = 0xB0
	hx8357SetPwr1   = 0xB1
	hx8357SetRGB    = 0xB3
	hx8357DSetCyc   = 0xB4
	hx8357DSetCom   = 0xB6
	hx8357DSetC     = 0xB9
	hx8357DSetSTBA  = 0xC0
	hx8357SetPanel  = 0xCC
	hx8357DReadD0   = 0xD0
	hx8357ReadDDID  = 0x04
	ili9341ReadID4  = 0xD3
	hx8357DMADCtlMY = 0x80
	hx8357DMADCtlMX = 0x40
	hx8357DMADCtlMV = 0x20
)

// ILI932x registers.
const (
	ili932xStartOsc      = 0x0000
	ili932xDrivOutCtrl   = 0x0001
	ili932xDrivWavCtrl   = 0x0002
	ili932xEntryMod      = 0x0003
	ili932xResizeCtrl    = 0x0004
	ili932xDispCtrl1     = 0x0007
	ili932xDispCtrl2     = 0x0008
	ili932xDispCtrl3     = 0x0009
	ili932xDispCtrl4     = 0x000A
	ili932xRGBIfCtrl1    = 0x000C
	ili932xFrmMarkerPos  = 0x000D
	ili932xRGBIfCtrl2    = 0x000F
	ili932xPowCtrl1      = 0x0010
	ili932xPowCtrl2      = 0x0011
	ili932xPowCtrl3      = 0x0012
	ili932xPowCtrl4      = 0x0013
	ili932xGRAMHorAD     = 0x0020
	ili932xGRAMVerAD     = 0x0021
	ili932xRWGRAM        = 0x0022
	ili932xPowCtrl7      = 0x0029
	ili932xGammaCtrl1    = 0x0030
	ili932xGammaCtrl2    = 0x0031
	ili932xGammaCtrl3    = 0x0032
	ili932xGammaCtrl4    = 0x0035
	ili932xGammaCtrl5    = 0x0036
	ili932xGammaCtrl6    = 0x0037
	ili932xGammaCtrl7    = 0x0038
	ili932xGammaCtrl8    = 0x0039
	ili932xGammaCtrl9    = 0x003C
	ili932xGammaCtrl10   = 0x003D
	ili932xHorStartAD    = 0x0050
	ili932xHorEndAD      = 0x0051
	ili932xVerStartAD    = 0x0052
	ili932xVerEndAD      = 0x0053
	ili932xGateScanCtrl1 = 0x0060
	ili932xGateScanCtrl2 = 0x0061
	ili932xGateScanCtrl3 = 0x006A
	ili932xPanelIfCtrl1  = 0x0090
	ili932xPanelIfCtrl2  = 0x0092
	ili932xPanelIfCtrl3  = 0x0093
	ili932xPanelIfCtrl4  = 0x0095
	ili932xPanelIfCtrl5  = 0x0097
	ili932xPanelIfCtrl6  = 0x0098
)
