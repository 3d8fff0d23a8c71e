// Package tftlcd controls HX8347G, HX8357D and ILI932x TFT display
// controllers over an 8-bit parallel bus.
//
// These controllers drive the 2.4" to 3.5" RGB565 panels sold as Arduino
// shields and breakouts. This driver bit-bangs the 8080-style parallel
// interface over GPIO and implements the display.Drawer interface from
// periph.io.
//
// # Display Characteristics
//
// - 16-bit RGB565 color (5 bits red, 6 bits green, 5 bits blue)
// - 240×320 (HX8347G, ILI932x) or 320×480 (HX8357D) pixels
// - Four rotations, set through the controller's scan direction
// - Pixel read-back from display RAM
// - Hardware address window: pixels are streamed into a rectangle
//
// # Hardware Connection
//
// Connect the display to your system via 12 GPIO lines:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V or 5V (check your board's regulator)
//	CS          → GPIO (chip select, active low)
//	C/D (RS)    → GPIO (command low, data high)
//	WR          → GPIO (write strobe, active low)
//	RD          → GPIO (read strobe, active low)
//	D0..D7      → 8 GPIOs, or a gpio.Group if your host provides one
//	RST         → Optional: GPIO for hardware reset
//
// The data lines must be bidirectional: they are switched to inputs for
// identification and pixel read-back.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//
//		"github.com/flavioheleno/tftlcd"
//		"github.com/flavioheleno/tftlcd/image565"
//		"periph.io/x/conn/v3/gpio"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		pins := &tftlcd.Pins{
//			CS: gpioreg.ByName("GPIO8"),
//			CD: gpioreg.ByName("GPIO25"),
//			WR: gpioreg.ByName("GPIO24"),
//			RD: gpioreg.ByName("GPIO23"),
//		}
//		for i, name := range []string{"GPIO5", "GPIO6", "GPIO12", "GPIO13", "GPIO16", "GPIO19", "GPIO20", "GPIO21"} {
//			pins.D[i] = gpioreg.ByName(name)
//		}
//		bus, _ := tftlcd.NewBus(pins)
//
//		// Detect the controller, or use tftlcd.New with Opts.Controller
//		dev, _ := tftlcd.Detect(bus, &tftlcd.Opts{RST: gpioreg.ByName("GPIO18")})
//		defer dev.Halt()
//
//		// Reset and initialize the panel
//		dev.Begin()
//
//		dev.FillScreen(image565.Black)
//		dev.FillRect(10, 10, 100, 50, tftlcd.Color565(255, 128, 0))
//
//		img := image565.NewImage(image.Rect(0, 0, 64, 64))
//		// ... draw into img ...
//		dev.Draw(img.Bounds().Add(image.Pt(20, 80)), img, image.Point{})
//	}
//
// # Controller Detection
//
// Detect probes the bus in a fixed order and the first probe that answers
// wins: the ID4 register (0xD3), then the HX8357D status register after an
// unlock, then the ID read back after a 0x00 command. Known IDs:
//
//	0x7575 HX8347G
//	0x8357 HX8357D
//	0x9325 ILI932x (ILI9325)
//	0x9328 ILI932x (ILI9328)
//
// An ILI9341 (0x9341) is recognized but not supported; Detect returns
// ErrUnknownController for it and for anything else. Detection never fails
// on a missing panel: it returns a meaningless ID.
//
// # Reset
//
// If RST is provided it is pulsed low for 2ms. Without it, controllers that
// have a software reset command get it instead. Either way, four 0x00 command
// bytes follow to resynchronize controllers that latch 16-bit values as byte
// pairs.
//
// # Drawing
//
// Drawing calls are clipped to the screen; fully off-screen calls never
// touch the bus. After every filled region the address window's lower-right
// corner is restored to the bottom-right of the screen, so SetPixel only has
// to move the upper-left corner.
//
// For custom rendering, set a window and stream pixels into it:
//
//	dev.SetAddrWindow(0, 0, 99, 9)
//	dev.StreamPixels(row, true)  // First chunk
//	dev.StreamPixels(row, false) // Continuation
//
// # Rotation
//
//	dev.SetRotation(tftlcd.Rotate90) // Landscape
//
// Bounds reflects the rotated dimensions.
//
// # Reading Pixels
//
//	c, _ := dev.ReadPixel(10, 10)
//
// Reading turns the data lines around twice and is much slower than writing.
//
// # Performance
//
// Every byte costs one write strobe, and a byte that changes also costs eight
// GPIO writes (one with a gpio.Group). Solid fills with equal high and low
// bytes (black, white, and any color of the form 0xXYXY) only drive the data
// lines once; every following byte is a bare strobe. Prefer those colors for
// large areas when speed matters.
//
// # Datasheets
//
// For detailed register descriptions and timing information, see:
// https://www.himax.com.tw/products/display-drivers/
// https://www.displayfuture.com/Display/datasheet/controller/ILI9325.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package tftlcd
