// Package image565 provides a 16-bit RGB565 image format for parallel-bus TFT
// display controllers.
//
// Pixels use the packed 5-6-5 layout that HX8347G, HX8357D and ILI932x
// controllers expect on their 8-bit bus: 5 bits red, 6 bits green, 5 bits
// blue, most significant byte first.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0              1
//	Colors: red (F800)     blue (001F)
//	Bytes:  0xF8 0x00      0x00 0x1F
//
// This package provides:
//
// - RGB565: a packed 16-bit color type
// - Model: a color model for converting standard Go colors to RGB565
// - Image: an image.Image implementation storing big-endian RGB565 pixels
//
// Example usage:
//
//	img := image565.NewImage(image.Rect(0, 0, 240, 320))
//
//	// Pack 8-bit channels, dropping the low bits
//	orange := image565.Pack(0xFF, 0x80, 0x00)
//	img.SetRGB565(10, 20, orange)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package image565
