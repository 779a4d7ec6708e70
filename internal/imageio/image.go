// Package imageio is the external image-writer collaborator: it owns the
// 8-bit output raster and the PNG encoding, so the rendering core depends
// only on the narrow SetPixel contract it needs to fill that raster.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// RGB is an 8-bit output pixel.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color so an Image can be handed to anything that
// consumes the standard library's image.Image.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

// Image is a width x height 8-bit RGB raster, addressed (row, col) to
// match the C-order convention the renderer driver writes into (row = y,
// col = x), so the final file has rows indexed by screen-y.
type Image struct {
	width, height int
	pixels        []RGB
}

// NewImage allocates a black width x height image.
func NewImage(width, height int) *Image {
	return &Image{width: width, height: height, pixels: make([]RGB, width*height)}
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

func (img *Image) index(row, col int) int { return row*img.width + col }

// SetPixel is the setter the rendering core depends on.
func (img *Image) SetPixel(rgb RGB, row, col int) {
	img.pixels[img.index(row, col)] = rgb
}

// GetPixel returns the pixel previously stored at (row, col).
func (img *Image) GetPixel(row, col int) RGB {
	return img.pixels[img.index(row, col)]
}

// At implements image.Image.
func (img *Image) At(x, y int) color.Color {
	return img.GetPixel(y, x)
}

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		r, g, b, _ := c.RGBA()
		return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	})
}

// Write PNG-encodes the image to path.
func (img *Image) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return nil
}
