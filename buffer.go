// seehuhn.de/go/scanline - a polygon scanline rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanline

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
)

// Color is a packed 32-bit colour. It is stored in memory as four bytes, most
// significant byte first: bits 31-24, 23-16, 15-8, then 7-0. Read as
// non-premultiplied R, G, B, A this makes 0xff0000ff opaque red.
type Color uint32

// Bytes returns the four bytes of c in the order they are written to a
// [Buffer].
func (c Color) Bytes() [4]byte {
	return [4]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.nrgba().RGBA()
}

func (c Color) nrgba() color.NRGBA {
	p := c.Bytes()
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// colorFromBytes is the inverse of [Color.Bytes].
func colorFromBytes(p []byte) Color {
	return Color(p[0])<<24 | Color(p[1])<<16 | Color(p[2])<<8 | Color(p[3])
}

// Buffer is a flat RGBA pixel store of size width·height·4 bytes.
// Pixel (x, y) occupies the four bytes starting at (x + y·width)·4.
//
// The memory is owned by the caller and is never reallocated.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	pix    []byte
	width  int
	height int
}

// NewBuffer wraps pix as a width×height pixel buffer.
// The length of pix must be exactly width·height·4.
func NewBuffer(pix []byte, width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("buffer size %d×%d: %w", width, height, ErrInvalidGeometry)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("buffer of %d bytes for %d×%d pixels: %w",
			len(pix), width, height, ErrInvalidGeometry)
	}
	return &Buffer{pix: pix, width: width, height: height}, nil
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the underlying byte slice.
func (b *Buffer) Pix() []byte {
	return b.pix
}

// Rect returns the extent of the buffer in device coordinates.
func (b *Buffer) Rect() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(b.width), URy: float64(b.height)}
}

func (b *Buffer) offset(x, y int) (int, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, fmt.Errorf("pixel (%d,%d) in %d×%d buffer: %w",
			x, y, b.width, b.height, ErrOutOfRange)
	}
	return (x + y*b.width) * 4, nil
}

// SetPixel writes c to pixel (x, y). Writes outside the buffer are rejected
// with [ErrOutOfRange] and leave the buffer unchanged.
func (b *Buffer) SetPixel(x, y int, c Color) error {
	i, err := b.offset(x, y)
	if err != nil {
		return err
	}
	p := c.Bytes()
	copy(b.pix[i:i+4], p[:])
	return nil
}

// Pixel returns the colour stored at (x, y).
func (b *Buffer) Pixel(x, y int) (Color, error) {
	i, err := b.offset(x, y)
	if err != nil {
		return 0, err
	}
	return colorFromBytes(b.pix[i : i+4]), nil
}

// Clear sets every pixel of the buffer to c.
func (b *Buffer) Clear(c Color) {
	p := c.Bytes()
	for i := 0; i+4 <= len(b.pix); i += 4 {
		copy(b.pix[i:i+4], p[:])
	}
}

// ColorModel implements the [image.Image] interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the [image.Image] interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements the [image.Image] interface.
func (b *Buffer) At(x, y int) color.Color {
	c, err := b.Pixel(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return c.nrgba()
}

// NRGBA returns an [image.NRGBA] which shares its memory with b.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.pix,
		Stride: 4 * b.width,
		Rect:   b.Bounds(),
	}
}
