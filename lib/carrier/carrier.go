// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package carrier

import (
	"image"
	"image/color"

	"github.com/zeebo/blake3"
)

// Channels is the number of color channels per pixel. The carrier
// model is fixed to 8-bit RGB: alpha is dropped on load because most
// encoders premultiply or quantize it, which would corrupt embedded
// bits stored there.
const Channels = 3

// Image is a rectangular RGB pixel buffer in row-major order. Pix
// holds Width*Height*Channels bytes; every channel byte is reachable
// through [Image.Index]. The zero value is not usable — construct
// with [New] or [FromImage].
type Image struct {
	Width  int
	Height int

	// Pix is the flat channel-byte buffer. Pix[Index(x, y, c)] is
	// channel c of the pixel at (x, y).
	Pix []uint8
}

// New returns a black image of the given dimensions.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// FromImage converts any decoded image to the flat RGB representation.
// Alpha is discarded.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	result := New(bounds.Dx(), bounds.Dy())

	for y := 0; y < result.Height; y++ {
		for x := 0; x < result.Width; x++ {
			pixel := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			base := result.Index(x, y, 0)
			result.Pix[base] = pixel.R
			result.Pix[base+1] = pixel.G
			result.Pix[base+2] = pixel.B
		}
	}
	return result
}

// Index returns the position of channel c of pixel (x, y) in Pix.
// This is the one place the row-major R,G,B scan order is defined;
// both the embed and extract sides of lib/stego depend on it.
func (im *Image) Index(x, y, c int) int {
	return (y*im.Width+x)*Channels + c
}

// At returns the channel byte at (x, y, c).
func (im *Image) At(x, y, c int) uint8 {
	return im.Pix[im.Index(x, y, c)]
}

// Set writes the channel byte at (x, y, c).
func (im *Image) Set(x, y, c int, value uint8) {
	im.Pix[im.Index(x, y, c)] = value
}

// Bits returns the number of payload bits the image can carry: one
// per channel byte (LSB only).
func (im *Image) Bits() int {
	return len(im.Pix)
}

// Clone returns a deep copy. Embedding mutates the buffer in place,
// so callers that need the original afterwards embed into a clone.
func (im *Image) Clone() *Image {
	duplicate := &Image{
		Width:  im.Width,
		Height: im.Height,
		Pix:    make([]uint8, len(im.Pix)),
	}
	copy(duplicate.Pix, im.Pix)
	return duplicate
}

// ToNRGBA converts the buffer back to a stdlib image for encoding.
// Alpha is fully opaque.
func (im *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			base := im.Index(x, y, 0)
			out.SetNRGBA(x, y, color.NRGBA{
				R: im.Pix[base],
				G: im.Pix[base+1],
				B: im.Pix[base+2],
				A: 0xff,
			})
		}
	}
	return out
}

// Digest returns a BLAKE3 hash over the dimensions and pixel data.
// Two images have equal digests exactly when every channel byte (and
// the geometry) matches, so a save → reload cycle can be checked for
// lossless round-tripping by comparing digests.
func (im *Image) Digest() [32]byte {
	hasher := blake3.New()
	header := [8]byte{
		byte(im.Width >> 24), byte(im.Width >> 16), byte(im.Width >> 8), byte(im.Width),
		byte(im.Height >> 24), byte(im.Height >> 16), byte(im.Height >> 8), byte(im.Height),
	}
	hasher.Write(header[:])
	hasher.Write(im.Pix)

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}
