// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package carrier

import (
	"image"
	"image/color"
	"testing"
)

func TestIndex(t *testing.T) {
	im := New(7, 5)

	tests := []struct {
		x, y, c int
		want    int
	}{
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 2, 2},
		{1, 0, 0, 3},             // next pixel in the row
		{6, 0, 2, 20},            // last channel of the first row
		{0, 1, 0, 21},            // first channel of the second row
		{6, 4, 2, 7*5*3 - 1},     // final channel byte
		{3, 2, 1, (2*7+3)*3 + 1}, // interior pixel
	}

	for _, test := range tests {
		got := im.Index(test.x, test.y, test.c)
		if got != test.want {
			t.Errorf("Index(%d, %d, %d) = %d, want %d",
				test.x, test.y, test.c, got, test.want)
		}
	}
}

func TestIndex_CoversBufferExactlyOnce(t *testing.T) {
	im := New(4, 3)
	seen := make([]bool, len(im.Pix))

	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			for c := 0; c < Channels; c++ {
				index := im.Index(x, y, c)
				if index < 0 || index >= len(im.Pix) {
					t.Fatalf("Index(%d, %d, %d) = %d out of range", x, y, c, index)
				}
				if seen[index] {
					t.Fatalf("Index(%d, %d, %d) = %d already used", x, y, c, index)
				}
				seen[index] = true
			}
		}
	}

	for i, used := range seen {
		if !used {
			t.Errorf("buffer position %d never addressed", i)
		}
	}
}

func TestAtSet(t *testing.T) {
	im := New(3, 3)
	im.Set(2, 1, 1, 0x7F)
	if got := im.At(2, 1, 1); got != 0x7F {
		t.Errorf("At(2, 1, 1) = %02x, want 7f", got)
	}
	if got := im.Pix[im.Index(2, 1, 1)]; got != 0x7F {
		t.Errorf("Pix[Index(2, 1, 1)] = %02x, want 7f", got)
	}
}

func TestBits(t *testing.T) {
	if got := New(10, 10).Bits(); got != 300 {
		t.Errorf("Bits() = %d, want 300", got)
	}
	if got := New(1, 1).Bits(); got != 3 {
		t.Errorf("Bits() = %d, want 3", got)
	}
}

func TestFromImage_ToNRGBA_Roundtrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 50), G: uint8(y * 90), B: uint8(x + y), A: 0xff,
			})
		}
	}

	im := FromImage(src)
	out := im.ToNRGBA()

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if src.NRGBAAt(x, y) != out.NRGBAAt(x, y) {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, out.NRGBAAt(x, y), src.NRGBAAt(x, y))
			}
		}
	}
}

func TestFromImage_NonZeroOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 14, 22))
	src.SetNRGBA(10, 20, color.NRGBA{R: 0xAA, A: 0xff})

	im := FromImage(src)
	if im.Width != 4 || im.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 4x2", im.Width, im.Height)
	}
	if got := im.At(0, 0, 0); got != 0xAA {
		t.Errorf("At(0, 0, 0) = %02x, want aa", got)
	}
}

func TestClone_Independent(t *testing.T) {
	im := New(2, 2)
	im.Set(0, 0, 0, 42)

	duplicate := im.Clone()
	duplicate.Set(0, 0, 0, 99)

	if got := im.At(0, 0, 0); got != 42 {
		t.Errorf("original mutated through clone: At = %d, want 42", got)
	}
}

func TestDigest(t *testing.T) {
	first := New(5, 5)
	second := New(5, 5)
	if first.Digest() != second.Digest() {
		t.Error("identical images have different digests")
	}

	second.Set(4, 4, 2, 1)
	if first.Digest() == second.Digest() {
		t.Error("digest unchanged after a pixel byte changed")
	}

	// Same byte count, different geometry.
	wide := New(10, 1)
	tall := New(1, 10)
	if wide.Digest() == tall.Digest() {
		t.Error("digest ignores geometry")
	}
}
