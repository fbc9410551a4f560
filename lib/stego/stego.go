// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package stego

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/pixelveil/pixelveil/lib/carrier"
)

// Delimiter terminates the embedded payload. Extraction stops when a
// fully-assembled byte equals this value, so raw payloads must not
// depend on containing a 0x00 byte (encrypted and compressed payloads
// are base64 text and never do).
const Delimiter byte = 0x00

// ErrInsufficientCapacity is returned when the carrier cannot hold
// the payload plus its delimiter. The check runs before any channel
// byte is written — a failed embed leaves the carrier untouched.
var ErrInsufficientCapacity = errors.New("insufficient carrier capacity")

// parallelThreshold is the payload size in bytes above which Embed
// splits the work across goroutines. Below it the goroutine setup
// costs more than the bit loop.
const parallelThreshold = 64 * 1024

// HasCapacity reports whether a payload of payloadLen bytes fits in
// the carrier. The delimiter byte is accounted for here: the payload
// needs (payloadLen+1)*8 channel bytes, one bit each.
func HasCapacity(payloadLen int, im *carrier.Image) bool {
	requiredBits := (payloadLen + 1) * 8
	return requiredBits <= im.Bits()
}

// Embed writes the payload, followed by the delimiter, into the
// carrier's channel LSBs. The upper seven bits of every channel byte
// are preserved. Returns ErrInsufficientCapacity (without mutating
// the carrier) when the payload does not fit.
func Embed(data []byte, im *carrier.Image) error {
	return EmbedWorkers(data, im, 0)
}

// EmbedWorkers is Embed with an explicit worker count. workers <= 0
// selects automatically: sequential for small payloads, GOMAXPROCS
// goroutines above parallelThreshold. Worker ranges partition the
// payload byte indices, so no channel byte is written twice and none
// is skipped.
func EmbedWorkers(data []byte, im *carrier.Image, workers int) error {
	if !HasCapacity(len(data), im) {
		return fmt.Errorf("%w: payload needs %d bits, carrier has %d",
			ErrInsufficientCapacity, (len(data)+1)*8, im.Bits())
	}

	// The delimiter is appended here and nowhere else. buffer is
	// zero-initialized, so the final byte is already Delimiter.
	buffer := make([]byte, len(data)+1)
	copy(buffer, data)

	if workers <= 0 {
		workers = 1
		if len(buffer) >= parallelThreshold {
			workers = runtime.GOMAXPROCS(0)
		}
	}
	if workers > len(buffer) {
		workers = len(buffer)
	}

	if workers == 1 {
		embedRange(buffer, im, 0, len(buffer))
		return nil
	}

	var group sync.WaitGroup
	chunk := (len(buffer) + workers - 1) / workers
	for start := 0; start < len(buffer); start += chunk {
		end := start + chunk
		if end > len(buffer) {
			end = len(buffer)
		}
		group.Add(1)
		go func(start, end int) {
			defer group.Done()
			embedRange(buffer, im, start, end)
		}(start, end)
	}
	group.Wait()
	return nil
}

// embedRange writes payload bytes [start, end) into the carrier.
// Byte i occupies channel bytes [i*8, i*8+8), most significant
// payload bit first.
func embedRange(buffer []byte, im *carrier.Image, start, end int) {
	for byteIndex := start; byteIndex < end; byteIndex++ {
		payloadByte := buffer[byteIndex]
		base := byteIndex * 8
		for bit := 0; bit < 8; bit++ {
			value := (payloadByte >> (7 - bit)) & 1
			im.Pix[base+bit] = (im.Pix[base+bit] &^ 1) | value
		}
	}
}

// Extract recovers the embedded payload from the carrier. It scans
// every channel byte in the same order Embed wrote them, assembling
// eight LSBs at a time into bytes, and stops at the first assembled
// Delimiter (which is consumed, not returned). If the carrier is
// exhausted without a delimiter, whatever was assembled is returned —
// truncation surfaces downstream, where the payload fails validation.
func Extract(im *carrier.Image) []byte {
	var payload []byte
	var assembled byte
	bitCount := 0

	for _, channelByte := range im.Pix {
		assembled = assembled<<1 | channelByte&1
		bitCount++
		if bitCount < 8 {
			continue
		}
		if assembled == Delimiter {
			return payload
		}
		payload = append(payload, assembled)
		assembled = 0
		bitCount = 0
	}
	return payload
}
