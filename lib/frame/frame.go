// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package frame

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Marker prefixes every compressed frame. It is checked verbatim —
// changing it breaks compatibility with previously embedded images.
const Marker = "COMPRESSED:"

var (
	// ErrNotCompressed is returned by Unframe when the caller
	// declared the payload compressed but the marker is absent.
	ErrNotCompressed = errors.New("decompression requested, but payload is not compressed")

	// ErrUnexpectedCompression is returned by the pipeline when the
	// marker is present but the caller did not request decompression.
	// Passing the frame through as if it were plaintext would hand
	// the caller compressed garbage.
	ErrUnexpectedCompression = errors.New("payload is compressed, but decompression was not requested")
)

// Frame compresses data with zlib at the default level and wraps it
// as Marker ‖ base64(compressed).
func Frame(data []byte) (string, error) {
	var compressed bytes.Buffer
	writer := zlib.NewWriter(&compressed)
	if _, err := writer.Write(data); err != nil {
		return "", fmt.Errorf("compressing payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalizing compression: %w", err)
	}
	return Marker + base64.StdEncoding.EncodeToString(compressed.Bytes()), nil
}

// Unframe reverses Frame. The marker must be present (ErrNotCompressed
// otherwise); base64 or zlib failures mean the frame body is corrupt.
func Unframe(text string) ([]byte, error) {
	if !IsFramed(text) {
		return nil, ErrNotCompressed
	}

	compressed, err := base64.StdEncoding.DecodeString(text[len(Marker):])
	if err != nil {
		return nil, fmt.Errorf("decoding compressed frame: %w", err)
	}

	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("reading compressed frame: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}
	return data, nil
}

// IsFramed reports whether the text begins with the verbatim marker.
func IsFramed(text string) bool {
	return strings.HasPrefix(text, Marker)
}
