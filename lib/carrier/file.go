// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package carrier

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered for image.Decode. JPEG and GIF are valid sources
	// (they decode to exact pixel values); they are only rejected as
	// save targets.
	_ "image/gif"
	_ "image/jpeg"
)

// ErrUnsupportedFormat is returned for paths whose extension does not
// name a supported image format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// supportedExtensions maps recognized file extensions to whether the
// format is lossless. Lossy formats can be read but never written:
// re-encoding through them destroys the embedded LSBs.
var supportedExtensions = map[string]bool{
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".jpg":  false,
	".jpeg": false,
	".gif":  false,
}

// HasImageExtension reports whether the path ends in a recognized
// image extension.
func HasImageExtension(path string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// IsLossless reports whether the path's format preserves pixel data
// exactly. Unrecognized extensions are an error, not a guess — the
// caller must know whether embedded bits will survive.
func IsLossless(path string) (bool, error) {
	lossless, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return lossless, nil
}

// EnsureLosslessPath returns the path with a ".png" extension
// appended when the path has no recognized lossless target extension.
// Used by the embed front ends so output defaults to PNG.
func EnsureLosslessPath(path string) string {
	lossless, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	if ok && lossless {
		return path
	}
	return path + ".png"
}

// Load decodes an image file into the flat RGB representation. The
// format is detected from the file content, not the extension; any
// registered format (PNG, JPEG, GIF, BMP, TIFF) is accepted.
func Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening carrier image: %w", err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding carrier image %s: %w", path, err)
	}
	return FromImage(decoded), nil
}

// Save encodes the image to the path, choosing the encoder from the
// extension. Only lossless formats are valid targets; lossy or
// unrecognized extensions return [ErrUnsupportedFormat]. Parent
// directories are created as needed.
func Save(im *Image, path string) error {
	lossless, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok || !lossless {
		return fmt.Errorf("%w: cannot save embedded image to %q (use png, bmp, or tiff)",
			ErrUnsupportedFormat, filepath.Ext(path))
	}

	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output image: %w", err)
	}
	defer file.Close()

	nrgba := im.ToNRGBA()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, nrgba)
	case ".bmp":
		err = bmp.Encode(file, nrgba)
	case ".tiff", ".tif":
		err = tiff.Encode(file, nrgba, nil)
	}
	if err != nil {
		return fmt.Errorf("encoding output image %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("writing output image %s: %w", path, err)
	}
	return nil
}
