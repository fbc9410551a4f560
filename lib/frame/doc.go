// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package frame wraps payloads in the textual compression frame:
// the literal "COMPRESSED:" marker followed by base64-encoded zlib
// (DEFLATE) output.
//
// The marker is how the extract side knows decompression is needed —
// the pixel data itself carries no structure. Marker presence must
// agree with the caller's declared intent in both directions:
// [Unframe] on unmarked text fails with [ErrNotCompressed], and the
// pipeline fails with [ErrUnexpectedCompression] when a marked
// payload arrives but decompression was not requested. Neither case
// falls back to passing the bytes through.
//
// Key exports:
//
//   - [Frame] / [Unframe] -- wrap and unwrap
//   - [IsFramed] -- verbatim marker check
//   - [ErrNotCompressed] / [ErrUnexpectedCompression]
package frame
