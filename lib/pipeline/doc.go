// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package pipeline composes the payload transformation layers into
// the two end-to-end operations:
//
//	embed:   payload → [encrypt] → [compress] → LSB embed
//	extract: LSB extract → [decompress] → [decrypt] → payload
//
// The relative order of encryption and compression is fixed and is
// not reordered based on which options are enabled: encryption always
// runs before compression on embed, so decompression always runs
// before decryption on extract. Each call is a straight-line sequence
// with no state carried between invocations.
//
// Key exports:
//
//   - [Embed] / [Extract] -- the two operations
//   - [Options] -- passphrase, compression flag, worker count
//   - [Progress] -- injected sink for phase-transition notifications
//   - [ErrNotText] -- extracted payload failed UTF-8 validation
//
// Progress reporting is purely observational: sinks are invoked
// synchronously at each phase transition and have no effect on the
// result. [NopProgress] is the sink for programmatic callers.
package pipeline
