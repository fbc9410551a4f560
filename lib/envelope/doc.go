// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package envelope provides the authenticated-encryption layer for
// hidden payloads: AES-256-GCM with a fresh random 12-byte nonce per
// call, the nonce prepended to the ciphertext, and the whole blob
// base64-encoded so it travels the same text path as unencrypted
// payloads.
//
// Key exports:
//
//   - [DeriveKey] -- 32-byte key from a passphrase (zero-padded;
//     passphrases over 32 bytes are rejected, never truncated)
//   - [Encrypt] -- plaintext to base64 blob
//   - [Decrypt] -- base64 blob to plaintext, failing closed
//   - [ErrDecryptionFailed] -- the single decryption failure value
//
// Decryption failures are deliberately uniform: a wrong key, a
// truncated blob, malformed base64, and a tampered ciphertext all
// return [ErrDecryptionFailed] with no further distinction, so the
// error surface leaks nothing about which check failed.
package envelope
