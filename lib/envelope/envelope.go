// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32

	// NonceSize is the GCM nonce length prepended to every blob.
	NonceSize = 12
)

var (
	// ErrKeyTooLong is returned by DeriveKey for passphrases over
	// KeySize bytes. Truncating would silently weaken the caller's
	// chosen secret, so long passphrases are rejected instead.
	ErrKeyTooLong = errors.New("passphrase must be 32 bytes or fewer")

	// ErrDecryptionFailed is the uniform failure value for every
	// decryption problem: bad base64, short blob, authentication tag
	// mismatch, non-text plaintext. Callers must not be able to tell
	// these apart.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// DeriveKey builds the fixed 32-byte key from a passphrase by copying
// its bytes and zero-padding the remainder. The key exists only for
// the duration of the encrypt or decrypt call that uses it.
func DeriveKey(passphrase string) ([KeySize]byte, error) {
	var key [KeySize]byte
	if len(passphrase) > KeySize {
		return key, ErrKeyTooLong
	}
	copy(key[:], passphrase)
	return key, nil
}

// Encrypt seals the plaintext under the key with AES-256-GCM and
// returns base64(nonce ‖ ciphertext+tag). A fresh random nonce is
// generated per call; nonce reuse under one key would void the AEAD
// confidentiality guarantee.
func Encrypt(plaintext []byte, key [KeySize]byte) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	// Seal appends ciphertext+tag to the nonce slice, producing the
	// nonce-prefixed blob in one allocation.
	blob := aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens a blob produced by Encrypt. Every failure path
// returns ErrDecryptionFailed: base64 decode errors, blobs shorter
// than the nonce, tag mismatches (wrong key or tampered data), and
// plaintext that is not valid UTF-8 (recovered payloads are text; a
// non-text result means the blob never came from Encrypt under this
// key). No partial plaintext is ever returned.
func Decrypt(encoded string, key [KeySize]byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	if len(blob) < NonceSize {
		return nil, ErrDecryptionFailed
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	if !utf8.Valid(plaintext) {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newAEAD(key [KeySize]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("initializing GCM: %w", err)
	}
	return aead, nil
}
