// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	aesSaltSize = 16
	aesKeySize  = 32 // AES-256

	// Interactive-use scrypt parameters.
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// ErrMalformedEnvelope is returned by OpenAES when the input is not a valid
// base64 envelope of at least salt+nonce length.
var ErrMalformedEnvelope = errors.New("malformed ciphertext envelope")

func deriveAESKey(passphrase string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, aesKeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (gocipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AES: %w", err)
	}
	gcm, err := gocipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}
	return gcm, nil
}

// SealAES encrypts plaintext under a key derived from passphrase and returns
// a printable envelope: base64(salt || nonce || ciphertext). A fresh random
// salt and nonce are drawn per call, so sealing the same input twice yields
// different envelopes.
func SealAES(plaintext, passphrase string) (string, error) {
	salt := make([]byte, aesSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := deriveAESKey(passphrase, salt)
	if err != nil {
		return "", err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	envelope := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, sealed...)
	return base64.StdEncoding.EncodeToString(envelope), nil
}

// OpenAES reverses SealAES. It returns an error for anything that is not a
// well-formed envelope sealed under the same passphrase; it never panics on
// malformed input.
func OpenAES(encoded, passphrase string) (string, error) {
	envelope, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if len(envelope) < aesSaltSize {
		return "", ErrMalformedEnvelope
	}

	salt, rest := envelope[:aesSaltSize], envelope[aesSaltSize:]
	key, err := deriveAESKey(passphrase, salt)
	if err != nil {
		return "", err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(rest) < gcm.NonceSize() {
		return "", ErrMalformedEnvelope
	}

	nonce, sealed := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plaintext), nil
}

// SealAESSteps seals plaintext and reports the coarse stages of the
// operation for display. Stages only; key material never appears in the
// trace.
func SealAESSteps(plaintext, passphrase string) (string, []Step, error) {
	steps := []Step{
		{
			Number:      0,
			Title:       "Initialize",
			Description: "AES-256-GCM encryption",
			Details:     fmt.Sprintf("Input length: %d characters", len(plaintext)),
		},
		{
			Number:      1,
			Title:       "Key derivation",
			Description: "Derive 256-bit key from passphrase",
			Details:     fmt.Sprintf("scrypt (N=%d, r=%d, p=%d) with random %d-byte salt", scryptN, scryptR, scryptP, aesSaltSize),
		},
	}

	envelope, err := SealAES(plaintext, passphrase)
	if err != nil {
		return "", nil, err
	}

	steps = append(steps,
		Step{
			Number:      2,
			Title:       "Seal",
			Description: "Encrypt and authenticate with random nonce",
			Details:     "GCM tag covers the full ciphertext",
		},
		Step{
			Number:      3,
			Title:       "Envelope",
			Description: "Encode salt, nonce and ciphertext as base64",
			Details:     fmt.Sprintf("Envelope length: %d characters", len(envelope)),
		},
	)
	return envelope, steps, nil
}
