// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package cipher implements the text transforms behind cipherbox: the
// classical Caesar shift over ASCII letters (with per-character step traces
// for the interactive UI) and AES-256-GCM passphrase sealing.
package cipher

import "strings"

// NormalizeShift reduces an arbitrary integer shift to the canonical
// [0, 25] range. Total over all int values, including math.MinInt.
func NormalizeShift(shift int) int {
	return ((shift % 26) + 26) % 26
}

// shiftByte rotates an ASCII letter forward by n positions within its case,
// where n has already been normalized to [0, 25]. Non-letters are returned
// unchanged.
func shiftByte(c byte, n int) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A' + (c-'A'+byte(n))%26
	case c >= 'a' && c <= 'z':
		return 'a' + (c-'a'+byte(n))%26
	default:
		return c
	}
}

// Encrypt applies a Caesar shift to every ASCII letter of text, preserving
// case and passing all other bytes through untouched. Any integer shift is
// accepted; the output always has the same length as the input.
func Encrypt(text string, shift int) string {
	return transform(text, NormalizeShift(shift))
}

// Decrypt reverses Encrypt for the same shift. Decrypt(t, s) is identical to
// Encrypt(t, -s), so decrypt(encrypt(t, s), s) == t for all t and s.
func Decrypt(text string, shift int) string {
	// Adding 26 keeps the effective shift non-negative before normalization.
	return transform(text, NormalizeShift(26-NormalizeShift(shift)))
}

func transform(text string, n int) string {
	if n == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		b.WriteByte(shiftByte(text[i], n))
	}
	return b.String()
}
