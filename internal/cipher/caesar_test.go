// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cipher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptVectors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		shift int
		want  string
	}{
		{"classic", "Hello World", 3, "Khoor Zruog"},
		{"full cycle is identity", "abc", 26, "abc"},
		{"wrap around", "XYZ", 3, "ABC"},
		{"mixed passthrough", "Test123!", 5, "Yjxy123!"},
		{"zero shift", "Hello, World!", 0, "Hello, World!"},
		{"empty", "", 13, ""},
		{"negative shift wraps", "abc", -1, "zab"},
		{"large shift", "abc", 55, "def"},
		{"only punctuation", "123 !?.", 7, "123 !?."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encrypt(tt.text, tt.shift))
		})
	}
}

func TestDecryptVectors(t *testing.T) {
	assert.Equal(t, "Hello World", Decrypt("Khoor Zruog", 3))
	assert.Equal(t, "Hello World", Decrypt("Hello World", 0))
	// decrypt with -s behaves like encrypt with s
	assert.Equal(t, Encrypt("abc", 3), Decrypt("abc", -3))
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"Hello World",
		"The quick brown fox jumps over the lazy dog.",
		"MiXeD CaSe 123 !@#",
		"   leading and trailing   ",
	}
	shifts := []int{0, 1, 3, 13, 25, 26, 52, -3, -26, -999, 1000000}
	for _, text := range texts {
		for _, shift := range shifts {
			require.Equal(t, text, Decrypt(Encrypt(text, shift), shift),
				"round trip failed for %q with shift %d", text, shift)
		}
	}
}

func TestPeriodicity(t *testing.T) {
	text := "Attack at Dawn!"
	for _, shift := range []int{0, 5, 13, 24} {
		want := Encrypt(text, shift)
		for _, k := range []int{-2, -1, 1, 2, 10} {
			assert.Equal(t, want, Encrypt(text, shift+26*k))
		}
	}
}

func TestCasePreservedAndLengthStable(t *testing.T) {
	text := "Go Gopher 2025, naturally!"
	for shift := 0; shift < 26; shift++ {
		out := Encrypt(text, shift)
		require.Len(t, out, len(text))
		for i := 0; i < len(text); i++ {
			c, o := text[i], out[i]
			switch {
			case c >= 'A' && c <= 'Z':
				assert.True(t, o >= 'A' && o <= 'Z', "shift %d pos %d: %q not uppercase", shift, i, string(o))
			case c >= 'a' && c <= 'z':
				assert.True(t, o >= 'a' && o <= 'z', "shift %d pos %d: %q not lowercase", shift, i, string(o))
			default:
				assert.Equal(t, c, o, "shift %d pos %d: non-letter changed", shift, i)
			}
		}
	}
}

func TestNormalizeShift(t *testing.T) {
	tests := []struct {
		shift int
		want  int
	}{
		{0, 0},
		{3, 3},
		{25, 25},
		{26, 0},
		{27, 1},
		{-1, 25},
		{-26, 0},
		{-27, 25},
		{math.MaxInt, 7},  // (2^63-1) mod 26
		{math.MinInt, 18}, // 26 - (2^63 mod 26)
	}
	for _, tt := range tests {
		got := NormalizeShift(tt.shift)
		assert.Equal(t, tt.want, got, "NormalizeShift(%d)", tt.shift)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 26)
	}
}

func TestExtremeShiftsRoundTrip(t *testing.T) {
	text := "Edge of the int range"
	for _, shift := range []int{math.MinInt, math.MinInt + 1, math.MaxInt - 1, math.MaxInt} {
		require.Equal(t, text, Decrypt(Encrypt(text, shift), shift), "shift %d", shift)
	}
}

func TestEncryptSteps(t *testing.T) {
	result, steps := EncryptSteps("Ab!", 1)
	require.Equal(t, "Bc!", result)
	// init + one per character + completion
	require.Len(t, steps, 5)

	assert.Equal(t, 0, steps[0].Number)
	assert.Equal(t, "Initialize", steps[0].Title)

	assert.Equal(t, "Shift character 1", steps[1].Title)
	assert.Contains(t, steps[1].Description, `"A" -> "B"`)
	assert.Equal(t, "Keep character 3", steps[3].Title)
	assert.Contains(t, steps[3].Details, "non-alphabetic")

	assert.Equal(t, "Complete", steps[4].Title)
	assert.Contains(t, steps[4].Details, `"Bc!"`)
}

func TestDecryptStepsMatchDecrypt(t *testing.T) {
	result, steps := DecryptSteps("Khoor Zruog", 3)
	assert.Equal(t, Decrypt("Khoor Zruog", 3), result)
	assert.Len(t, steps, len("Khoor Zruog")+2)
}
