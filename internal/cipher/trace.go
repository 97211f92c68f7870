// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cipher

import "fmt"

// Step is one record of a transform's visualization trace: what happened to
// a single character (or a coarse stage, for AES), in display-ready form.
type Step struct {
	Number      int
	Title       string
	Description string
	Details     string
}

// EncryptSteps returns the same result as Encrypt together with the ordered
// trace of the transform: an initialization step, one step per input
// character, and a completion step.
func EncryptSteps(text string, shift int) (string, []Step) {
	return traceCaesar(text, shift, false)
}

// DecryptSteps is the traced counterpart of Decrypt.
func DecryptSteps(text string, shift int) (string, []Step) {
	return traceCaesar(text, shift, true)
}

func traceCaesar(text string, shift int, reverse bool) (string, []Step) {
	n := NormalizeShift(shift)
	verb, sign := "encryption", "+"
	if reverse {
		verb, sign = "decryption", "-"
		n = NormalizeShift(26 - n)
	}

	steps := make([]Step, 0, len(text)+2)
	steps = append(steps, Step{
		Number:      0,
		Title:       "Initialize",
		Description: fmt.Sprintf("Caesar %s with normalized shift %d", verb, NormalizeShift(shift)),
		Details:     fmt.Sprintf("Input: %q (%d characters)", text, len(text)),
	})

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		out[i] = shiftByte(c, n)
		step := Step{Number: i + 1}
		if out[i] == c && !isLetter(c) {
			step.Title = fmt.Sprintf("Keep character %d", i+1)
			step.Description = fmt.Sprintf("%q unchanged", string(c))
			step.Details = "non-alphabetic character"
		} else {
			base := byte('a')
			if c >= 'A' && c <= 'Z' {
				base = 'A'
			}
			step.Title = fmt.Sprintf("Shift character %d", i+1)
			step.Description = fmt.Sprintf("%q -> %q", string(c), string(out[i]))
			step.Details = fmt.Sprintf("position %d %s %d = %d (mod 26)",
				c-base, sign, NormalizeShift(shift), out[i]-base)
		}
		steps = append(steps, step)
	}

	result := string(out)
	steps = append(steps, Step{
		Number:      len(text) + 1,
		Title:       "Complete",
		Description: fmt.Sprintf("Caesar %s finished", verb),
		Details:     fmt.Sprintf("Output: %q", result),
	})
	return result, steps
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
