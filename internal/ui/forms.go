// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
)

// Form field indexes. Every mode has exactly two fields: the message and a
// key (integer shift for Caesar, passphrase for AES).
const (
	fieldMessage = 0
	fieldKey     = 1
	fieldCount   = 2
)

// createTransformForm builds the input form for a cipher mode. The message
// field starts focused; the key field validates integers for Caesar modes
// and masks input for AES modes.
func createTransformForm(m mode, defaultShift int) []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	var t textinput.Model

	t = textinput.New()
	if m == modeAESDecrypt {
		t.Placeholder = "Base64 envelope to open"
	} else {
		t.Placeholder = "Message (letters shift, everything else passes through)"
	}
	t.Focus() // Initial focus
	t.Width = 60
	inputs[fieldMessage] = t

	t = textinput.New()
	if m.isCaesar() {
		t.Placeholder = fmt.Sprintf("Shift (any integer, default %d)", defaultShift)
		t.CharLimit = 20
		t.Width = 30
		t.Validate = func(s string) error {
			if s == "" || s == "-" {
				return nil // Allow empty for default shift, "-" while typing.
			}
			if _, err := strconv.Atoi(s); err != nil {
				return fmt.Errorf("shift must be an integer")
			}
			return nil
		}
	} else {
		t.Placeholder = "Passphrase"
		t.EchoMode = textinput.EchoPassword
		t.EchoCharacter = '*'
		t.CharLimit = 100
		t.Width = 40
	}
	inputs[fieldKey] = t

	return inputs
}
