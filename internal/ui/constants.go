// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateModeSelect state = iota
	stateInputForm
	stateResult
)

// mode identifies one of the selectable cipher operations.
type mode int

const (
	modeCaesarEncrypt mode = iota
	modeCaesarDecrypt
	modeAESEncrypt
	modeAESDecrypt
)

// allModes is the order the mode-select list presents operations in.
var allModes = []mode{modeCaesarEncrypt, modeCaesarDecrypt, modeAESEncrypt, modeAESDecrypt}

func (m mode) Title() string {
	switch m {
	case modeCaesarEncrypt:
		return "Caesar Encrypt"
	case modeCaesarDecrypt:
		return "Caesar Decrypt"
	case modeAESEncrypt:
		return "AES Encrypt"
	case modeAESDecrypt:
		return "AES Decrypt"
	default:
		return "Unknown"
	}
}

func (m mode) Description() string {
	switch m {
	case modeCaesarEncrypt:
		return "Shift letters forward by an integer amount"
	case modeCaesarDecrypt:
		return "Reverse a Caesar shift"
	case modeAESEncrypt:
		return "Seal a message under a passphrase (AES-256-GCM)"
	case modeAESDecrypt:
		return "Open a sealed base64 envelope"
	default:
		return ""
	}
}

// isCaesar reports whether the mode takes an integer shift (as opposed to a
// passphrase).
func (m mode) isCaesar() bool {
	return m == modeCaesarEncrypt || m == modeCaesarDecrypt
}

const (
	headerHeight = 1 // Height reserved for the main title header.
	footerHeight = 1 // Height reserved for the key help footer.
)
