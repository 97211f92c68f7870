// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"cipherbox/internal/cipher"
	"cipherbox/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// transformRequest carries one validated cipher operation from the form to
// the command that executes it.
type transformRequest struct {
	mode       mode
	message    string
	shift      int    // Caesar modes only
	passphrase string // AES modes only
}

func loadConfigCmd() tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.LoadConfig()
		return configLoadedMsg{cfg: cfg, err: err}
	}
}

// runTransformCmd executes the requested cipher operation off the update
// loop. Every operation returns a step trace for the result view.
func runTransformCmd(req transformRequest) tea.Cmd {
	return func() tea.Msg {
		switch req.mode {
		case modeCaesarEncrypt:
			result, steps := cipher.EncryptSteps(req.message, req.shift)
			return transformDoneMsg{result: result, steps: steps}
		case modeCaesarDecrypt:
			result, steps := cipher.DecryptSteps(req.message, req.shift)
			return transformDoneMsg{result: result, steps: steps}
		case modeAESEncrypt:
			result, steps, err := cipher.SealAESSteps(req.message, req.passphrase)
			return transformDoneMsg{result: result, steps: steps, err: err}
		case modeAESDecrypt:
			result, err := cipher.OpenAES(req.message, req.passphrase)
			return transformDoneMsg{result: result, err: err}
		default:
			return transformDoneMsg{}
		}
	}
}
