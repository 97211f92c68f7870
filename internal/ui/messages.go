// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Message types for the Bubble Tea Model-View-Update loop.

package ui

import (
	"cipherbox/internal/cipher"
	"cipherbox/internal/config"
)

// configLoadedMsg delivers the application config at startup.
type configLoadedMsg struct {
	cfg config.Config
	err error
}

// transformDoneMsg delivers the outcome of a cipher operation.
type transformDoneMsg struct {
	result string
	steps  []cipher.Step
	err    error
}
