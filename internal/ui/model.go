// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive terminal interface: a mode-select
// list, an input form per cipher operation, and a result view with the
// per-character transform trace.
package ui

import (
	"cipherbox/internal/cipher"
	"cipherbox/internal/config"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	currentState state
	keys         KeyMap
	cfg          config.Config

	// Mode selection
	cursor int

	// Input form
	currentMode mode
	inputs      []textinput.Model
	focusIndex  int
	formError   string

	// Result view
	request  transformRequest
	result   string
	steps    []cipher.Step
	stepView viewport.Model
	runErr   error

	width  int
	height int
}

// InitialModel creates the starting model for the TUI.
func InitialModel() model {
	return model{
		currentState: stateModeSelect,
		keys:         DefaultKeyMap,
		cfg:          config.Config{DefaultShift: config.DefaultShift},
		stepView:     viewport.New(80, 12),
	}
}

func (m *model) Init() tea.Cmd {
	return loadConfigCmd()
}
