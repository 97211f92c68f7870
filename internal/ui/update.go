// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeStepView()
		return m, nil

	case configLoadedMsg:
		// A broken config file is not fatal for the TUI; defaults apply.
		if msg.err == nil {
			m.cfg = msg.cfg
		}
		return m, nil

	case transformDoneMsg:
		m.result = msg.result
		m.steps = msg.steps
		m.runErr = msg.err
		m.currentState = stateResult
		m.stepView.SetContent(m.renderSteps())
		m.stepView.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch m.currentState {
		case stateModeSelect:
			return m.updateModeSelect(msg)
		case stateInputForm:
			return m.updateInputForm(msg)
		case stateResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m *model) updateModeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(allModes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		m.currentMode = allModes[m.cursor]
		m.inputs = createTransformForm(m.currentMode, m.cfg.DefaultShift)
		m.focusIndex = fieldMessage
		m.formError = ""
		m.currentState = stateInputForm
		return m, textinput.Blink
	}
	return m, nil
}

func (m *model) updateInputForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Esc):
		m.currentState = stateModeSelect
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		if key.Matches(msg, m.keys.Tab) {
			m.focusIndex = (m.focusIndex + 1) % fieldCount
		} else {
			m.focusIndex = (m.focusIndex + fieldCount - 1) % fieldCount
		}
		cmds := make([]tea.Cmd, 0, fieldCount)
		for i := range m.inputs {
			if i == m.focusIndex {
				cmds = append(cmds, m.inputs[i].Focus())
			} else {
				m.inputs[i].Blur()
			}
		}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.Enter):
		return m.submitForm()
	}

	// Pass all other keys to the focused input.
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// submitForm validates the form fields and launches the transform.
func (m *model) submitForm() (tea.Model, tea.Cmd) {
	message := m.inputs[fieldMessage].Value()
	keyValue := m.inputs[fieldKey].Value()

	if err := m.cfg.ValidateMessage(message); err != nil {
		m.formError = err.Error()
		return m, nil
	}

	req := transformRequest{mode: m.currentMode, message: message}
	if m.currentMode.isCaesar() {
		if keyValue == "" {
			req.shift = m.cfg.DefaultShift
		} else {
			shift, err := strconv.Atoi(keyValue)
			if err != nil {
				m.formError = "shift must be an integer"
				return m, nil
			}
			req.shift = shift
		}
	} else {
		req.passphrase = keyValue
	}

	m.formError = ""
	m.request = req
	return m, runTransformCmd(req)
}

func (m *model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Esc):
		m.currentState = stateModeSelect
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		// Re-open the form for another run of the same mode.
		m.inputs = createTransformForm(m.currentMode, m.cfg.DefaultShift)
		m.focusIndex = fieldMessage
		m.formError = ""
		m.currentState = stateInputForm
		return m, textinput.Blink
	}

	// Scroll the step trace.
	var cmd tea.Cmd
	m.stepView, cmd = m.stepView.Update(msg)
	return m, cmd
}

func (m *model) resizeStepView() {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	height := m.height - headerHeight - footerHeight - 10
	if height < 3 {
		height = 3
	}
	m.stepView.Width = width
	m.stepView.Height = height
}
