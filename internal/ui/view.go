// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	var body string
	switch m.currentState {
	case stateModeSelect:
		body = m.viewModeSelect()
	case stateInputForm:
		body = m.viewInputForm()
	case stateResult:
		body = m.viewResult()
	}

	header := titleStyle.Render("Cipherbox")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.viewFooter())
}

func (m *model) viewModeSelect() string {
	var b strings.Builder
	b.WriteString(statusStyle.Render("Select a cipher operation:"))
	b.WriteString("\n\n")

	for i, md := range allModes {
		cursor := "  "
		line := fmt.Sprintf("%-16s %s", md.Title(), dimStyle.Render(md.Description()))
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(md.Title()) + strings.Repeat(" ", max(1, 17-len(md.Title()))) + dimStyle.Render(md.Description())
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m *model) viewInputForm() string {
	var b strings.Builder
	b.WriteString(statusStyle.Render(m.currentMode.Title()))
	b.WriteString("\n\n")

	messageLabel := "Message"
	if m.currentMode == modeAESDecrypt {
		messageLabel = "Envelope"
	}
	keyLabel := "Shift"
	if !m.currentMode.isCaesar() {
		keyLabel = "Passphrase"
	}

	b.WriteString(labelStyle.Render(messageLabel) + "\n")
	b.WriteString(m.inputs[fieldMessage].View() + "\n\n")
	b.WriteString(labelStyle.Render(keyLabel) + "\n")
	b.WriteString(m.inputs[fieldKey].View() + "\n")

	if m.formError != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.formError) + "\n")
	}
	return b.String()
}

func (m *model) viewResult() string {
	var b strings.Builder
	b.WriteString(statusStyle.Render(m.currentMode.Title()))
	b.WriteString("\n\n")

	if m.runErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.runErr)))
		b.WriteString("\n")
		return b.String()
	}

	inputLabel, outputLabel := "Original Text", "Cipher Text"
	if m.currentMode == modeCaesarDecrypt || m.currentMode == modeAESDecrypt {
		inputLabel, outputLabel = "Cipher Text", "Plain Text"
	}

	b.WriteString(labelStyle.Render(inputLabel+":") + " " + m.request.message + "\n")
	if m.currentMode.isCaesar() {
		b.WriteString(labelStyle.Render("Shift Value:") + " " + strconv.Itoa(m.request.shift) + "\n")
	}
	b.WriteString(labelStyle.Render(outputLabel+":") + " " + successStyle.Render(m.result) + "\n")

	if len(m.steps) > 0 {
		b.WriteString("\n" + statusStyle.Render("Steps") + "\n")
		b.WriteString(stepsBorderStyle.Render(m.stepView.View()))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSteps formats the transform trace for the viewport.
func (m *model) renderSteps() string {
	var b strings.Builder
	for _, s := range m.steps {
		num := stepNumStyle.Render(fmt.Sprintf("[%3d]", s.Number))
		line := fmt.Sprintf("%s %s: %s", num, s.Title, s.Description)
		if s.Details != "" {
			line += " " + stepKeepStyle.Render("("+s.Details+")")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *model) viewFooter() string {
	sep := footerSeparatorStyle.Render(" | ")
	entry := func(k key.Binding) string {
		h := k.Help()
		return footerKeyStyle.Render(h.Key) + " " + footerStyle.Render(h.Desc)
	}

	var parts []string
	switch m.currentState {
	case stateModeSelect:
		parts = []string{entry(m.keys.Up), entry(m.keys.Down), entry(m.keys.Enter), entry(m.keys.Quit)}
	case stateInputForm:
		parts = []string{entry(m.keys.Tab), entry(m.keys.Enter), entry(m.keys.Esc)}
	case stateResult:
		parts = []string{entry(m.keys.Up), entry(m.keys.Down), entry(m.keys.Enter), entry(m.keys.Esc), entry(m.keys.Quit)}
	}
	return "\n" + strings.Join(parts, sep)
}
