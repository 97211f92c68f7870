// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"testing"

	"cipherbox/internal/cipher"
	"cipherbox/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeString feeds a string into the focused input rune by rune.
func typeString(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func newTestModel() *model {
	m := InitialModel()
	return &m
}

func TestInitialStateIsModeSelect(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, stateModeSelect, m.currentState)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "Caesar Encrypt")
}

func TestModeSelectNavigation(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyMsg("j"))
	m = next.(*model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyMsg("k"))
	m = next.(*model)
	assert.Equal(t, 0, m.cursor)

	// Cursor clamps at the top.
	next, _ = m.Update(keyMsg("k"))
	m = next.(*model)
	assert.Equal(t, 0, m.cursor)
}

func TestEnterOpensForm(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyMsg("enter"))
	m = next.(*model)
	require.Equal(t, stateInputForm, m.currentState)
	assert.Equal(t, modeCaesarEncrypt, m.currentMode)
	require.Len(t, m.inputs, fieldCount)
	assert.Contains(t, m.View(), "Message")
}

func TestCaesarEncryptFlow(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyMsg("enter")) // select Caesar Encrypt
	m = next.(*model)

	var tm tea.Model = m
	tm = typeString(t, tm, "Hello World")
	tm, _ = tm.Update(keyMsg("tab"))
	tm = typeString(t, tm, "3")

	tm, cmd := tm.Update(keyMsg("enter"))
	m = tm.(*model)
	require.NotNil(t, cmd, "submit should produce a transform command")

	msg := cmd()
	done, ok := msg.(transformDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "Khoor Zruog", done.result)
	assert.NotEmpty(t, done.steps)

	tm, _ = m.Update(done)
	m = tm.(*model)
	assert.Equal(t, stateResult, m.currentState)
	assert.Contains(t, m.View(), "Khoor Zruog")
}

func TestEmptyShiftFallsBackToDefault(t *testing.T) {
	m := newTestModel()
	cfgMsg := configLoadedMsg{cfg: config.Config{DefaultShift: 5}}
	next, _ := m.Update(cfgMsg)
	m = next.(*model)

	next, _ = m.Update(keyMsg("enter"))
	m = next.(*model)

	var tm tea.Model = m
	tm = typeString(t, tm, "abc")
	tm, cmd := tm.Update(keyMsg("enter")) // key field left empty
	require.NotNil(t, cmd)

	done := cmd().(transformDoneMsg)
	assert.Equal(t, cipher.Encrypt("abc", 5), done.result)
}

func TestOversizedMessageShowsFormError(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(configLoadedMsg{cfg: config.Config{DefaultShift: 3, MaxMessageLength: 5}})
	m = next.(*model)

	next, _ = m.Update(keyMsg("enter"))
	m = next.(*model)

	var tm tea.Model = m
	tm = typeString(t, tm, "too long")
	tm, cmd := tm.Update(keyMsg("enter"))
	m = tm.(*model)

	assert.Nil(t, cmd)
	assert.Equal(t, stateInputForm, m.currentState)
	assert.NotEmpty(t, m.formError)
	assert.Contains(t, m.View(), "Error:")
}

func TestEscReturnsToModeSelect(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(keyMsg("enter"))
	m = next.(*model)
	require.Equal(t, stateInputForm, m.currentState)

	next, _ = m.Update(keyMsg("esc"))
	m = next.(*model)
	assert.Equal(t, stateModeSelect, m.currentState)
}

func TestAESDecryptErrorSurfacesInResultView(t *testing.T) {
	m := newTestModel()

	req := transformRequest{mode: modeAESDecrypt, message: "not a valid envelope", passphrase: "pw"}
	msg := runTransformCmd(req)()
	done, ok := msg.(transformDoneMsg)
	require.True(t, ok)
	require.Error(t, done.err)

	m.currentMode = modeAESDecrypt
	m.request = req
	next, _ := m.Update(done)
	m = next.(*model)
	assert.Equal(t, stateResult, m.currentState)
	assert.Contains(t, m.View(), "Error:")
}
