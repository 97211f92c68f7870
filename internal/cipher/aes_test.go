// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cipher

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	for _, plaintext := range []string{"", "Secret Message", "unicode: héllo 世界"} {
		envelope, err := SealAES(plaintext, "MyPassword123")
		require.NoError(t, err)
		require.NotEmpty(t, envelope)

		got, err := OpenAES(envelope, "MyPassword123")
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestSealIsRandomized(t *testing.T) {
	a, err := SealAES("same input", "pw")
	require.NoError(t, err)
	b, err := SealAES("same input", "pw")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpenWrongPassphrase(t *testing.T) {
	envelope, err := SealAES("Secret Message", "right")
	require.NoError(t, err)

	_, err = OpenAES(envelope, "wrong")
	require.Error(t, err)
}

func TestOpenMalformedEnvelope(t *testing.T) {
	// Not base64 at all.
	_, err := OpenAES("not base64 at all!!!", "pw")
	require.ErrorIs(t, err, ErrMalformedEnvelope)

	// Valid base64 but too short to hold salt and nonce.
	short := base64.StdEncoding.EncodeToString([]byte("tiny"))
	_, err = OpenAES(short, "pw")
	require.ErrorIs(t, err, ErrMalformedEnvelope)

	_, err = OpenAES("", "pw")
	require.Error(t, err)
}

func TestOpenTamperedCiphertext(t *testing.T) {
	envelope, err := SealAES("Secret Message", "pw")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = OpenAES(tampered, "pw")
	require.Error(t, err)
}

func TestSealAESSteps(t *testing.T) {
	envelope, steps, err := SealAESSteps("Secret Message", "MyPassword123")
	require.NoError(t, err)
	require.Len(t, steps, 4)
	assert.Equal(t, "Initialize", steps[0].Title)
	assert.Equal(t, "Envelope", steps[3].Title)

	// Trace must not leak the passphrase.
	for _, s := range steps {
		assert.NotContains(t, s.Details, "MyPassword123")
		assert.NotContains(t, s.Description, "MyPassword123")
	}

	got, err := OpenAES(envelope, "MyPassword123")
	require.NoError(t, err)
	assert.Equal(t, "Secret Message", got)
}
