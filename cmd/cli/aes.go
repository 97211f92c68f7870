// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"cipherbox/internal/cipher"
	"cipherbox/internal/logger"
	"os"

	"github.com/spf13/cobra"
)

var aesCmd = &cobra.Command{
	Use:   "aes",
	Short: "Encrypt or decrypt with AES-256-GCM under a passphrase",
	Long: `Modern-cipher counterpart to the Caesar commands.

The key is derived from the passphrase with scrypt; the output is a single
base64 envelope carrying salt, nonce and ciphertext. Decryption fails for a
wrong passphrase or a tampered envelope.`,
}

func init() {
	aesCmd.AddCommand(aesEncryptCmd)
	aesCmd.AddCommand(aesDecryptCmd)
}

var aesEncryptCmd = &cobra.Command{
	Use:     "encrypt <passphrase> <message>",
	Aliases: []string{"e"},
	Short:   "Seal a message under a passphrase",
	Example: "  cbx aes encrypt \"MyPassword123\" \"Secret Message\"",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		passphrase, message := args[0], args[1]
		if err := cfg.ValidateMessage(message); err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var envelope string
		var steps []cipher.Step
		var err error
		if showSteps {
			envelope, steps, err = cipher.SealAESSteps(message, passphrase)
		} else {
			envelope, err = cipher.SealAES(message, passphrase)
		}
		if err != nil {
			logger.Error("aes encryption failed", "error", err)
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printReport([]reportRow{
			{"Original Text", message},
			{"Cipher Text", envelope},
		})
		if showSteps {
			printSteps(steps)
		}
	},
}

var aesDecryptCmd = &cobra.Command{
	Use:     "decrypt <passphrase> <envelope>",
	Aliases: []string{"d"},
	Short:   "Open a sealed message",
	Example: "  cbx aes decrypt \"MyPassword123\" \"<base64 envelope>\"",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		passphrase, envelope := args[0], args[1]

		plaintext, err := cipher.OpenAES(envelope, passphrase)
		if err != nil {
			logger.Error("aes decryption failed", "error", err)
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printReport([]reportRow{
			{"Cipher Text", envelope},
			{"Plain Text", plaintext},
		})
	},
}
