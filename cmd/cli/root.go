// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"cipherbox/internal/cipher"
	"cipherbox/internal/config"
	"cipherbox/internal/logger"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	labelColor   = color.New(color.FgYellow)
	stepColor    = color.New(color.FgBlue)
)

// cfg is loaded once per invocation by the root PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "cbx",
	Short: "Cipherbox CLI",
	Long: `A command-line cipher toolkit.

Encrypts and decrypts text with a classical Caesar shift (any integer shift,
case preserved, non-letters passed through) or with AES-256-GCM under a
passphrase-derived key. Run without arguments for the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func RunCLI() {
	logger.InitLogger(false)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var showSteps bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&showSteps, "steps", false, "print the per-character transform trace")
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(aesCmd)
	rootCmd.AddCommand(configCmd)
}

var encryptCmd = &cobra.Command{
	Use:     "encrypt <shift> <message>",
	Aliases: []string{"e"},
	Short:   "Encrypt a message with a Caesar shift",
	Long: `Shifts every ASCII letter of the message forward by the given amount,
preserving case and leaving digits, punctuation and whitespace untouched.
Any integer shift is accepted; it is reduced modulo 26.`,
	Example: "  cbx encrypt 3 \"Hello World\"\n  cbx e 13 \"attack at dawn\"\n  cbx encrypt -- -3 \"negative shifts work too\"",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCaesarAction("encrypt", args)
	},
}

var decryptCmd = &cobra.Command{
	Use:     "decrypt <shift> <message>",
	Aliases: []string{"d"},
	Short:   "Decrypt a Caesar-shifted message",
	Long: `Reverses a Caesar encryption performed with the same shift.
Equivalent to encrypting with the negated shift.`,
	Example: "  cbx decrypt 3 \"Khoor Zruog\"\n  cbx d 13 \"nggnpx ng qnja\"",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCaesarAction("decrypt", args)
	},
}

// runCaesarAction validates the shift and message arguments, applies the
// transform and prints the result report. Validation failures exit 1.
func runCaesarAction(action string, args []string) {
	shift, err := strconv.Atoi(args[0])
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: invalid shift value '%s' (expected an integer)\n", args[0])
		os.Exit(1)
	}
	message := args[1]
	if err := cfg.ValidateMessage(message); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var result string
	var steps []cipher.Step
	var rows []reportRow

	switch action {
	case "encrypt":
		if showSteps {
			result, steps = cipher.EncryptSteps(message, shift)
		} else {
			result = cipher.Encrypt(message, shift)
		}
		rows = []reportRow{
			{"Original Text", message},
			{"Shift Value", strconv.Itoa(shift)},
			{"Cipher Text", result},
		}
	case "decrypt":
		if showSteps {
			result, steps = cipher.DecryptSteps(message, shift)
		} else {
			result = cipher.Decrypt(message, shift)
		}
		rows = []reportRow{
			{"Cipher Text", message},
			{"Shift Value", strconv.Itoa(shift)},
			{"Plain Text", result},
		}
	default:
		errorColor.Fprintf(os.Stderr, "Internal Error: invalid action '%s'\n", action)
		os.Exit(1)
	}

	logger.Debug("caesar transform complete", "action", action, "shift", shift, "length", len(message))
	printReport(rows)
	if showSteps {
		printSteps(steps)
	}
}
