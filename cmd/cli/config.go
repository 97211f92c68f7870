// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"cipherbox/internal/config"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit cipherbox settings",
	Long: `Reads and writes the YAML config file (default_shift, max_message_length).
The same file drives both the CLI and the TUI.`,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetShiftCmd)
	configCmd.AddCommand(configSetMaxLengthCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.DefaultConfigPath()
		if err == nil {
			statusColor.Printf("Config file: %s\n", path)
		}
		fmt.Printf("default_shift:      %d\n", cfg.DefaultShift)
		if cfg.MaxMessageLength > 0 {
			fmt.Printf("max_message_length: %d\n", cfg.MaxMessageLength)
		} else {
			fmt.Println("max_message_length: 0 (unlimited)")
		}
	},
}

var configSetShiftCmd = &cobra.Command{
	Use:   "set-shift <shift>",
	Short: "Set the default shift used to prefill the TUI",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		shift, err := strconv.Atoi(args[0])
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: invalid shift value '%s' (expected an integer)\n", args[0])
			os.Exit(1)
		}

		cfg.DefaultShift = shift
		if err := config.SaveConfig(cfg); err != nil {
			errorColor.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
			os.Exit(1)
		}
		successColor.Printf("default_shift set to %d\n", shift)
	},
}

var configSetMaxLengthCmd = &cobra.Command{
	Use:   "set-max-length <length>",
	Short: "Set the maximum accepted message length (0 = unlimited)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		length, err := strconv.Atoi(args[0])
		if err != nil || length < 0 {
			errorColor.Fprintf(os.Stderr, "Error: invalid length '%s' (expected a non-negative integer)\n", args[0])
			os.Exit(1)
		}

		cfg.MaxMessageLength = length
		if err := config.SaveConfig(cfg); err != nil {
			errorColor.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
			os.Exit(1)
		}
		if length == 0 {
			successColor.Println("max_message_length cleared (unlimited)")
		} else {
			successColor.Printf("max_message_length set to %d\n", length)
		}
	},
}
