// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration: reading and writing the
// YAML config file and providing defaults for the cipher tool's policy
// settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultShift is the shift used to prefill interactive forms when the
// config file does not set one.
const DefaultShift = 3

// Config represents the top-level application configuration.
type Config struct {
	// DefaultShift prefills the shift field in the TUI. It never replaces
	// the explicit shift argument required on the command line.
	DefaultShift int `yaml:"default_shift,omitempty"`

	// MaxMessageLength rejects messages of this length or longer when > 0.
	// 0 disables the bound entirely.
	MaxMessageLength int `yaml:"max_message_length,omitempty"`
}

// ValidateMessage checks a message against the configured length bound.
func (c Config) ValidateMessage(message string) error {
	if c.MaxMessageLength > 0 && len(message) >= c.MaxMessageLength {
		return fmt.Errorf("message too long (%d characters, max %d)", len(message), c.MaxMessageLength-1)
	}
	return nil
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "cipherbox", "config.yaml"), nil
}

// fileConfig mirrors Config on disk. DefaultShift is a pointer so that an
// explicit `default_shift: 0` (identity shift) is distinguishable from an
// absent key.
type fileConfig struct {
	DefaultShift     *int `yaml:"default_shift,omitempty"`
	MaxMessageLength int  `yaml:"max_message_length,omitempty"`
}

// LoadConfig reads the config file, returning defaults if it does not exist.
func LoadConfig() (Config, error) {
	cfg := Config{DefaultShift: DefaultShift}

	configPath, err := DefaultConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{DefaultShift: DefaultShift}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	if fc.DefaultShift != nil {
		cfg.DefaultShift = *fc.DefaultShift
	}
	cfg.MaxMessageLength = fc.MaxMessageLength
	if cfg.MaxMessageLength < 0 {
		cfg.MaxMessageLength = 0
	}
	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	if err := EnsureConfigDir(); err != nil {
		return err
	}

	// Marshal through fileConfig so a zero default shift is written out
	// instead of being dropped by omitempty.
	fc := fileConfig{DefaultShift: &cfg.DefaultShift, MaxMessageLength: cfg.MaxMessageLength}
	data, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	if err := os.WriteFile(configPath, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}
	return nil
}
