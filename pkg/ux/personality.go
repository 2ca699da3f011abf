// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"strings"
	"sync"
)

// Mode controls how much styling the CLI emits.
type Mode int

const (
	// ModeStyled renders colors, icons, and boxes.
	ModeStyled Mode = iota

	// ModeMachine emits plain prefixed lines for piping and CI.
	ModeMachine
)

var (
	currentMode = ModeStyled
	modeMu      sync.RWMutex
)

// GetMode returns the current output mode.
func GetMode() Mode {
	modeMu.RLock()
	defer modeMu.RUnlock()
	return currentMode
}

// SetMode updates the output mode.
func SetMode(m Mode) {
	modeMu.Lock()
	defer modeMu.Unlock()
	currentMode = m
}

// Plain reports whether styled output is disabled.
func Plain() bool {
	return GetMode() == ModeMachine
}

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) Mode {
	switch strings.ToLower(s) {
	case "machine", "plain", "quiet", "q":
		return ModeMachine
	default:
		return ModeStyled
	}
}

// InitMode initializes the output mode from environment and terminal state.
func InitMode() {
	if env := os.Getenv("CHAINSIGHT_OUTPUT"); env != "" {
		SetMode(ParseMode(env))
		return
	}

	// Non-interactive contexts get machine output
	if !isTerminal() {
		SetMode(ModeMachine)
		return
	}

	SetMode(ModeStyled)
}

// isTerminal checks if stdout is a terminal.
func isTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
