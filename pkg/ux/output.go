// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the ChainSight CLI.
package ux

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChainSight palette - ocean teals with alert accents
var (
	ColorTeal    = lipgloss.Color("#20B9B4") // Primary brand color
	ColorTealDim = lipgloss.Color("#16858E") // Borders, accents
	ColorSlate   = lipgloss.Color("#2C4A54") // Muted text
	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Box       lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorTeal),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDim).
		Padding(0, 1),
}

// Title prints a styled section title.
func Title(text string) {
	if Plain() {
		fmt.Printf("== %s ==\n", text)
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// Success prints a success message with checkmark.
func Success(text string) {
	if Plain() {
		fmt.Fprintf(os.Stdout, "OK: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Success.Render("✓"), Styles.Success.Render(text))
}

// Warning prints a warning message.
func Warning(text string) {
	if Plain() {
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Warning.Render("⚠"), Styles.Warning.Render(text))
}

// Error prints an error message.
func Error(text string) {
	if Plain() {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Error.Render("✗"), Styles.Error.Render(text))
}

// Info prints an informational message.
func Info(text string) {
	if Plain() {
		fmt.Println(text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Muted.Render("│"), text)
}

// Box prints titled content in a rounded box.
func Box(title, content string) {
	if Plain() {
		fmt.Printf("%s:\n%s\n", title, content)
		return
	}
	boxStyle := Styles.Box.Width(64)
	fmt.Println(boxStyle.Render(Styles.Title.Render(title) + "\n" + content))
}

// KeyValues formats label/value pairs into aligned lines, for metric
// blocks inside a Box or plain output.
func KeyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := fmt.Sprintf("%-*s", width, p[0])
		if Plain() {
			fmt.Fprintf(&b, "%s  %s", label, p[1])
		} else {
			fmt.Fprintf(&b, "%s  %s", Styles.Muted.Render(label), Styles.Bold.Render(p[1]))
		}
	}
	return b.String()
}

// PriorityBadge renders a recommendation priority with its severity color.
func PriorityBadge(priority string) string {
	if Plain() {
		return priority
	}
	switch strings.ToLower(priority) {
	case "high":
		return Styles.Error.Render(priority)
	case "medium":
		return Styles.Warning.Render(priority)
	default:
		return Styles.Muted.Render(priority)
	}
}
