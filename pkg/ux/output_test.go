// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"machine", ModeMachine},
		{"plain", ModeMachine},
		{"q", ModeMachine},
		{"styled", ModeStyled},
		{"", ModeStyled},
		{"anything", ModeStyled},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseMode(tt.in); got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyValues_Alignment(t *testing.T) {
	SetMode(ModeMachine)
	defer SetMode(ModeStyled)

	out := KeyValues([][2]string{
		{"Total Revenue", "1234.56"},
		{"Units", "42"},
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	// Values should start at the same column.
	if strings.Index(lines[0], "1234.56") != strings.Index(lines[1], "42") {
		t.Errorf("values not aligned:\n%s", out)
	}
}

func TestPriorityBadge_Machine(t *testing.T) {
	SetMode(ModeMachine)
	defer SetMode(ModeStyled)

	for _, p := range []string{"High", "Medium", "Low"} {
		if got := PriorityBadge(p); got != p {
			t.Errorf("machine mode should pass priority through, got %q", got)
		}
	}
}

func TestSetMode_Concurrent(t *testing.T) {
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			SetMode(ModeMachine)
		}
		close(done)
	}()
	for i := 0; i < 100; i++ {
		_ = GetMode()
	}
	<-done
	SetMode(ModeStyled)
}
