// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analyzer

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0},  // 1.005 is stored just below .005, rounds down
		{2.675, 2.67}, // same binary-representation effect
		{3.14159, 3.14},
		{0, 0},
		{-1.567, -1.57},
	}

	for _, tt := range tests {
		if got := round2(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMean_Empty(t *testing.T) {
	if got := mean(nil); got != 0 {
		t.Errorf("mean(nil) = %v, want 0", got)
	}
}

func TestSampleStdDev(t *testing.T) {
	if got := sampleStdDev([]float64{5}); got != 0 {
		t.Errorf("stddev of one value = %v, want 0", got)
	}

	// Sample (n-1) deviation of {2, 4, 4, 4, 5, 5, 7, 9} is ~2.138.
	got := sampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2.138) > 0.001 {
		t.Errorf("sampleStdDev = %v, want ~2.138", got)
	}
}

func TestGroupBy_Order(t *testing.T) {
	records := []Record{
		{Route: "B"}, {Route: "A"}, {Route: "B"}, {Route: "C"}, {Route: "A"},
	}

	groups := groupBy(records, func(r *Record) string { return r.Route })
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	wantKeys := []string{"B", "A", "C"}
	for i, g := range groups {
		if g.key != wantKeys[i] {
			t.Errorf("group %d key = %q, want %q (first-appearance order)", i, g.key, wantKeys[i])
		}
	}
	if len(groups[0].records) != 2 || len(groups[1].records) != 2 || len(groups[2].records) != 1 {
		t.Errorf("unexpected group sizes: %d/%d/%d",
			len(groups[0].records), len(groups[1].records), len(groups[2].records))
	}
}
