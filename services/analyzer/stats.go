// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analyzer

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// round2 rounds to two decimal places, the precision of every derived
// aggregate.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// sampleStdDev returns the sample standard deviation (n-1 denominator),
// or 0 when fewer than two values exist.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// collect extracts one numeric field from a record slice.
func collect(records []Record, field func(*Record) float64) []float64 {
	out := make([]float64, len(records))
	for i := range records {
		out[i] = field(&records[i])
	}
	return out
}

// group is one group-by bucket. Buckets keep first-appearance order of
// their keys, matching the source table's row order.
type group struct {
	key     string
	records []Record
}

// groupBy buckets records by the given key, preserving first-appearance
// key order and source row order within each bucket.
func groupBy(records []Record, key func(*Record) string) []group {
	index := make(map[string]int)
	var groups []group
	for i := range records {
		k := key(&records[i])
		gi, ok := index[k]
		if !ok {
			gi = len(groups)
			index[k] = gi
			groups = append(groups, group{key: k})
		}
		groups[gi].records = append(groups[gi].records, records[i])
	}
	return groups
}
