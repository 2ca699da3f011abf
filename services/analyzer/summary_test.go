// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package analyzer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_SectionStates(t *testing.T) {
	a := New(loadFixture(t), nil)

	// Only products computed: suppliers and logistics are Unset.
	report := a.Summary(a.AnalyzeProducts(), nil, nil)

	assert.Equal(t, SectionComputed, report.Products.State)
	assert.Equal(t, SectionUnset, report.Suppliers.State)
	assert.Equal(t, SectionUnset, report.Logistics.State)

	// All three computed.
	report = a.Summary(a.AnalyzeProducts(), a.AnalyzeSuppliers(), a.AnalyzeLogistics())
	assert.Equal(t, SectionComputed, report.Products.State)
	assert.Equal(t, SectionComputed, report.Suppliers.State)
	assert.Equal(t, SectionComputed, report.Logistics.State)
}

func TestSummary_EmptyDistinctFromUnset(t *testing.T) {
	ds, err := NewDataset(nil)
	require.NoError(t, err)
	a := New(ds, nil)

	report := a.Summary(a.AnalyzeProducts(), nil, nil)

	assert.Equal(t, SectionEmpty, report.Products.State,
		"ran-and-produced-nothing must not look like never-ran")
	assert.Equal(t, SectionUnset, report.Suppliers.State)
}

func TestSummary_OverallMetrics(t *testing.T) {
	a := New(loadFixture(t), nil)
	report := a.Summary(nil, nil, nil)

	assert.InDelta(t, 38982.34, report.Overall.TotalRevenue, 0.001)
	assert.Equal(t, 2647, report.Overall.TotalUnitsSold)
}

func TestReport_JSONMarkers(t *testing.T) {
	a := New(loadFixture(t), nil)
	report := a.Summary(a.AnalyzeProducts(), nil, nil)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	body := string(data)

	assert.True(t, strings.Contains(body, `"supplier_performance":{"status":"not_computed"}`),
		"unset section must carry an explicit marker, got: %s", body)
	assert.True(t, strings.Contains(body, `"category_performance"`),
		"computed section must inline the table, got: %s", body)
}

func TestSectionState_String(t *testing.T) {
	tests := []struct {
		state SectionState
		want  string
	}{
		{SectionUnset, "not_computed"},
		{SectionEmpty, "empty"},
		{SectionComputed, "computed"},
		{SectionState(42), "not_computed"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("SectionState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
