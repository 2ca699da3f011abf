// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"reflect"
	"testing"

	"github.com/AleutianAI/chainsight/services/analyzer"
)

func pipelineDataset(t *testing.T) *analyzer.Dataset {
	t.Helper()
	ds, err := analyzer.NewDataset([]analyzer.Record{
		{
			ProductType: "haircare", SKU: "SKU0", Revenue: 8000,
			UnitsSold: 400, StockLevel: 5, LeadTime: 25, DefectRate: 4,
			ManufacturingCost: 60, Cost: 300, ShippingCost: 6, ShippingTime: 4,
			Carrier: "Carrier A", SupplierName: "Supplier 1", Location: "Mumbai",
			TransportMode: "Road", Route: "Route A",
			InspectionResult: analyzer.InspectionFail,
		},
		{
			ProductType: "skincare", SKU: "SKU1", Revenue: 5000,
			UnitsSold: 250, StockLevel: 80, LeadTime: 5, DefectRate: 0.5,
			ManufacturingCost: 20, Cost: 150, ShippingCost: 3, ShippingTime: 2,
			Carrier: "Carrier B", SupplierName: "Supplier 2", Location: "Delhi",
			TransportMode: "Air", Route: "Route B",
			InspectionResult: analyzer.InspectionPass,
		},
	})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

func TestRunPipeline_AllSectionsComputed(t *testing.T) {
	result := runPipeline(pipelineDataset(t), nil)

	if result.report.Products.State != analyzer.SectionComputed {
		t.Errorf("products section %v, want computed", result.report.Products.State)
	}
	if result.report.Suppliers.State != analyzer.SectionComputed {
		t.Errorf("suppliers section %v, want computed", result.report.Suppliers.State)
	}
	if result.report.Logistics.State != analyzer.SectionComputed {
		t.Errorf("logistics section %v, want computed", result.report.Logistics.State)
	}
	if result.report.Overall.TotalUnitsSold != 650 {
		t.Errorf("TotalUnitsSold = %d, want 650", result.report.Overall.TotalUnitsSold)
	}
}

func TestRunPipeline_FlagsRiskySKU(t *testing.T) {
	result := runPipeline(pipelineDataset(t), nil)

	// SKU0 trips all four predicates: stock 5 < 20, lead 25 > 20,
	// defect 4 > 3, manufacturing cost 60 > mean 40.
	if len(result.risks) != 1 {
		t.Fatalf("got %d risk factors, want 1", len(result.risks))
	}
	r := result.risks[0]
	if r.SKU != "SKU0" || r.TotalRiskScore != 4 {
		t.Errorf("risk = %+v, want SKU0 with score 4", r)
	}
}

func TestRiskFlags(t *testing.T) {
	got := riskFlags(analyzer.RiskFactor{
		StockRisk: true, QualityRisk: true, TotalRiskScore: 2,
	})
	want := []string{"stock", "quality"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("riskFlags = %v, want %v", got, want)
	}

	if flags := riskFlags(analyzer.RiskFactor{}); len(flags) != 0 {
		t.Errorf("no predicates should yield no flags, got %v", flags)
	}
}
