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

// Summary assembles the report from the overall scalars plus whichever
// analysis tables the caller has computed. Passing nil for a table
// marks that section "not computed", which is distinct from a computed
// table with no rows.
func (a *Analyzer) Summary(products *ProductMetrics, suppliers *SupplierMetrics, logistics *LogisticsMetrics) *Report {
	return &Report{
		Overall:   a.Overall(),
		Products:  productSection(products),
		Suppliers: supplierSection(suppliers),
		Logistics: logisticsSection(logistics),
	}
}

func productSection(m *ProductMetrics) Section[*ProductMetrics] {
	if m == nil {
		return Section[*ProductMetrics]{State: SectionUnset}
	}
	if len(m.CategoryPerformance) == 0 && len(m.TopRevenueProducts) == 0 && len(m.StockAlerts) == 0 {
		return Section[*ProductMetrics]{State: SectionEmpty, Value: m}
	}
	return Section[*ProductMetrics]{State: SectionComputed, Value: m}
}

func supplierSection(m *SupplierMetrics) Section[*SupplierMetrics] {
	if m == nil {
		return Section[*SupplierMetrics]{State: SectionUnset}
	}
	if len(m.SupplierPerformance) == 0 && len(m.SupplierLocations) == 0 && len(m.QualityIssues) == 0 {
		return Section[*SupplierMetrics]{State: SectionEmpty, Value: m}
	}
	return Section[*SupplierMetrics]{State: SectionComputed, Value: m}
}

func logisticsSection(m *LogisticsMetrics) Section[*LogisticsMetrics] {
	if m == nil {
		return Section[*LogisticsMetrics]{State: SectionUnset}
	}
	if len(m.CarrierPerformance) == 0 && len(m.TransportCostAnalysis) == 0 && len(m.RouteEfficiency) == 0 {
		return Section[*LogisticsMetrics]{State: SectionEmpty, Value: m}
	}
	return Section[*LogisticsMetrics]{State: SectionComputed, Value: m}
}
