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
	"fmt"
	"sort"

	"github.com/AleutianAI/chainsight/pkg/logging"
)

// Fixed policy thresholds. These mirror the reference behavior exactly
// (strict comparisons, cost relative to the dataset mean) and are
// deliberately not configurable.
const (
	lowStockThreshold       = 20
	leadTimeRiskThreshold   = 20.0
	defectRateRiskThreshold = 3.0
	riskReportingFloor      = 2
	topRevenueCount         = 10
)

// Analyzer derives all analysis tables from one immutable snapshot.
//
// Every method recomputes its table from scratch; there is no cached or
// incremental state, so calling a method twice on the same snapshot
// yields identical results. The caller composes the returned tables
// into a Report via Summary.
type Analyzer struct {
	ds  *Dataset
	log *logging.Logger
}

// New creates an Analyzer over the given snapshot. A nil logger falls
// back to the shared default.
func New(ds *Dataset, log *logging.Logger) *Analyzer {
	if log == nil {
		log = logging.Default()
	}
	return &Analyzer{ds: ds, log: log}
}

// AnalyzeProducts computes the category rollup, the top-revenue
// listing, and the low-stock alert table.
func (a *Analyzer) AnalyzeProducts() *ProductMetrics {
	records := a.ds.Records()

	var categories []CategoryStats
	for _, g := range groupBy(records, func(r *Record) string { return r.ProductType }) {
		units := 0
		revenue := 0.0
		for i := range g.records {
			units += g.records[i].UnitsSold
			revenue += g.records[i].Revenue
		}
		categories = append(categories, CategoryStats{
			ProductType:    g.key,
			TotalRevenue:   round2(revenue),
			TotalUnitsSold: units,
			AvgStockLevel:  round2(mean(collect(g.records, func(r *Record) float64 { return float64(r.StockLevel) }))),
			AvgDefectRate:  round2(mean(collect(g.records, func(r *Record) float64 { return r.DefectRate }))),
		})
	}

	// Stable sort keeps original row order for revenue ties.
	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Revenue > ranked[j].Revenue })
	if len(ranked) > topRevenueCount {
		ranked = ranked[:topRevenueCount]
	}
	top := make([]ProductRevenue, 0, len(ranked))
	for i := range ranked {
		top = append(top, ProductRevenue{
			SKU:         ranked[i].SKU,
			ProductType: ranked[i].ProductType,
			Revenue:     ranked[i].Revenue,
			UnitsSold:   ranked[i].UnitsSold,
		})
	}

	var alerts []StockAlert
	for i := range records {
		if records[i].StockLevel < lowStockThreshold {
			alerts = append(alerts, StockAlert{
				SKU:             records[i].SKU,
				ProductType:     records[i].ProductType,
				StockLevel:      records[i].StockLevel,
				ProductLeadTime: records[i].ProductLeadTime,
			})
		}
	}

	a.log.Debug("product analysis complete",
		"categories", len(categories), "stock_alerts", len(alerts))

	return &ProductMetrics{
		CategoryPerformance: categories,
		TopRevenueProducts:  top,
		StockAlerts:         alerts,
	}
}

// AnalyzeSuppliers computes the supplier rollup, the shipment count per
// (supplier, location) pair, and the failed-inspection listing.
func (a *Analyzer) AnalyzeSuppliers() *SupplierMetrics {
	records := a.ds.Records()

	var suppliers []SupplierStats
	for _, g := range groupBy(records, func(r *Record) string { return r.SupplierName }) {
		volume := 0
		for i := range g.records {
			volume += g.records[i].ProductionVolume
		}
		suppliers = append(suppliers, SupplierStats{
			SupplierName:          g.key,
			AvgLeadTime:           round2(mean(collect(g.records, func(r *Record) float64 { return r.LeadTime }))),
			AvgManufacturingCost:  round2(mean(collect(g.records, func(r *Record) float64 { return r.ManufacturingCost }))),
			AvgDefectRate:         round2(mean(collect(g.records, func(r *Record) float64 { return r.DefectRate }))),
			TotalProductionVolume: volume,
		})
	}

	var locations []SupplierLocation
	for _, g := range groupBy(records, func(r *Record) string { return r.SupplierName + "\x00" + r.Location }) {
		locations = append(locations, SupplierLocation{
			SupplierName:  g.records[0].SupplierName,
			Location:      g.records[0].Location,
			ShipmentCount: len(g.records),
		})
	}

	var issues []QualityIssue
	for i := range records {
		if records[i].InspectionResult == InspectionFail {
			issues = append(issues, QualityIssue{
				SupplierName: records[i].SupplierName,
				SKU:          records[i].SKU,
				DefectRate:   records[i].DefectRate,
			})
		}
	}

	a.log.Debug("supplier analysis complete",
		"suppliers", len(suppliers), "quality_issues", len(issues))

	return &SupplierMetrics{
		SupplierPerformance: suppliers,
		SupplierLocations:   locations,
		QualityIssues:       issues,
	}
}

// AnalyzeLogistics computes the carrier rollup, the (mode, route) cost
// analysis, and the per-route efficiency table.
func (a *Analyzer) AnalyzeLogistics() *LogisticsMetrics {
	records := a.ds.Records()

	var carriers []CarrierStats
	for _, g := range groupBy(records, func(r *Record) string { return r.Carrier }) {
		carriers = append(carriers, CarrierStats{
			Carrier:         g.key,
			AvgShippingTime: round2(mean(collect(g.records, func(r *Record) float64 { return r.ShippingTime }))),
			AvgShippingCost: round2(mean(collect(g.records, func(r *Record) float64 { return r.ShippingCost }))),
			ShipmentCount:   len(g.records),
		})
	}

	var transport []TransportCost
	for _, g := range groupBy(records, func(r *Record) string { return r.TransportMode + "\x00" + r.Route }) {
		transport = append(transport, TransportCost{
			TransportMode:   g.records[0].TransportMode,
			Route:           g.records[0].Route,
			AvgCost:         round2(mean(collect(g.records, func(r *Record) float64 { return r.Cost }))),
			AvgShippingTime: round2(mean(collect(g.records, func(r *Record) float64 { return r.ShippingTime }))),
		})
	}

	var routes []RouteStats
	for _, g := range groupBy(records, func(r *Record) string { return r.Route }) {
		times := collect(g.records, func(r *Record) float64 { return r.ShippingTime })
		minT, maxT := times[0], times[0]
		for _, t := range times[1:] {
			if t < minT {
				minT = t
			}
			if t > maxT {
				maxT = t
			}
		}
		routes = append(routes, RouteStats{
			Route:           g.key,
			AvgShippingTime: round2(mean(times)),
			MinShippingTime: round2(minT),
			MaxShippingTime: round2(maxT),
			AvgCost:         round2(mean(collect(g.records, func(r *Record) float64 { return r.Cost }))),
		})
	}

	a.log.Debug("logistics analysis complete",
		"carriers", len(carriers), "routes", len(routes))

	return &LogisticsMetrics{
		CarrierPerformance:    carriers,
		TransportCostAnalysis: transport,
		RouteEfficiency:       routes,
	}
}

// AssessRisk evaluates the four risk predicates for every record and
// returns the records scoring at or above the reporting floor, in
// source order.
func (a *Analyzer) AssessRisk() []RiskFactor {
	records := a.ds.Records()
	costMean := mean(collect(records, func(r *Record) float64 { return r.ManufacturingCost }))

	var flagged []RiskFactor
	for i := range records {
		rf := RiskFactor{
			SKU:          records[i].SKU,
			StockRisk:    records[i].StockLevel < lowStockThreshold,
			LeadTimeRisk: records[i].LeadTime > leadTimeRiskThreshold,
			QualityRisk:  records[i].DefectRate > defectRateRiskThreshold,
			CostRisk:     records[i].ManufacturingCost > costMean,
		}
		for _, hit := range []bool{rf.StockRisk, rf.LeadTimeRisk, rf.QualityRisk, rf.CostRisk} {
			if hit {
				rf.TotalRiskScore++
			}
		}
		if rf.TotalRiskScore >= riskReportingFloor {
			flagged = append(flagged, rf)
		}
	}

	a.log.Debug("risk assessment complete",
		"records", len(records), "flagged", len(flagged))

	return flagged
}

// Recommendations evaluates the advisory rules independently. Each rule
// embeds the live count of matching records in its issue text; rules
// with no matches emit nothing.
func (a *Analyzer) Recommendations() []Recommendation {
	records := a.ds.Records()
	var recs []Recommendation

	lowStock := 0
	for i := range records {
		if records[i].StockLevel < lowStockThreshold {
			lowStock++
		}
	}
	if lowStock > 0 {
		recs = append(recs, Recommendation{
			Area:     "Inventory",
			Issue:    fmt.Sprintf("Low stock alerts for %d SKUs", lowStock),
			Action:   "Reorder stocks for affected SKUs",
			Priority: PriorityHigh,
		})
	}

	failed := 0
	for i := range records {
		if records[i].InspectionResult == InspectionFail {
			failed++
		}
	}
	if failed > 0 {
		recs = append(recs, Recommendation{
			Area:     "Quality",
			Issue:    fmt.Sprintf("Quality failures in %d shipments", failed),
			Action:   "Review supplier quality control processes",
			Priority: PriorityHigh,
		})
	}

	costs := collect(records, func(r *Record) float64 { return r.Cost })
	outlierFloor := mean(costs) + sampleStdDev(costs)
	highCost := 0
	for i := range records {
		if records[i].Cost > outlierFloor {
			highCost++
		}
	}
	if highCost > 0 {
		recs = append(recs, Recommendation{
			Area:     "Logistics",
			Issue:    fmt.Sprintf("High shipping costs on %d routes", highCost),
			Action:   "Evaluate alternative shipping routes or carriers",
			Priority: PriorityMedium,
		})
	}

	return recs
}

// Overall computes the four dataset-wide scalars.
func (a *Analyzer) Overall() OverallMetrics {
	records := a.ds.Records()
	revenue := 0.0
	units := 0
	for i := range records {
		revenue += records[i].Revenue
		units += records[i].UnitsSold
	}
	return OverallMetrics{
		TotalRevenue:   revenue,
		TotalUnitsSold: units,
		AvgDefectRate:  mean(collect(records, func(r *Record) float64 { return r.DefectRate })),
		AvgLeadTime:    mean(collect(records, func(r *Record) float64 { return r.LeadTime })),
	}
}
