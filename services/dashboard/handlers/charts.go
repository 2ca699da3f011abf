// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/chainsight/services/analyzer"
)

// GaugeData feeds the efficiency gauge panel.
type GaugeData struct {
	Title string  `json:"title"`
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// RadarData feeds the performance spider panel. Values is parallel to
// Metrics and normalized into [0,1], higher is better.
type RadarData struct {
	Metrics []string  `json:"metrics"`
	Values  []float64 `json:"values"`
}

// SupplierDefects is the per-supplier defect-rate sample for the box
// panel.
type SupplierDefects struct {
	Supplier    string    `json:"supplier"`
	DefectRates []float64 `json:"defect_rates"`
}

// LocationRevenue is one bar of the revenue-by-location panel.
type LocationRevenue struct {
	Location string  `json:"location"`
	Revenue  float64 `json:"revenue"`
}

// SupplierScore is one supplier of the combined performance panel.
type SupplierScore struct {
	Supplier          string  `json:"supplier"`
	EfficiencyScore   float64 `json:"efficiency_score"`
	CostEffectiveness float64 `json:"cost_effectiveness"`
}

// GaugeChart returns the mean efficiency score for the selected
// category on a fixed 0-100 range.
func GaugeChart(ds *analyzer.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := dashboardTracer.Start(c.Request.Context(), "dashboard.charts.gauge")
		defer span.End()

		_, subset, ok := resolveSubset(c, ds)
		if !ok {
			return
		}

		var total float64
		for i := range subset {
			total += efficiencyScore(&subset[i])
		}

		c.JSON(http.StatusOK, GaugeData{
			Title: "Overall Efficiency",
			Value: total / float64(len(subset)),
			Min:   0,
			Max:   100,
		})
	}
}

// RadarChart returns five normalized performance axes for the selected
// category. Each axis is oriented so that 1 is best: availability as a
// fraction, the rest as one minus the subset mean over the subset max
// (defect rate is already a 0-1-scale percentage).
func RadarChart(ds *analyzer.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := dashboardTracer.Start(c.Request.Context(), "dashboard.charts.radar")
		defer span.End()

		_, subset, ok := resolveSubset(c, ds)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, RadarData{
			Metrics: []string{
				"Availability", "Lead time", "Defect rates",
				"Manufacturing costs", "Shipping costs",
			},
			Values: []float64{
				meanOf(subset, func(r *analyzer.Record) float64 { return r.Availability }) / 100,
				oneMinusMeanOverMax(subset, func(r *analyzer.Record) float64 { return r.LeadTime }),
				1 - meanOf(subset, func(r *analyzer.Record) float64 { return r.DefectRate }),
				oneMinusMeanOverMax(subset, func(r *analyzer.Record) float64 { return r.ManufacturingCost }),
				oneMinusMeanOverMax(subset, func(r *analyzer.Record) float64 { return r.ShippingCost }),
			},
		})
	}
}

// DefectRates returns the raw defect-rate sample grouped by supplier,
// in first-appearance order.
func DefectRates(ds *analyzer.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := dashboardTracer.Start(c.Request.Context(), "dashboard.charts.defects")
		defer span.End()

		_, subset, ok := resolveSubset(c, ds)
		if !ok {
			return
		}

		rates := map[string][]float64{}
		var suppliers []string
		for _, r := range subset {
			if _, seen := rates[r.SupplierName]; !seen {
				suppliers = append(suppliers, r.SupplierName)
			}
			rates[r.SupplierName] = append(rates[r.SupplierName], r.DefectRate)
		}

		out := make([]SupplierDefects, 0, len(suppliers))
		for _, s := range suppliers {
			out = append(out, SupplierDefects{Supplier: s, DefectRates: rates[s]})
		}
		c.JSON(http.StatusOK, gin.H{"suppliers": out})
	}
}

// RevenueByLocation sums revenue per location for the selected
// category.
func RevenueByLocation(ds *analyzer.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := dashboardTracer.Start(c.Request.Context(), "dashboard.charts.revenue_by_location")
		defer span.End()

		_, subset, ok := resolveSubset(c, ds)
		if !ok {
			return
		}

		totals := map[string]float64{}
		var locations []string
		for _, r := range subset {
			if _, seen := totals[r.Location]; !seen {
				locations = append(locations, r.Location)
			}
			totals[r.Location] += r.Revenue
		}

		out := make([]LocationRevenue, 0, len(locations))
		for _, loc := range locations {
			out = append(out, LocationRevenue{Location: loc, Revenue: totals[loc]})
		}
		c.JSON(http.StatusOK, gin.H{"locations": out})
	}
}

// SupplierPerformance returns mean efficiency and cost effectiveness
// per supplier for the selected category.
func SupplierPerformance(ds *analyzer.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := dashboardTracer.Start(c.Request.Context(), "dashboard.charts.suppliers")
		defer span.End()

		_, subset, ok := resolveSubset(c, ds)
		if !ok {
			return
		}

		type acc struct {
			efficiency float64
			costEffect float64
			n          int
		}
		sums := map[string]*acc{}
		var suppliers []string
		for i := range subset {
			r := &subset[i]
			a, seen := sums[r.SupplierName]
			if !seen {
				a = &acc{}
				sums[r.SupplierName] = a
				suppliers = append(suppliers, r.SupplierName)
			}
			a.efficiency += efficiencyScore(r)
			a.costEffect += costEffectiveness(r)
			a.n++
		}

		out := make([]SupplierScore, 0, len(suppliers))
		for _, s := range suppliers {
			a := sums[s]
			out = append(out, SupplierScore{
				Supplier:          s,
				EfficiencyScore:   a.efficiency / float64(a.n),
				CostEffectiveness: a.costEffect / float64(a.n),
			})
		}
		c.JSON(http.StatusOK, gin.H{"suppliers": out})
	}
}

func meanOf(records []analyzer.Record, field func(*analyzer.Record) float64) float64 {
	var total float64
	for i := range records {
		total += field(&records[i])
	}
	return total / float64(len(records))
}

// oneMinusMeanOverMax normalizes "lower is better" fields: 0 for a
// subset pinned at its own max, approaching 1 as the mean shrinks. An
// all-zero field counts as best.
func oneMinusMeanOverMax(records []analyzer.Record, field func(*analyzer.Record) float64) float64 {
	var max float64
	for i := range records {
		if v := field(&records[i]); v > max {
			max = v
		}
	}
	if max == 0 {
		return 1
	}
	return 1 - meanOf(records, field)/max
}
