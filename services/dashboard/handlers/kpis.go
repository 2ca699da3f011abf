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
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/AleutianAI/chainsight/pkg/validation"
	"github.com/AleutianAI/chainsight/services/analyzer"
)

// Create a new tracer
var dashboardTracer = otel.Tracer("chainsight.dashboard.handlers")

// KPIResponse is the card row at the top of the dashboard, computed over
// one product-category subset.
type KPIResponse struct {
	ProductType       string  `json:"product_type"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgLeadTime       float64 `json:"avg_lead_time"`
	EfficiencyScore   float64 `json:"efficiency_score"`
	CostEffectiveness float64 `json:"cost_effectiveness"`
}

// ListCategories returns the category values available to the filter
// control, in dataset load order. The first entry is the dashboard's
// default selection.
func ListCategories(ds *analyzer.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": ds.Categories()})
	}
}

// GetKPIs computes the KPI card values for the selected category.
func GetKPIs(ds *analyzer.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := dashboardTracer.Start(c.Request.Context(), "dashboard.kpis")
		defer span.End()

		productType, subset, ok := resolveSubset(c, ds)
		if !ok {
			return
		}

		var revenue, leadTimes, efficiency, costEffect float64
		for i := range subset {
			r := &subset[i]
			revenue += r.Revenue
			leadTimes += r.LeadTime
			efficiency += efficiencyScore(r)
			costEffect += costEffectiveness(r)
		}
		n := float64(len(subset))

		c.JSON(http.StatusOK, KPIResponse{
			ProductType:       productType,
			TotalRevenue:      revenue,
			AvgLeadTime:       leadTimes / n,
			EfficiencyScore:   efficiency / n,
			CostEffectiveness: costEffect / n,
		})
	}
}

// resolveSubset resolves the product_type query parameter into a record
// subset. An absent parameter selects the first category in load order.
// Writes the error response itself and returns ok=false on rejection.
func resolveSubset(c *gin.Context, ds *analyzer.Dataset) (string, []analyzer.Record, bool) {
	productType := c.Query("product_type")
	if productType == "" {
		productType = ds.Categories()[0]
	}

	if err := validation.ValidateCategory(productType); err != nil {
		slog.Warn("Rejected product filter", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", nil, false
	}

	subset := ds.FilterByCategory(productType)
	if len(subset) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown product type: " + productType})
		return "", nil, false
	}
	return productType, subset, true
}

// efficiencyScore folds defect rate and supplier lead time into a
// 0-100 score. Twenty points per defect-rate percent, the full hundred
// over a thirty-day lead time.
func efficiencyScore(r *analyzer.Record) float64 {
	return clip(100-r.DefectRate*20-r.LeadTime/30*100, 0, 100)
}

// costEffectiveness is revenue per unit of manufacturing cost, capped
// at 100. A zero manufacturing cost caps immediately rather than
// dividing by zero.
func costEffectiveness(r *analyzer.Record) float64 {
	if r.ManufacturingCost == 0 {
		return 100
	}
	return clip(r.Revenue/r.ManufacturingCost, 0, 100)
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
