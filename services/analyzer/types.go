// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package analyzer computes descriptive analytics and risk flags over a
// supply-chain snapshot.
//
// The package is the aggregation-and-risk-scoring engine: it loads a flat
// table of supply-chain records once, then derives grouped summary tables
// (by product category, supplier, and logistics route/carrier), a
// per-record composite risk score, and a short list of threshold-triggered
// recommendations. All derived tables are recomputed from scratch on every
// call; the loaded snapshot is never mutated.
//
// Rendering (charts, PDF, dashboard) lives in separate packages that
// consume this package's output tables; nothing here depends on a
// rendering library.
package analyzer

import (
	"encoding/json"
	"fmt"
)

// Record is one row of the supply-chain dataset: a SKU/shipment/supplier
// observation. The csv tags carry the dataset's exact column headers;
// the validate tags enforce the schema invariant that every numeric
// field is non-negative.
//
// The dataset distinguishes the supplier-side "Lead time" from the
// product-side "Lead times", and the route-level "Costs" from the
// carrier-level "Shipping costs"; all four are kept as separate fields.
type Record struct {
	ProductType           string  `csv:"Product type" json:"product_type" validate:"required"`
	SKU                   string  `csv:"SKU" json:"sku" validate:"required"`
	Price                 float64 `csv:"Price" json:"price" validate:"gte=0"`
	Availability          float64 `csv:"Availability" json:"availability" validate:"gte=0,lte=100"`
	UnitsSold             int     `csv:"Number of products sold" json:"units_sold" validate:"gte=0"`
	Revenue               float64 `csv:"Revenue generated" json:"revenue" validate:"gte=0"`
	StockLevel            int     `csv:"Stock levels" json:"stock_level" validate:"gte=0"`
	ProductLeadTime       float64 `csv:"Lead times" json:"product_lead_time" validate:"gte=0"`
	OrderQuantity         int     `csv:"Order quantities" json:"order_quantity" validate:"gte=0"`
	ShippingTime          float64 `csv:"Shipping times" json:"shipping_time" validate:"gte=0"`
	Carrier               string  `csv:"Shipping carriers" json:"carrier" validate:"required"`
	ShippingCost          float64 `csv:"Shipping costs" json:"shipping_cost" validate:"gte=0"`
	SupplierName          string  `csv:"Supplier name" json:"supplier_name" validate:"required"`
	Location              string  `csv:"Location" json:"location"`
	LeadTime              float64 `csv:"Lead time" json:"lead_time" validate:"gte=0"`
	ProductionVolume      int     `csv:"Production volumes" json:"production_volume" validate:"gte=0"`
	ManufacturingLeadTime float64 `csv:"Manufacturing lead time" json:"manufacturing_lead_time" validate:"gte=0"`
	ManufacturingCost     float64 `csv:"Manufacturing costs" json:"manufacturing_cost" validate:"gte=0"`
	InspectionResult      string  `csv:"Inspection results" json:"inspection_result" validate:"oneof=Pass Fail Pending"`
	DefectRate            float64 `csv:"Defect rates" json:"defect_rate" validate:"gte=0"`
	TransportMode         string  `csv:"Transportation modes" json:"transport_mode" validate:"required"`
	Route                 string  `csv:"Routes" json:"route" validate:"required"`
	Cost                  float64 `csv:"Costs" json:"cost" validate:"gte=0"`
}

// Inspection result values as they appear in the dataset. Only
// InspectionFail triggers quality rules; Pending rows are treated as
// not-yet-failed.
const (
	InspectionPass    = "Pass"
	InspectionFail    = "Fail"
	InspectionPending = "Pending"
)

// LoadError reports a failure to produce a usable snapshot: a missing or
// unreadable file, a missing required column, or an unparseable cell.
// Nothing downstream of the loader runs after a LoadError.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// CategoryStats summarizes one product category.
type CategoryStats struct {
	ProductType    string  `json:"product_type"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalUnitsSold int     `json:"total_units_sold"`
	AvgStockLevel  float64 `json:"avg_stock_level"`
	AvgDefectRate  float64 `json:"avg_defect_rate"`
}

// ProductRevenue is one row of the top-revenue listing.
type ProductRevenue struct {
	SKU         string  `json:"sku"`
	ProductType string  `json:"product_type"`
	Revenue     float64 `json:"revenue"`
	UnitsSold   int     `json:"units_sold"`
}

// StockAlert flags a SKU whose stock level is below the reorder
// threshold.
type StockAlert struct {
	SKU             string  `json:"sku"`
	ProductType     string  `json:"product_type"`
	StockLevel      int     `json:"stock_level"`
	ProductLeadTime float64 `json:"product_lead_time"`
}

// ProductMetrics is the product/category analysis output.
type ProductMetrics struct {
	CategoryPerformance []CategoryStats  `json:"category_performance"`
	TopRevenueProducts  []ProductRevenue `json:"top_revenue_products"`
	StockAlerts         []StockAlert     `json:"stock_alerts"`
}

// SupplierStats summarizes one supplier.
type SupplierStats struct {
	SupplierName          string  `json:"supplier_name"`
	AvgLeadTime           float64 `json:"avg_lead_time"`
	AvgManufacturingCost  float64 `json:"avg_manufacturing_cost"`
	AvgDefectRate         float64 `json:"avg_defect_rate"`
	TotalProductionVolume int     `json:"total_production_volume"`
}

// SupplierLocation counts shipments per (supplier, location) pair.
type SupplierLocation struct {
	SupplierName  string `json:"supplier_name"`
	Location      string `json:"location"`
	ShipmentCount int    `json:"shipment_count"`
}

// QualityIssue is a shipment that failed inspection.
type QualityIssue struct {
	SupplierName string  `json:"supplier_name"`
	SKU          string  `json:"sku"`
	DefectRate   float64 `json:"defect_rate"`
}

// SupplierMetrics is the supplier analysis output.
type SupplierMetrics struct {
	SupplierPerformance []SupplierStats    `json:"supplier_performance"`
	SupplierLocations   []SupplierLocation `json:"supplier_locations"`
	QualityIssues       []QualityIssue     `json:"quality_issues"`
}

// CarrierStats summarizes one shipping carrier.
type CarrierStats struct {
	Carrier         string  `json:"carrier"`
	AvgShippingTime float64 `json:"avg_shipping_time"`
	AvgShippingCost float64 `json:"avg_shipping_cost"`
	ShipmentCount   int     `json:"shipment_count"`
}

// TransportCost summarizes one (transport mode, route) pair.
type TransportCost struct {
	TransportMode   string  `json:"transport_mode"`
	Route           string  `json:"route"`
	AvgCost         float64 `json:"avg_cost"`
	AvgShippingTime float64 `json:"avg_shipping_time"`
}

// RouteStats summarizes shipping time spread and cost per route.
type RouteStats struct {
	Route           string  `json:"route"`
	AvgShippingTime float64 `json:"avg_shipping_time"`
	MinShippingTime float64 `json:"min_shipping_time"`
	MaxShippingTime float64 `json:"max_shipping_time"`
	AvgCost         float64 `json:"avg_cost"`
}

// LogisticsMetrics is the logistics analysis output.
type LogisticsMetrics struct {
	CarrierPerformance    []CarrierStats  `json:"carrier_performance"`
	TransportCostAnalysis []TransportCost `json:"transport_cost_analysis"`
	RouteEfficiency       []RouteStats    `json:"route_efficiency"`
}

// RiskFactor holds the four risk predicates and their sum for one record.
// TotalRiskScore is always the count of true flags, in [0, 4].
type RiskFactor struct {
	SKU            string `json:"sku"`
	StockRisk      bool   `json:"stock_risk"`
	LeadTimeRisk   bool   `json:"lead_time_risk"`
	QualityRisk    bool   `json:"quality_risk"`
	CostRisk       bool   `json:"cost_risk"`
	TotalRiskScore int    `json:"total_risk_score"`
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Recommendation is a generated advisory entry.
type Recommendation struct {
	Area     string   `json:"area"`
	Issue    string   `json:"issue"`
	Action   string   `json:"action"`
	Priority Priority `json:"priority"`
}

// OverallMetrics are the four dataset-wide scalars in the summary report.
type OverallMetrics struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalUnitsSold int     `json:"total_units_sold"`
	AvgDefectRate  float64 `json:"avg_defect_rate"`
	AvgLeadTime    float64 `json:"avg_lead_time"`
}

// SectionState distinguishes "never ran" from "ran and produced nothing"
// from "ran and produced rows".
type SectionState int

const (
	// SectionUnset means the analysis was never invoked.
	SectionUnset SectionState = iota

	// SectionEmpty means the analysis ran but every table is empty.
	SectionEmpty

	// SectionComputed means the analysis ran and produced rows.
	SectionComputed
)

// String returns the marker used in report output.
func (s SectionState) String() string {
	switch s {
	case SectionEmpty:
		return "empty"
	case SectionComputed:
		return "computed"
	default:
		return "not_computed"
	}
}

// Section wraps an analysis table with its computation state. Value is
// meaningful only when State is SectionComputed or SectionEmpty.
type Section[T any] struct {
	State SectionState
	Value T
}

// MarshalJSON renders Unset and Empty sections as explicit status
// markers so report consumers can tell "never ran" apart from "no rows".
func (s Section[T]) MarshalJSON() ([]byte, error) {
	if s.State == SectionComputed {
		return json.Marshal(s.Value)
	}
	return json.Marshal(map[string]string{"status": s.State.String()})
}

// Report is the assembled summary: four overall scalars plus whichever
// analysis sections the caller computed.
type Report struct {
	Overall   OverallMetrics             `json:"overall_metrics"`
	Products  Section[*ProductMetrics]   `json:"product_performance"`
	Suppliers Section[*SupplierMetrics]  `json:"supplier_performance"`
	Logistics Section[*LogisticsMetrics] `json:"logistics_performance"`
}
