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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/chainsight/pkg/logging"
	"github.com/AleutianAI/chainsight/pkg/ux"
	"github.com/AleutianAI/chainsight/services/analyzer"
	"github.com/AleutianAI/chainsight/services/reporting"
)

// pipelineResult bundles everything one analyze run produces.
type pipelineResult struct {
	report *analyzer.Report
	risks  []analyzer.RiskFactor
	recs   []analyzer.Recommendation
}

// runPipeline executes every analysis stage. Stages cannot fail once
// the dataset is loaded; only artifact writes can.
func runPipeline(ds *analyzer.Dataset, log *logging.Logger) pipelineResult {
	a := analyzer.New(ds, log)

	logistics := a.AnalyzeLogistics()
	products := a.AnalyzeProducts()
	suppliers := a.AnalyzeSuppliers()
	recs := a.Recommendations()
	risks := a.AssessRisk()
	report := a.Summary(products, suppliers, logistics)

	return pipelineResult{report: report, risks: risks, recs: recs}
}

func newLogger(service string) *logging.Logger {
	return logging.New(logging.Config{
		Level:   logging.ParseLevel(config.Logging.Level),
		LogDir:  config.Logging.Dir,
		Service: service,
		Quiet:   ux.GetMode() == ux.ModeMachine,
	})
}

func runAnalyzeCommand(cmd *cobra.Command, args []string) {
	log := newLogger("cli")
	defer log.Close()

	ds, err := analyzer.Load(config.Data.Path)
	if err != nil {
		ux.Error(fmt.Sprintf("Could not load snapshot: %v", err))
		os.Exit(1)
	}
	log.Info("snapshot loaded", "path", config.Data.Path, "records", ds.Len())

	result := runPipeline(ds, log)

	if !skipCharts {
		if _, err := reporting.NewChartSet(log).RenderAll(ds, config.Output.Dir); err != nil {
			ux.Error(fmt.Sprintf("Chart rendering failed: %v", err))
			os.Exit(1)
		}
	}

	printResult(result)
}

// printResult writes the report to stdout. Machine mode emits one JSON
// document; styled mode renders sectioned terminal output.
func printResult(result pipelineResult) {
	if ux.Plain() {
		out := struct {
			Report          *analyzer.Report          `json:"report"`
			RiskFactors     []analyzer.RiskFactor     `json:"risk_factors"`
			Recommendations []analyzer.Recommendation `json:"recommendations"`
		}{result.report, result.risks, result.recs}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "encoding report: %v\n", err)
		}
		return
	}

	ux.Title("Supply Chain Summary Report")

	overall := result.report.Overall
	ux.Box("Overall Metrics", ux.KeyValues([][2]string{
		{"Total Revenue", fmt.Sprintf("%.2f", overall.TotalRevenue)},
		{"Total Units Sold", fmt.Sprintf("%d", overall.TotalUnitsSold)},
		{"Average Defect Rate", fmt.Sprintf("%.2f", overall.AvgDefectRate)},
		{"Average Lead Time", fmt.Sprintf("%.2f", overall.AvgLeadTime)},
	}))

	printProducts(result.report)
	printSuppliers(result.report)
	printLogistics(result.report)
	printRisks(result.risks)
	printRecommendations(result.recs)
}

func printProducts(report *analyzer.Report) {
	if report.Products.State != analyzer.SectionComputed {
		ux.Info("Product performance: " + report.Products.State.String())
		return
	}
	m := report.Products.Value

	var rows [][2]string
	for _, c := range m.CategoryPerformance {
		rows = append(rows, [2]string{c.ProductType,
			fmt.Sprintf("revenue %.2f, units %d, stock %.2f, defects %.2f",
				c.TotalRevenue, c.TotalUnitsSold, c.AvgStockLevel, c.AvgDefectRate)})
	}
	ux.Box("Category Performance", ux.KeyValues(rows))

	if len(m.StockAlerts) > 0 {
		var alerts []string
		for _, a := range m.StockAlerts {
			alerts = append(alerts, fmt.Sprintf("%s (%s): %d units", a.SKU, a.ProductType, a.StockLevel))
		}
		ux.Warning(fmt.Sprintf("Low stock: %s", strings.Join(alerts, ", ")))
	}
}

func printSuppliers(report *analyzer.Report) {
	if report.Suppliers.State != analyzer.SectionComputed {
		ux.Info("Supplier performance: " + report.Suppliers.State.String())
		return
	}
	m := report.Suppliers.Value

	var rows [][2]string
	for _, s := range m.SupplierPerformance {
		rows = append(rows, [2]string{s.SupplierName,
			fmt.Sprintf("lead %.2f, cost %.2f, defects %.2f, volume %d",
				s.AvgLeadTime, s.AvgManufacturingCost, s.AvgDefectRate, s.TotalProductionVolume)})
	}
	ux.Box("Supplier Performance", ux.KeyValues(rows))

	if len(m.QualityIssues) > 0 {
		ux.Warning(fmt.Sprintf("%d failed inspections on record", len(m.QualityIssues)))
	}
}

func printLogistics(report *analyzer.Report) {
	if report.Logistics.State != analyzer.SectionComputed {
		ux.Info("Logistics performance: " + report.Logistics.State.String())
		return
	}
	m := report.Logistics.Value

	var rows [][2]string
	for _, c := range m.CarrierPerformance {
		rows = append(rows, [2]string{c.Carrier,
			fmt.Sprintf("time %.2f, cost %.2f, shipments %d",
				c.AvgShippingTime, c.AvgShippingCost, c.ShipmentCount)})
	}
	ux.Box("Carrier Performance", ux.KeyValues(rows))
}

func printRisks(risks []analyzer.RiskFactor) {
	if len(risks) == 0 {
		ux.Success("No SKUs above the risk reporting floor")
		return
	}

	var rows [][2]string
	for _, r := range risks {
		rows = append(rows, [2]string{r.SKU,
			fmt.Sprintf("score %d: %s", r.TotalRiskScore, strings.Join(riskFlags(r), ", "))})
	}
	ux.Box("Risk Assessment", ux.KeyValues(rows))
}

func riskFlags(r analyzer.RiskFactor) []string {
	var flags []string
	if r.StockRisk {
		flags = append(flags, "stock")
	}
	if r.LeadTimeRisk {
		flags = append(flags, "lead time")
	}
	if r.QualityRisk {
		flags = append(flags, "quality")
	}
	if r.CostRisk {
		flags = append(flags, "cost")
	}
	return flags
}

func printRecommendations(recs []analyzer.Recommendation) {
	if len(recs) == 0 {
		ux.Success("No recommendations triggered")
		return
	}

	var rows [][2]string
	for _, r := range recs {
		rows = append(rows, [2]string{
			fmt.Sprintf("%s %s", ux.PriorityBadge(string(r.Priority)), r.Area),
			fmt.Sprintf("%s. %s", r.Issue, r.Action)})
	}
	ux.Box("Recommendations", ux.KeyValues(rows))
}
