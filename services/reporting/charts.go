// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package reporting

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	"github.com/AleutianAI/chainsight/pkg/logging"
	"github.com/AleutianAI/chainsight/services/analyzer"
)

// ChartSet renders the standard visual set for one snapshot as
// standalone HTML pages. Each chart reads only raw records or derived
// sums; nothing here reaches back into the engine.
type ChartSet struct {
	log *logging.Logger
}

// NewChartSet returns a renderer. A nil logger falls back to the
// process default.
func NewChartSet(log *logging.Logger) *ChartSet {
	if log == nil {
		log = logging.Default()
	}
	return &ChartSet{log: log}
}

// RenderAll writes the four-chart set into dir, creating it if needed,
// and returns the written paths. The first write failure aborts the run
// with *ExportError.
func (c *ChartSet) RenderAll(ds *analyzer.Dataset, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, &ExportError{Path: dir, Err: err}
	}

	pages := []struct {
		name  string
		chart renderable
	}{
		{"revenue_by_category.html", c.RevenueByCategory(ds)},
		{"stock_levels.html", c.StockLevels(ds)},
		{"shipping_costs.html", c.ShippingCostScatter(ds)},
		{"shipping_cost_distribution.html", c.ShippingCostDistribution(ds)},
	}

	paths := make([]string, 0, len(pages))
	for _, p := range pages {
		path := filepath.Join(dir, p.name)
		if err := writeChart(p.chart, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	c.log.Info("chart set rendered", "dir", dir, "charts", len(paths))
	return paths, nil
}

// RevenueByCategory sums revenue per product category and renders a bar
// chart sorted by revenue, highest first.
func (c *ChartSet) RevenueByCategory(ds *analyzer.Dataset) *charts.Bar {
	totals := map[string]float64{}
	for _, r := range ds.Records() {
		totals[r.ProductType] += r.Revenue
	}
	cats := ds.Categories()
	sort.SliceStable(cats, func(i, j int) bool { return totals[cats[i]] > totals[cats[j]] })

	values := make([]opts.BarData, 0, len(cats))
	for _, cat := range cats {
		values = append(values, opts.BarData{Value: math.Round(totals[cat]*100) / 100})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Revenue by Product Category"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Product Type"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Revenue Generated"}),
	)
	bar.SetXAxis(cats).AddSeries("revenue", values)
	return bar
}

// StockLevels renders a box plot of stock levels per product category.
func (c *ChartSet) StockLevels(ds *analyzer.Dataset) *charts.BoxPlot {
	cats := ds.Categories()
	values := make([]opts.BoxPlotData, 0, len(cats))
	for _, cat := range cats {
		var stocks []float64
		for _, r := range ds.FilterByCategory(cat) {
			stocks = append(stocks, float64(r.StockLevel))
		}
		values = append(values, opts.BoxPlotData{Value: fiveNumber(stocks)})
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Stock Levels by Product Category"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Product Type"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Stock Levels"}),
	)
	box.SetXAxis(cats).AddSeries("stock levels", values)
	return box
}

// ShippingCostScatter renders shipping cost against shipping time, one
// series per transport mode.
func (c *ChartSet) ShippingCostScatter(ds *analyzer.Dataset) *charts.Scatter {
	points := map[string][]opts.ScatterData{}
	var modes []string
	for _, r := range ds.Records() {
		if _, seen := points[r.TransportMode]; !seen {
			modes = append(modes, r.TransportMode)
		}
		points[r.TransportMode] = append(points[r.TransportMode], opts.ScatterData{
			Value: []interface{}{r.ShippingTime, r.ShippingCost},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Shipping Costs vs. Times by Transportation Mode"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Shipping Times (days)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Shipping Costs"}),
	)
	for _, mode := range modes {
		scatter.AddSeries(mode, points[mode])
	}
	return scatter
}

// ShippingCostDistribution renders a box plot of shipping costs per
// transport mode.
func (c *ChartSet) ShippingCostDistribution(ds *analyzer.Dataset) *charts.BoxPlot {
	costs := map[string][]float64{}
	var modes []string
	for _, r := range ds.Records() {
		if _, seen := costs[r.TransportMode]; !seen {
			modes = append(modes, r.TransportMode)
		}
		costs[r.TransportMode] = append(costs[r.TransportMode], r.ShippingCost)
	}

	values := make([]opts.BoxPlotData, 0, len(modes))
	for _, mode := range modes {
		values = append(values, opts.BoxPlotData{Value: fiveNumber(costs[mode])})
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Shipping Costs by Transportation Mode"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Transportation Mode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Shipping Costs"}),
	)
	box.SetXAxis(modes).AddSeries("shipping costs", values)
	return box
}

type renderable interface {
	Render(w io.Writer) error
}

func writeChart(chart renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer f.Close()
	if err := chart.Render(f); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// fiveNumber reduces a sample to the box-plot tuple
// [min, q1, median, q3, max], using linear interpolation between order
// statistics for the quartiles.
func fiveNumber(xs []float64) []float64 {
	if len(xs) == 0 {
		return []float64{0, 0, 0, 0, 0}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return []float64{
		sorted[0],
		stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		stat.Quantile(0.75, stat.LinInterp, sorted, nil),
		sorted[len(sorted)-1],
	}
}
