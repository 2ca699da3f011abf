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
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/AleutianAI/chainsight/pkg/logging"
	"github.com/AleutianAI/chainsight/services/analyzer"
)

const pdfTitle = "Supply Chain Summary Report"

// PDFExporter writes a report as a single-page PDF: the fixed title
// followed by one line per overall metric.
type PDFExporter struct {
	log *logging.Logger
}

// NewPDFExporter returns an exporter. A nil logger falls back to the
// process default.
func NewPDFExporter(log *logging.Logger) *PDFExporter {
	if log == nil {
		log = logging.Default()
	}
	return &PDFExporter{log: log}
}

// Export writes report to path. It only renders the overall metrics;
// section tables are served by the dashboard and chart set instead.
// Returns *ExportError when the document cannot be written.
func (e *PDFExporter) Export(report *analyzer.Report, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(200, 10, pdfTitle, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, line := range metricLines(report.Overall) {
		pdf.CellFormat(0, 10, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	e.log.Info("report exported", "path", path)
	return nil
}

func metricLines(m analyzer.OverallMetrics) []string {
	return []string{
		fmt.Sprintf("Total Revenue: %.2f", m.TotalRevenue),
		fmt.Sprintf("Total Units Sold: %d", m.TotalUnitsSold),
		fmt.Sprintf("Average Defect Rate: %.2f", m.AvgDefectRate),
		fmt.Sprintf("Average Lead Time: %.2f", m.AvgLeadTime),
	}
}
