// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package reporting renders the analyzer's output tables into artifacts:
// a one-page PDF summary and a set of static chart pages.
//
// The package is a pure consumer of computed tables. It never feeds
// anything back into the engine, and the engine has no dependency in
// this direction, so rendering libraries stay out of the analysis path.
package reporting

import (
	"fmt"

	"github.com/AleutianAI/chainsight/services/analyzer"
)

// ExportError reports a failure to write an artifact, typically an
// unwritable output path. Analysis results computed before the export
// remain valid; callers should surface the error without discarding
// them.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// ReportExporter writes an assembled report to a file.
type ReportExporter interface {
	Export(report *analyzer.Report, path string) error
}

// ChartRenderer writes the standard chart set for a snapshot into a
// directory.
type ChartRenderer interface {
	RenderAll(ds *analyzer.Dataset, dir string) ([]string, error)
}
