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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/chainsight/pkg/ux"
	"github.com/AleutianAI/chainsight/services/analyzer"
	"github.com/AleutianAI/chainsight/services/reporting"
)

func runExportCommand(cmd *cobra.Command, args []string) {
	log := newLogger("cli")
	defer log.Close()

	ds, err := analyzer.Load(config.Data.Path)
	if err != nil {
		ux.Error(fmt.Sprintf("Could not load snapshot: %v", err))
		os.Exit(1)
	}

	result := runPipeline(ds, log)

	path := config.Output.PDF
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			ux.Error(fmt.Sprintf("Could not create output directory: %v", err))
			os.Exit(1)
		}
	}

	if err := reporting.NewPDFExporter(log).Export(result.report, path); err != nil {
		ux.Error(fmt.Sprintf("Export failed: %v", err))
		os.Exit(1)
	}
	ux.Success(fmt.Sprintf("Report saved to %s", path))
}
