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
	"log"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/chainsight/pkg/ux"
)

// --- Global Command Variables ---
var (
	configPath string
	dataPath   string // CLI override for data.path
	outputDir  string // CLI override for output.dir
	pdfPath    string // CLI override for output.pdf
	listenAddr string // CLI override for server.addr
	outputMode string // UX output mode (styled/machine)
	skipCharts bool

	rootCmd = &cobra.Command{
		Use:   "chainsight",
		Short: "Descriptive analytics for supply-chain CSV snapshots",
		Long: `ChainSight loads one supply-chain snapshot and derives category,
supplier, and logistics summaries, composite risk scores, and
threshold-triggered recommendations.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := loadConfig(configPath); err != nil {
				log.Fatalf("Error loading %s: %v", configPath, err)
			}
			applyFlagOverrides()

			if outputMode != "" {
				ux.SetMode(ux.ParseMode(outputMode))
			} else {
				ux.InitMode()
			}
		},
	}

	// --- Analysis ---
	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis pipeline and print the summary report",
		Run:   runAnalyzeCommand, // Defined in cmd_analyze.go
	}

	// --- Dashboard ---
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard over the configured snapshot",
		Run:   runServeCommand, // Defined in cmd_serve.go
	}

	// --- Export ---
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Write the summary report as a single-page PDF",
		Run:   runExportCommand, // Defined in cmd_export.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "",
		"Snapshot CSV path (overrides data.path)")
	rootCmd.PersistentFlags().StringVar(&outputMode, "output", "",
		"Output style: styled (default) or machine (scripting)")

	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&outputDir, "out", "",
		"Chart output directory (overrides output.dir)")
	analyzeCmd.Flags().BoolVar(&skipCharts, "no-charts", false,
		"Skip rendering the chart set")

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "addr", "",
		"Listen address (overrides server.addr)")

	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&pdfPath, "pdf", "",
		"PDF output path (overrides output.pdf)")
}

func applyFlagOverrides() {
	if dataPath != "" {
		config.Data.Path = dataPath
	}
	if outputDir != "" {
		config.Output.Dir = outputDir
	}
	if pdfPath != "" {
		config.Output.PDF = pdfPath
	}
	if listenAddr != "" {
		config.Server.Addr = listenAddr
	}
}
