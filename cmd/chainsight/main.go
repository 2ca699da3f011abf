// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command chainsight runs descriptive supply-chain analytics over a CSV
// snapshot: grouped summary tables, composite risk scores, threshold
// recommendations, chart and PDF artifacts, and an interactive
// dashboard.
//
// # Usage
//
//	# Full pipeline over the configured snapshot
//	chainsight analyze
//
//	# Dashboard server
//	chainsight serve
//
//	# PDF summary only
//	chainsight export --pdf out/summary_report.pdf
//
// Configuration is read from config.yaml in the working directory when
// present; every value has a default.
package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

var config Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func loadConfig(path string) error {
	config = defaultConfig()

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(yamlFile, &config); err != nil {
		return err
	}
	return config.Validate()
}
