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

	"github.com/AleutianAI/chainsight/pkg/validation"
)

// Config is the config.yaml schema. There are deliberately no
// risk-threshold knobs here: the scoring thresholds are fixed policy.
type Config struct {
	// Data: where the snapshot comes from
	Data DataConfig `yaml:"data"`

	// Output: where artifacts land
	Output OutputConfig `yaml:"output"`

	// Server: dashboard listen settings
	Server ServerConfig `yaml:"server"`

	// Logging: level and destination for the structured log
	Logging LoggingConfig `yaml:"logging"`
}

type DataConfig struct {
	Path string `yaml:"path"` // e.g. data/supply_chain_data.csv
}

type OutputConfig struct {
	Dir string `yaml:"dir"` // chart HTML directory
	PDF string `yaml:"pdf"` // summary PDF path
}

type ServerConfig struct {
	Addr         string `yaml:"addr"` // e.g. :12280
	Metrics      bool   `yaml:"metrics"`
	OTelEndpoint string `yaml:"otel_endpoint"` // OTLP gRPC collector, optional
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`
}

func defaultConfig() Config {
	return Config{
		Data:    DataConfig{Path: "data/supply_chain_data.csv"},
		Output:  OutputConfig{Dir: "out/charts", PDF: "out/summary_report.pdf"},
		Server:  ServerConfig{Addr: ":12280", Metrics: true},
		Logging: LoggingConfig{Level: "info", Dir: "./logs"},
	}
}

// Validate rejects values that would only fail later and less clearly.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("data.path cannot be empty")
	}
	if err := validation.ValidateExportPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	if err := validation.ValidateExportPath(c.Output.PDF); err != nil {
		return fmt.Errorf("output.pdf: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
