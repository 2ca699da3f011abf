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
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Data.Path == "" || cfg.Output.Dir == "" || cfg.Output.PDF == "" {
		t.Error("default config has empty paths")
	}
	if cfg.Server.Addr == "" {
		t.Error("default config has empty listen addr")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty data path", func(c *Config) { c.Data.Path = "" }, true},
		{"traversal in output dir", func(c *Config) { c.Output.Dir = "../../etc" }, true},
		{"traversal in pdf path", func(c *Config) { c.Output.PDF = "../x.pdf" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"warn level", func(c *Config) { c.Logging.Level = "warn" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	if err := loadConfig(filepath.Join(t.TempDir(), "config.yaml")); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Server.Addr != ":12280" {
		t.Errorf("Server.Addr = %q, want default :12280", config.Server.Addr)
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("data:\n  path: snapshots/q3.csv\nserver:\n  addr: \":9000\"\n  otel_endpoint: \"collector:4317\"\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := loadConfig(path); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Data.Path != "snapshots/q3.csv" {
		t.Errorf("Data.Path = %q", config.Data.Path)
	}
	if config.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q", config.Server.Addr)
	}
	if config.Server.OTelEndpoint != "collector:4317" {
		t.Errorf("Server.OTelEndpoint = %q", config.Server.OTelEndpoint)
	}
	// Untouched keys keep their defaults.
	if config.Output.PDF != "out/summary_report.pdf" {
		t.Errorf("Output.PDF = %q, want default", config.Output.PDF)
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := loadConfig(path); err == nil {
		t.Error("expected validation error for bad log level")
	}
}
