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

	"github.com/spf13/cobra"

	"github.com/AleutianAI/chainsight/pkg/ux"
	"github.com/AleutianAI/chainsight/services/analyzer"
	"github.com/AleutianAI/chainsight/services/dashboard"
)

func runServeCommand(cmd *cobra.Command, args []string) {
	log := newLogger("dashboard")
	defer log.Close()

	ds, err := analyzer.Load(config.Data.Path)
	if err != nil {
		ux.Error(fmt.Sprintf("Could not load snapshot: %v", err))
		os.Exit(1)
	}

	svc, err := dashboard.New(dashboard.Config{
		Addr:          config.Server.Addr,
		EnableMetrics: config.Server.Metrics,
		OTelEndpoint:  config.Server.OTelEndpoint,
	}, ds, log)
	if err != nil {
		ux.Error(fmt.Sprintf("Could not start dashboard: %v", err))
		os.Exit(1)
	}

	ux.Info(fmt.Sprintf("Dashboard listening on %s", config.Server.Addr))
	if err := svc.Run(); err != nil {
		log.Error("dashboard server stopped", "error", err)
		os.Exit(1)
	}
}
