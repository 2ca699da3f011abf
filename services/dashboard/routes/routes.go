// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"embed"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/chainsight/services/analyzer"
	"github.com/AleutianAI/chainsight/services/dashboard/handlers"
	"github.com/AleutianAI/chainsight/services/dashboard/observability"
)

//go:embed ui
var uiFS embed.FS

// uiContent strips the embed prefix so /ui/dashboard.html serves the
// page directly.
func uiContent() fs.FS {
	sub, err := fs.Sub(uiFS, "ui")
	if err != nil {
		panic(err)
	}
	return sub
}

func SetupRoutes(router *gin.Engine, ds *analyzer.Dataset, enableMetrics bool) {
	if enableMetrics {
		router.Use(metricsMiddleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.GET("/health", handlers.HealthCheck)
	router.StaticFS("/ui", http.FS(uiContent()))

	// Friendly redirect to the dashboard page
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui/dashboard.html")
	})

	// API version 1 group
	v1 := router.Group("/v1")
	{
		v1.GET("/categories", handlers.ListCategories(ds))
		v1.GET("/kpis", handlers.GetKPIs(ds))
		// Chart-data routes, one per dashboard panel
		charts := v1.Group("/charts")
		{
			charts.GET("/gauge", handlers.GaugeChart(ds))
			charts.GET("/radar", handlers.RadarChart(ds))
			charts.GET("/defects", handlers.DefectRates(ds))
			charts.GET("/revenue-by-location", handlers.RevenueByLocation(ds))
			charts.GET("/suppliers", handlers.SupplierPerformance(ds))
		}
	}
}

// metricsMiddleware records request counts and latency per route.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m := observability.DefaultMetrics
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDurationSeconds.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
