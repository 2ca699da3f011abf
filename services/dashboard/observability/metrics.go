// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the dashboard
// service.
//
// All metric operations are thread-safe via Prometheus's internal
// locking.
package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "chainsight"

const dashboardSubsystem = "dashboard"

// DashboardMetrics holds the Prometheus metrics for dashboard request
// handling.
type DashboardMetrics struct {
	// RequestsTotal counts requests by route and status code.
	// Labels: route, status
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures handler latency.
	// Labels: route
	RequestDurationSeconds *prometheus.HistogramVec
}

// DefaultMetrics is the singleton instance, set by InitMetrics.
var DefaultMetrics *DashboardMetrics

var initOnce sync.Once

// InitMetrics registers the dashboard metrics with the default registry.
// Safe to call more than once; registration happens on the first call.
func InitMetrics() *DashboardMetrics {
	initOnce.Do(func() {
		DefaultMetrics = &DashboardMetrics{
			RequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: metricsNamespace,
					Subsystem: dashboardSubsystem,
					Name:      "requests_total",
					Help:      "Total dashboard requests by route and status",
				},
				[]string{"route", "status"},
			),

			RequestDurationSeconds: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: metricsNamespace,
					Subsystem: dashboardSubsystem,
					Name:      "request_duration_seconds",
					Help:      "Dashboard handler latency in seconds",
					Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
				},
				[]string{"route"},
			),
		}
	})
	return DefaultMetrics
}
