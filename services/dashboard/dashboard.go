// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package dashboard serves the interactive supply-chain view.
//
// The dashboard is a read-only collaborator of the analyzer: it holds one
// immutable dataset loaded at construction time and recomputes every KPI
// and chart payload per request from the filtered subset. There is no
// per-session state and no cache.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/chainsight/pkg/logging"
	"github.com/AleutianAI/chainsight/services/analyzer"
	"github.com/AleutianAI/chainsight/services/dashboard/observability"
	"github.com/AleutianAI/chainsight/services/dashboard/routes"
)

// Service is the dashboard lifecycle contract.
//
// Run blocks until the server stops. Router exposes the configured gin
// engine for integration tests; callers must not modify it.
type Service interface {
	Run() error
	Router() *gin.Engine
}

// Config holds dashboard configuration. Zero values use defaults.
type Config struct {
	// Addr is the listen address. Default: ":12280"
	Addr string

	// GinMode sets the gin framework mode ("debug", "release", "test").
	// Default: "release"
	GinMode string

	// EnableMetrics exposes Prometheus metrics on /metrics.
	EnableMetrics bool

	// OTelEndpoint is an OTLP gRPC collector address. When empty,
	// spans are recorded but not exported.
	OTelEndpoint string
}

type service struct {
	config        Config
	ds            *analyzer.Dataset
	log           *logging.Logger
	router        *gin.Engine
	tracerCleanup func(context.Context)
}

// New builds a dashboard service over an already-loaded dataset. The
// dataset must be non-empty: a dashboard with nothing to show is a
// construction error, not a 404.
func New(cfg Config, ds *analyzer.Dataset, log *logging.Logger) (Service, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("dashboard requires a non-empty dataset")
	}
	if log == nil {
		log = logging.Default()
	}

	s := &service{
		config: applyConfigDefaults(cfg),
		ds:     ds,
		log:    log,
	}

	cleanup, err := s.initTracer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}
	s.tracerCleanup = cleanup

	if s.config.EnableMetrics {
		observability.InitMetrics()
	}

	gin.SetMode(s.config.GinMode)
	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(otelgin.Middleware("chainsight-dashboard"))
	routes.SetupRoutes(s.router, s.ds, s.config.EnableMetrics)

	return s, nil
}

// initTracer installs the global OpenTelemetry tracer provider so the
// handler spans record. With no collector endpoint the provider carries
// no exporter; spans still record and parent through otelgin, they just
// never leave the process.
func (s *service) initTracer() (func(context.Context), error) {
	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("chainsight-dashboard")))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	}

	if s.config.OTelEndpoint != "" {
		conn, err := grpc.NewClient(s.config.OTelEndpoint,
			grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
		}

		traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithSpanProcessor(
			sdktrace.NewBatchSpanProcessor(traceExporter)))
	}

	traceProvider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	cleanup := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceProvider.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown tracer provider", "error", err)
		}
	}

	return cleanup, nil
}

func applyConfigDefaults(cfg Config) Config {
	if cfg.Addr == "" {
		cfg.Addr = ":12280"
	}
	if cfg.GinMode == "" {
		cfg.GinMode = gin.ReleaseMode
	}
	return cfg
}

// Run starts the HTTP server and blocks until it stops. The tracer
// provider is flushed and released on return.
func (s *service) Run() error {
	defer s.tracerCleanup(context.Background())

	s.log.Info("starting dashboard server", "addr", s.config.Addr,
		slog.Int("records", s.ds.Len()))
	return s.router.Run(s.config.Addr)
}

func (s *service) Router() *gin.Engine {
	return s.router
}
