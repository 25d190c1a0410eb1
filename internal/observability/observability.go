// Package observability assembles the logger, tracer and metrics registry handed to every module.
package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Black-And-White-Club/game-night/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceName identifies this service in logs, traces and metrics.
const ServiceName = "game-night"

// Provider owns the long-lived observability backends.
type Provider struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	shutdownFns    []func(context.Context) error
}

// Registry holds the instruments modules record into.
type Registry struct {
	Tracer     trace.Tracer
	Prometheus *prometheus.Registry
	Metrics    *Metrics
}

// Observability bundles everything a module needs to log, trace and count.
type Observability struct {
	Provider *Provider
	Registry *Registry
}

// Init builds the observability stack from configuration.
func Init(ctx context.Context, cfg config.ObservabilityConfig) (Observability, error) {
	logger := NewLogger(os.Stdout, cfg)

	provider := &Provider{Logger: logger}

	if cfg.OTLPEndpoint != "" {
		tp, err := newTracerProvider(ctx, cfg)
		if err != nil {
			return Observability{}, fmt.Errorf("failed to init tracing: %w", err)
		}
		otel.SetTracerProvider(tp)
		provider.TracerProvider = tp
		provider.shutdownFns = append(provider.shutdownFns, tp.Shutdown)
		logger.InfoContext(ctx, "Tracing enabled", "endpoint", cfg.OTLPEndpoint)
	} else {
		provider.TracerProvider = noop.NewTracerProvider()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Observability{
		Provider: provider,
		Registry: &Registry{
			Tracer:     provider.TracerProvider.Tracer(ServiceName),
			Prometheus: reg,
			Metrics:    NewMetrics(reg),
		},
	}, nil
}

// NewNoop returns an Observability that discards logs, spans and metrics. Used by tests.
func NewNoop() Observability {
	return Observability{
		Provider: &Provider{
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
			TracerProvider: noop.NewTracerProvider(),
		},
		Registry: &Registry{
			Tracer:     noop.NewTracerProvider().Tracer("test"),
			Prometheus: prometheus.NewRegistry(),
		},
	}
}

// Shutdown flushes and stops the tracer provider.
func (o Observability) Shutdown(ctx context.Context) error {
	if o.Provider == nil {
		return nil
	}
	var errs []error
	for _, fn := range o.Provider.shutdownFns {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewLogger builds the slog logger described by cfg.
func NewLogger(w io.Writer, cfg config.ObservabilityConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With("service", ServiceName)
	if cfg.Environment != "" {
		logger = logger.With("env", cfg.Environment)
	}
	return logger
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newTracerProvider(ctx context.Context, cfg config.ObservabilityConfig) (*sdktrace.TracerProvider, error) {
	var opts []otlptracehttp.Option
	if strings.Contains(cfg.OTLPEndpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.OTLPEndpoint))
	}
	if cfg.OTLPInsecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("deployment.environment", cfg.Environment),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TempoSampleRate))),
	), nil
}
