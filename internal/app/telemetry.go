package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/theatrical-statements/internal/statement"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

const metricExportInterval = 15 * time.Second

// telemetry holds the instruments statement rendering reports through.
type telemetry struct {
	tracer             trace.Tracer
	statementsRendered metric.Int64Counter
	performancesBilled metric.Int64Counter
	amountBilled       metric.Float64Counter
}

func newTelemetry(mp metric.MeterProvider, tp trace.TracerProvider) (*telemetry, error) {
	meter := mp.Meter(serviceName)

	statementsRendered, err := meter.Int64Counter(
		"statements.rendered",
		metric.WithDescription("Number of statements rendered, by format"),
	)
	if err != nil {
		return nil, err
	}

	performancesBilled, err := meter.Int64Counter(
		"statements.performances",
		metric.WithDescription("Number of performances priced across all statements"),
	)
	if err != nil {
		return nil, err
	}

	amountBilled, err := meter.Float64Counter(
		"statements.amount_owed",
		metric.WithDescription("Total amount owed across rendered statements"),
		metric.WithUnit("USD"),
	)
	if err != nil {
		return nil, err
	}

	return &telemetry{
		tracer:             tp.Tracer(serviceName),
		statementsRendered: statementsRendered,
		performancesBilled: performancesBilled,
		amountBilled:       amountBilled,
	}, nil
}

func (t *telemetry) startStatementSpan(ctx context.Context, customer string, performances int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "statement.render", trace.WithAttributes(
		attribute.String("statement.customer", customer),
		attribute.Int("statement.performances", performances),
	))
}

func (t *telemetry) recordStatement(ctx context.Context, format statement.Format, stmt statementSummary) {
	attrs := metric.WithAttributes(attribute.String("format", string(format)))

	t.statementsRendered.Add(ctx, 1, attrs)
	t.performancesBilled.Add(ctx, int64(stmt.performances), attrs)
	t.amountBilled.Add(ctx, stmt.amountOwed, attrs)
}

type statementSummary struct {
	performances int
	amountOwed   float64
}

// setupTelemetry installs OTLP trace, metric and log providers when a
// collector is configured. The returned logger also forwards records to the
// collector.
func setupTelemetry(cfg config, logger *slog.Logger) (*slog.Logger, func(context.Context), error) {
	if cfg.otelCollectorUrl == "" {
		logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return logger, func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(cfg.env),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create otel resource: %w", err)
	}

	tracerProvider, err := newTracerProvider(ctx, cfg.otelCollectorUrl, res)
	if err != nil {
		return nil, nil, err
	}

	meterProvider, err := newMeterProvider(ctx, cfg.otelCollectorUrl, res)
	if err != nil {
		return nil, nil, err
	}

	loggerProvider, err := newLoggerProvider(ctx, cfg.otelCollectorUrl, res)
	if err != nil {
		return nil, nil, err
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetMeterProvider(meterProvider)
	global.SetLoggerProvider(loggerProvider)

	logger = slog.New(newMultiHandler(
		logger.Handler(),
		otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(loggerProvider)),
	))

	shutdown := func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := errors.Join(
			tracerProvider.Shutdown(shutdownCtx),
			meterProvider.Shutdown(shutdownCtx),
			loggerProvider.Shutdown(shutdownCtx),
		)
		if err != nil {
			logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}

	return logger, shutdown, nil
}

func newTracerProvider(ctx context.Context, endpoint string, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	), nil
}

func newMeterProvider(ctx context.Context, endpoint string, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel metric exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricExportInterval))),
	), nil
}

func newLoggerProvider(ctx context.Context, endpoint string, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel log exporter: %w", err)
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	), nil
}

// multiHandler fans each record out to every wrapped handler.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle keeps going past a failing handler and reports the joined errors.
func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler {
		return handler.WithAttrs(attrs)
	})
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler {
		return handler.WithGroup(name)
	})
}

func (h *multiHandler) each(wrap func(slog.Handler) slog.Handler) *multiHandler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = wrap(handler)
	}

	return &multiHandler{handlers: handlers}
}
