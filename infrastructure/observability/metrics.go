package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"streamalerts/config"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const meterName = "stream-alerts"

// MetricsProvider manages OpenTelemetry metrics for the alert service
type MetricsProvider struct {
	config        *config.Config
	reader        sdkmetric.Reader
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	enabled       bool
	mu            sync.RWMutex

	storeOperationsCounter      metric.Int64Counter
	storeOperationErrorsCounter metric.Int64Counter
	storeOperationDurationHist  metric.Float64Histogram
	trackerNotificationsCounter metric.Int64Counter
	guildEventsCounter          metric.Int64Counter
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
	}
}

// NewMetricsProviderWithReader creates a provider that exports through reader instead of the configured exporter
func NewMetricsProviderWithReader(cfg *config.Config, reader sdkmetric.Reader) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
		reader: reader,
	}
}

// Initialize sets up the OpenTelemetry metrics provider
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		log.Debug("Metrics provider already initialized")
		return nil
	}

	if !mp.config.OTelEnabled {
		log.Info("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(mp.config.OTelServiceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	reader := mp.reader
	if reader == nil {
		exporter, err := mp.newExporter(ctx)
		if err != nil {
			return err
		}
		if exporter == nil {
			mp.initialized = true
			return nil
		}
		reader = sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
		)
	}

	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp.meterProvider)
	mp.meter = mp.meterProvider.Meter(meterName)

	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	mp.enabled = true
	log.WithField("exporter", mp.config.OTelExporterType).Info("Metrics provider initialized successfully")
	return nil
}

// newExporter returns nil without error for exporter type "none"
func (mp *MetricsProvider) newExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create console exporter: %w", err)
		}
		return exporter, nil

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		log.WithField("endpoint", mp.config.OTelOTLPEndpoint).Info("Using OTLP metric exporter")
		return exporter, nil

	case "none":
		log.Info("Metrics export disabled (exporter_type='none')")
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}
}

func (mp *MetricsProvider) createInstruments() error {
	var err error

	mp.storeOperationsCounter, err = mp.meter.Int64Counter(
		StoreOperationsTotal,
		metric.WithDescription("Total number of alert store operations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create store operations counter: %w", err)
	}

	mp.storeOperationErrorsCounter, err = mp.meter.Int64Counter(
		StoreOperationErrorsTotal,
		metric.WithDescription("Total number of failed alert store operations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create store errors counter: %w", err)
	}

	mp.storeOperationDurationHist, err = mp.meter.Float64Histogram(
		StoreOperationDuration,
		metric.WithDescription("Duration of alert store operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0),
	)
	if err != nil {
		return fmt.Errorf("failed to create store duration histogram: %w", err)
	}

	mp.trackerNotificationsCounter, err = mp.meter.Int64Counter(
		TrackerNotificationsTotal,
		metric.WithDescription("Total number of live tracker notifications"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create tracker notifications counter: %w", err)
	}

	mp.guildEventsCounter, err = mp.meter.Int64Counter(
		GuildEventsTotal,
		metric.WithDescription("Total number of Discord guild lifecycle events handled"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create guild events counter: %w", err)
	}

	return nil
}

// Shutdown flushes and shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// RecordStoreOperation records one store call with its duration and outcome
func (mp *MetricsProvider) RecordStoreOperation(operation string, duration time.Duration, err error) {
	if !mp.isEnabled() {
		return
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String(LabelOperation, operation))

	mp.storeOperationsCounter.Add(ctx, 1, attrs)
	mp.storeOperationDurationHist.Record(ctx, duration.Seconds(), attrs)
	if err != nil {
		mp.storeOperationErrorsCounter.Add(ctx, 1, attrs)
	}
}

// MeasureStoreOperation returns a function recording the operation when called.
// Usage:
//
//	defer mp.MeasureStoreOperation("AddAlert")(&err)
func (mp *MetricsProvider) MeasureStoreOperation(operation string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		var err error
		if errp != nil {
			err = *errp
		}
		mp.RecordStoreOperation(operation, time.Since(start), err)
	}
}

// RecordTrackerNotification records a live tracker notification attempt
func (mp *MetricsProvider) RecordTrackerNotification(notification string, err error) {
	if !mp.isEnabled() {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	mp.trackerNotificationsCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelEventType, notification),
			attribute.String(LabelOutcome, outcome),
		),
	)
}

// RecordGuildEvent records a handled Discord guild lifecycle event
func (mp *MetricsProvider) RecordGuildEvent(eventType string) {
	if !mp.isEnabled() {
		return
	}

	mp.guildEventsCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelEventType, eventType),
		),
	)
}

func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.enabled
}
