package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smanager/config"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// MetricsProvider manages OpenTelemetry metrics for the bot
type MetricsProvider struct {
	config        *config.Config
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	mu            sync.RWMutex

	// Metric instruments
	eventsHandledCounter        metric.Int64Counter
	natsMessagesReceivedCounter metric.Int64Counter
	messagesSentCounter         metric.Int64Counter
	suppressedErrorsCounter     metric.Int64Counter
	reservationsReleasedCounter metric.Int64Counter
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
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

	var exporter sdkmetric.Exporter
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err = stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}
		log.Info("Using console metric exporter")

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		log.Infof("Using OTLP metric exporter: %s", mp.config.OTelOTLPEndpoint)

	case "none":
		log.Info("Metrics export disabled (exporter_type='none')")
		mp.initialized = true
		return nil

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}

	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
			),
		),
	)

	otel.SetMeterProvider(mp.meterProvider)
	mp.meter = mp.meterProvider.Meter("smanager")

	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	log.Info("Metrics provider initialized successfully")
	return nil
}

// createInstruments creates all metric instruments
func (mp *MetricsProvider) createInstruments() error {
	var err error

	mp.eventsHandledCounter, err = mp.meter.Int64Counter(
		EventsHandledTotal,
		metric.WithDescription("Total number of events dispatched to handlers"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create events handled counter: %w", err)
	}

	mp.natsMessagesReceivedCounter, err = mp.meter.Int64Counter(
		NATSMessagesReceivedTotal,
		metric.WithDescription("Total number of NATS messages received"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create NATS messages received counter: %w", err)
	}

	mp.messagesSentCounter, err = mp.meter.Int64Counter(
		MessagesSentTotal,
		metric.WithDescription("Total number of Discord messages and reactions sent"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create messages sent counter: %w", err)
	}

	mp.suppressedErrorsCounter, err = mp.meter.Int64Counter(
		SuppressedErrorsTotal,
		metric.WithDescription("Total number of expected Discord errors that were ignored"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create suppressed errors counter: %w", err)
	}

	mp.reservationsReleasedCounter, err = mp.meter.Int64Counter(
		ReservationsReleasedTotal,
		metric.WithDescription("Total number of expired slot reservations released"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create reservations released counter: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// RecordEventHandled records an event dispatch and its outcome
func (mp *MetricsProvider) RecordEventHandled(eventType, outcome string) {
	if !mp.isEnabled() {
		return
	}

	mp.eventsHandledCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelEventType, eventType),
			attribute.String(LabelOutcome, outcome),
		),
	)
}

// RecordNATSMessageReceived records a NATS message being received and how it was processed
func (mp *MetricsProvider) RecordNATSMessageReceived(subject, outcome string) {
	if !mp.isEnabled() {
		return
	}

	mp.natsMessagesReceivedCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelSubject, subject),
			attribute.String(LabelOutcome, outcome),
		),
	)
}

// RecordMessageSent records an outgoing Discord message
func (mp *MetricsProvider) RecordMessageSent(messageType string) {
	if !mp.isEnabled() {
		return
	}

	mp.messagesSentCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelType, messageType),
		),
	)
}

// RecordSuppressedError records an ignored Discord error
func (mp *MetricsProvider) RecordSuppressedError(errorType string) {
	if !mp.isEnabled() {
		return
	}

	mp.suppressedErrorsCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelErrorType, errorType),
		),
	)
}

// RecordReservationReleased records an expired reservation being deleted
func (mp *MetricsProvider) RecordReservationReleased() {
	if !mp.isEnabled() {
		return
	}

	mp.reservationsReleasedCounter.Add(context.Background(), 1)
}

// isEnabled checks if metrics are enabled and initialized.
// A nil provider is disabled so callers can record before initialization.
func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.config.OTelEnabled && mp.meterProvider != nil
}

// Global metrics provider instance
var (
	globalMetrics *MetricsProvider
	metricsOnce   sync.Once
)

// InitializeGlobalMetrics initializes the global metrics provider
func InitializeGlobalMetrics(ctx context.Context, cfg *config.Config) error {
	var err error
	metricsOnce.Do(func() {
		globalMetrics = NewMetricsProvider(cfg)
		err = globalMetrics.Initialize(ctx)
	})
	return err
}

// GetMetrics returns the global metrics provider, nil before initialization
func GetMetrics() *MetricsProvider {
	return globalMetrics
}

// ShutdownGlobalMetrics shuts down the global metrics provider
func ShutdownGlobalMetrics(ctx context.Context) error {
	if globalMetrics != nil {
		return globalMetrics.Shutdown(ctx)
	}
	return nil
}
