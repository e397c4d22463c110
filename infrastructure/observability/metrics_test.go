package observability

import (
	"context"
	"testing"

	"smanager/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsProvider_NilIsDisabled(t *testing.T) {
	var mp *MetricsProvider

	assert.False(t, mp.isEnabled())
	assert.NotPanics(t, func() {
		mp.RecordEventHandled("scrim_log", OutcomeSuccess)
		mp.RecordMessageSent(MessageTypeLog)
		mp.RecordSuppressedError("forbidden")
		mp.RecordReservationReleased()
		mp.RecordNATSMessageReceived("esports.scrim.log", OutcomeSuccess)
	})
}

func TestMetricsProvider_Initialize(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.OTelEnabled = false

		mp := NewMetricsProvider(cfg)
		require.NoError(t, mp.Initialize(ctx))
		assert.False(t, mp.isEnabled())
		assert.NotPanics(t, func() { mp.RecordReservationReleased() })
	})

	t.Run("console exporter", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.OTelEnabled = true
		cfg.OTelExporterType = "console"
		cfg.OTelExportIntervalMillis = 60000

		mp := NewMetricsProvider(cfg)
		require.NoError(t, mp.Initialize(ctx))
		assert.True(t, mp.isEnabled())

		mp.RecordEventHandled("scrim_log", OutcomeSuccess)
		require.NoError(t, mp.Shutdown(ctx))
	})

	t.Run("unknown exporter", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.OTelEnabled = true
		cfg.OTelExporterType = "carrier-pigeon"

		err := NewMetricsProvider(cfg).Initialize(ctx)
		assert.ErrorContains(t, err, "unknown exporter type")
	})
}
