package otel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/logger"
)

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	var buf bytes.Buffer
	shutdown, err := Init(context.Background(), logger.NewWithWriter(&buf, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"tracing_enabled":false`)
}

func TestInit_UnsupportedProtocolDegrades(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")

	var buf bytes.Buffer
	shutdown, err := Init(context.Background(), logger.NewWithWriter(&buf, time.UTC))
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "tracing_init_failed")
}

func TestNewSampler(t *testing.T) {
	assert.Contains(t, newSampler("always_on", "").Description(), "AlwaysOn")
	assert.Contains(t, newSampler("always_off", "").Description(), "AlwaysOff")
	assert.Contains(t, newSampler("traceidratio", "0.5").Description(), "0.5")
	assert.Contains(t, newSampler("parentbased_traceidratio", "bad").Description(), "root:AlwaysOnSampler")
	assert.Contains(t, newSampler("unknown", "").Description(), "ParentBased")
}
