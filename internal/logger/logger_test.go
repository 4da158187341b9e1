package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("WIB", 7*3600)

	lg := NewWithWriter(&buf, loc)
	lg.Info("hello", zap.String("component", "test"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry["ts"], "+07:00")
}

func TestNewWithWriter_DropsDebug(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(&buf, nil)
	lg.Debug("hidden")
	assert.Zero(t, buf.Len())
}

func TestNew(t *testing.T) {
	lg, err := New("debug", time.UTC)
	require.NoError(t, err)
	assert.NotNil(t, lg)

	_, err = New("loud", time.UTC)
	assert.Error(t, err)
}
