package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/authgate/internal/config"
	"github.com/deppfellow/authgate/internal/logger"
)

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	svc, err := logger.NewLoggerService(config.DefaultObservabilityConfig())
	require.NoError(t, err)

	assert.Nil(t, svc.GetApplication())
	assert.NotPanics(t, svc.Shutdown)
}

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter(cfg, nil, &buf)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "authgate", entry["service"])
	assert.Equal(t, "production", entry["environment"])
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewLoggerWithWriter_Console(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"

	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter(cfg, nil, &buf)
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	log := logger.WithTraceContext(base, nil)
	log.Info().Msg("x")

	assert.NotContains(t, buf.String(), "trace.id")
}
