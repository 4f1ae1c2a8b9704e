package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/radard/internal/config"
)

func TestNewDisabled(t *testing.T) {
	tel, err := New(context.Background(), config.ObservabilityConfig{EnableTelemetry: false})
	require.NoError(t, err)
	require.NotNil(t, tel)
	assert.Nil(t, tel.tracerProvider)
	assert.Nil(t, tel.meterProvider)
	assert.NoError(t, tel.Shutdown(context.Background()))
}
