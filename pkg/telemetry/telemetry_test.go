package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_SinEndpoint_NoExporta(t *testing.T) {
	p, err := Setup(context.Background(), Config{ServiceName: "test"})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_ConEndpoint_RegistraProviders(t *testing.T) {
	// Los exportadores HTTP no conectan hasta el primer envío.
	p, err := Setup(context.Background(), Config{Endpoint: "localhost:4318", ServiceName: "test", Insecure: true})
	require.NoError(t, err)
	require.True(t, p.Enabled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}
