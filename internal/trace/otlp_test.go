package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())

	// Noop spans are never recording.
	_, span := p.Tracer().Start(context.Background(), "x")
	assert.False(t, span.IsRecording())
	span.End()
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSDKProvider_RecordsSpansWithServiceName(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	p := newSDKProvider(Config{ServiceName: "portfolio-test"}, sdktrace.WithSpanProcessor(sr))
	assert.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "portfolio.dispatch")
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "portfolio.dispatch", ended[0].Name())

	var service string
	for _, kv := range ended[0].Resource().Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "portfolio-test", service)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.False(t, p.Enabled())
}
