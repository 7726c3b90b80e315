package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func spanAttrs(s tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(s.Attributes))
	for _, kv := range s.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestSessionRecorder_RecordsLoginAndLogout(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	p := NewProviderWithExporter(exp)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	rec := NewSessionRecorder(p)

	rec.Record(context.Background(), Transition{From: false, To: true, Source: "key", Unread: 3})
	rec.Record(context.Background(), Transition{From: true, To: false, Source: "mouse"})

	spans := exp.GetSpans()
	require.Len(t, spans, 2)

	assert.Equal(t, SpanLogin, spans[0].Name)
	login := spanAttrs(spans[0])
	assert.Equal(t, "logged_out", login[AttrFrom].AsString())
	assert.Equal(t, "logged_in", login[AttrTo].AsString())
	assert.True(t, login[AttrChanged].AsBool())
	assert.Equal(t, "key", login[AttrSource].AsString())
	assert.Equal(t, int64(3), login[AttrUnread].AsInt64())

	assert.Equal(t, SpanLogout, spans[1].Name)
	logout := spanAttrs(spans[1])
	assert.Equal(t, "mouse", logout[AttrSource].AsString())
	assert.Equal(t, int64(0), logout[AttrUnread].AsInt64())
}

func TestSessionRecorder_RedundantTransitionMarkedUnchanged(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	p := NewProviderWithExporter(exp)
	rec := NewSessionRecorder(p)

	rec.Record(context.Background(), Transition{From: true, To: true, Source: "shortcut"})

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.False(t, spanAttrs(spans[0])[AttrChanged].AsBool())
}

func TestSessionRecorder_NilIsNoOp(t *testing.T) {
	var rec *SessionRecorder
	assert.NotPanics(t, func() {
		rec.Record(context.Background(), Transition{To: true})
	})
}

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := NewProvider(context.Background())
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))

	// No-op tracer still accepts spans.
	NewSessionRecorder(p).Record(context.Background(), Transition{To: true})
}

func TestNewProviderWithExporter_ServiceName(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "loginbox-test")
	exp := tracetest.NewInMemoryExporter()
	p := NewProviderWithExporter(exp)
	require.True(t, p.Enabled())

	NewSessionRecorder(p).Record(context.Background(), Transition{To: true})
	spans := exp.GetSpans()
	require.Len(t, spans, 1)

	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "loginbox-test", service)
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "logged_in", StateName(true))
	assert.Equal(t, "logged_out", StateName(false))
}

func TestNewProvider_ExportsToEndpointURL(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// Conventional form: scheme://host:port, with or without a trailing slash.
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", srv.URL+"/")
	p, err := NewProvider(context.Background())
	require.NoError(t, err)
	require.True(t, p.Enabled())

	NewSessionRecorder(p).Record(context.Background(), Transition{To: true, Source: "button"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, paths)
	assert.Equal(t, "/v1/traces", paths[0])
}
