package telemetry_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Gunvolt24/flights/pkg/telemetry"
	"go.opentelemetry.io/otel"
)

func TestSetupTracing_ExportsOnShutdown(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var out bytes.Buffer
	shutdown, err := telemetry.SetupTracing("flights-test", &out, 5)
	if err != nil {
		t.Fatalf("SetupTracing: %v", err)
	}

	_, span := otel.Tracer("test").Start(context.Background(), "parse")
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if !strings.Contains(out.String(), `"Name":"parse"`) {
		t.Fatalf("span not exported:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "flights-test") {
		t.Fatalf("service name missing:\n%s", out.String())
	}
}
