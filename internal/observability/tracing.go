package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// NewTracer returns the tracer for one module. Span export is configured by
// whatever tracer provider the deployment installs globally; without one the
// spans are no-ops, which is what unit tests want.
func NewTracer(module string) trace.Tracer {
	return otel.Tracer("gridrank/" + module)
}
