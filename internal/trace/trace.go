// Package trace wires optional Datadog tracing into iotable. Tracing
// is off unless IOTABLE_TRACE=1.
package trace

import (
	"context"
	"os"
	"strconv"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

var (
	enabled bool
	parent  ddtrace.SpanContext
	logger  *DatadogLogger
)

// MaybeTrace starts the tracer if IOTABLE_TRACE is "1" and reports
// whether it did. A parent span may be passed in DD_TRACE_ID and
// DD_SPAN_ID as hex strings; both are removed from the environment so
// that child processes do not inherit them.
func MaybeTrace(serviceVersion string) bool {
	if os.Getenv("IOTABLE_TRACE") != "1" {
		return false
	}

	traceID := os.Getenv("DD_TRACE_ID")
	spanID := os.Getenv("DD_SPAN_ID")
	os.Unsetenv("DD_TRACE_ID")
	os.Unsetenv("DD_SPAN_ID")

	opts := []tracer.StartOption{
		tracer.WithService("iotable"),
		tracer.WithServiceVersion(serviceVersion),
	}
	if l, err := NewDatadogLogger(logPath()); err == nil {
		logger = l
		opts = append(opts, tracer.WithLogger(l))
	}
	tracer.Start(opts...)
	enabled = true

	if carrier, ok := parentCarrier(traceID, spanID); ok {
		if sctx, err := tracer.Extract(carrier); err == nil {
			parent = sctx
		}
	}
	return true
}

// Stop flushes and stops the tracer if MaybeTrace started it.
func Stop() {
	if !enabled {
		return
	}
	tracer.Stop()
	if logger != nil {
		logger.Close()
	}
	enabled = false
	parent = nil
}

// StartSpan starts a span named name. It is a child of the span given
// to MaybeTrace through the environment, if any.
func StartSpan(ctx context.Context, name string) (ddtrace.Span, context.Context) {
	if _, ok := tracer.SpanFromContext(ctx); parent != nil && !ok {
		return tracer.StartSpanFromContext(ctx, name, tracer.ChildOf(parent))
	}
	return tracer.StartSpanFromContext(ctx, name)
}

// parentCarrier converts hex trace and span IDs to the decimal
// headers understood by the Datadog propagator. Only the lower 64
// bits of a 128-bit trace ID are used.
func parentCarrier(traceID, spanID string) (tracer.TextMapCarrier, bool) {
	if traceID == "" || spanID == "" {
		return nil, false
	}
	if len(traceID) > 16 {
		traceID = traceID[len(traceID)-16:]
	}
	tid, err := strconv.ParseUint(traceID, 16, 64)
	if err != nil {
		return nil, false
	}
	sid, err := strconv.ParseUint(spanID, 16, 64)
	if err != nil {
		return nil, false
	}
	return tracer.TextMapCarrier{
		tracer.DefaultTraceIDHeader:  strconv.FormatUint(tid, 10),
		tracer.DefaultParentIDHeader: strconv.FormatUint(sid, 10),
	}, true
}
