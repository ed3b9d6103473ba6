//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package trace provides OpenTelemetry tracing for scoring runs.
package trace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentName is the instrumentation scope of every span.
const InstrumentName = "trpc.rouge.go"

// Span names.
const (
	SpanBatchRun  = "rouge.batch.run"
	SpanAggregate = "rouge.aggregate"
	SpanLoad      = "rouge.corpus.load"
	SpanWrite     = "rouge.report.write"
)

// Attribute keys.
const (
	KeyRunID       = attribute.Key("rouge.run_id")
	KeyRecords     = attribute.Key("rouge.records")
	KeyRougeTypes  = attribute.Key("rouge.types")
	KeyParallelism = attribute.Key("rouge.parallelism")
	KeySamples     = attribute.Key("rouge.samples")
	KeyOutput      = attribute.Key("rouge.output")
)

// Tracer is the tracer used by this module. It follows the global provider
// until SetTracerProvider is called.
var Tracer trace.Tracer = otel.Tracer(InstrumentName)

// SetTracerProvider makes Tracer come from tp.
func SetTracerProvider(tp trace.TracerProvider) {
	Tracer = tp.Tracer(InstrumentName)
}

// Start starts a span named name with the given attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// End ends span, recording err when it is not nil.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
