//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := Tracer
	SetTracerProvider(tp)
	t.Cleanup(func() {
		Tracer = prev
		_ = tp.Shutdown(context.Background())
	})
	return rec
}

func TestStartAndEnd(t *testing.T) {
	rec := useRecorder(t)

	_, span := Start(context.Background(), SpanBatchRun, KeyRecords.Int(3), KeyRunID.String("id"))
	End(span, nil)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, SpanBatchRun, spans[0].Name())
	assert.Equal(t, InstrumentName, spans[0].InstrumentationScope().Name)
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), KeyRecords.Int(3))
	assert.Contains(t, spans[0].Attributes(), KeyRunID.String("id"))
}

func TestEndWithError(t *testing.T) {
	rec := useRecorder(t)

	_, span := Start(context.Background(), SpanAggregate)
	End(span, errors.New("boom"))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestChildSpan(t *testing.T) {
	rec := useRecorder(t)

	ctx, parent := Start(context.Background(), SpanBatchRun)
	_, child := Start(ctx, SpanAggregate)
	End(child, nil)
	End(parent, nil)

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}
