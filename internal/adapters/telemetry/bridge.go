package telemetry

import (
	"context"
	"fmt"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/restyle/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge implements sdktrace.SpanProcessor and reports finished compile
// spans to the logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span's outcome and duration.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	var source, outcome string
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case "source":
			source = kv.Value.AsString()
		case "outcome":
			outcome = kv.Value.AsString()
		}
	}

	msg := fmt.Sprintf("%s %s: %s in %s", s.Name(), filepath.Base(source), outcome, s.EndTime().Sub(s.StartTime()))
	if s.Status().Code == codes.Error && s.Status().Description != "" {
		msg += " (" + s.Status().Description + ")"
	}
	b.logger.Debug(msg)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// Install registers a tracer provider that feeds processors as the global
// provider. The returned function shuts it down.
func Install(processors ...sdktrace.SpanProcessor) func(context.Context) error {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
