package main

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// spanLogger is a span processor that logs every finished span.
type spanLogger struct {
	provider *sdktrace.TracerProvider
	logger   *slog.Logger
}

func newSpanLogger(logger *slog.Logger) *spanLogger {
	s := &spanLogger{logger: logger}
	s.provider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s))
	return s
}

func (s *spanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (s *spanLogger) OnEnd(span sdktrace.ReadOnlySpan) {
	attrs := []slog.Attr{
		slog.String("span", span.Name()),
		slog.Duration("duration", span.EndTime().Sub(span.StartTime())),
	}
	for _, kv := range span.Attributes() {
		attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
	}
	level := slog.LevelInfo
	if status := span.Status(); status.Code == codes.Error {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", status.Description))
	}
	s.logger.LogAttrs(context.Background(), level, "span", attrs...)
}

func (s *spanLogger) Shutdown(context.Context) error   { return nil }
func (s *spanLogger) ForceFlush(context.Context) error { return nil }
