package tsparse

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/typescript-eslint/tsequiv/internal/estree"
	"github.com/typescript-eslint/tsequiv/internal/source"
)

const (
	DefaultTimeout           = 30 * time.Second
	DefaultMaxFileSize int64 = 10 * 1024 * 1024
	DefaultNode              = "node"
)

type settings struct {
	node        string
	modulePaths []string
	bundle      string
	timeout     time.Duration
	maxFileSize int64
	preflight   bool
	tracer      trace.Tracer
}

type Option func(*settings)

// WithNode sets the node binary ExecParser runs.
func WithNode(path string) Option {
	return func(s *settings) {
		if path != "" {
			s.node = path
		}
	}
}

// WithModulePaths sets the folders the typescript package is resolved from.
func WithModulePaths(paths ...string) Option {
	return func(s *settings) {
		s.modulePaths = append(s.modulePaths, paths...)
	}
}

// WithBundle makes RuntimeParser load typescript from a bundle produced by
// generate_bundle.go instead of resolving it with require.
func WithBundle(path string) Option {
	return func(s *settings) {
		s.bundle = path
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithMaxFileSize(bytes int64) Option {
	return func(s *settings) {
		if bytes > 0 {
			s.maxFileSize = bytes
		}
	}
}

// WithPreflight toggles the esbuild syntax check run before parsing.
func WithPreflight(enabled bool) Option {
	return func(s *settings) {
		s.preflight = enabled
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) {
		s.tracer = tp.Tracer("tsequiv/tsparse")
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		node:        DefaultNode,
		timeout:     DefaultTimeout,
		maxFileSize: DefaultMaxFileSize,
		preflight:   true,
		tracer:      otel.Tracer("tsequiv/tsparse"),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

type parseFunc func(ctx context.Context, path, src string) (estree.CompilerNode, error)

// run reads path, applies the preflight check and calls parse inside a span.
// Failures are logged and resolve to nil.
func (s *settings) run(ctx context.Context, mode, path string, parse parseFunc) estree.RawNode {
	ctx, span := s.tracer.Start(ctx, "tsparse.Parse", trace.WithAttributes(
		attribute.String("file", path),
		attribute.String("mode", mode),
	))
	defer span.End()

	tree, err := s.parse(ctx, path, parse)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Warn("parsing ts file",
			slog.String("file", path),
			slog.String("mode", mode),
			slog.Any("error", err))
		return nil
	}
	return tree
}

func (s *settings) parse(ctx context.Context, path string, parse parseFunc) (estree.CompilerNode, error) {
	src, err := source.Read(path, s.maxFileSize)
	if err != nil {
		return nil, err
	}
	if s.preflight {
		if err := Preflight(path, src); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return parse(ctx, path, src)
}
