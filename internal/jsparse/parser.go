// Package jsparse parses JavaScript into Esprima-shape trees.
package jsparse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dop251/goja/parser"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/typescript-eslint/tsequiv/internal/estree"
	"github.com/typescript-eslint/tsequiv/internal/source"
)

const (
	DefaultMaxFileSize int64 = 10 * 1024 * 1024
	WarnFileSize             = 1024 * 1024
)

type Option func(*Parser)

// WithMaxFileSize sets the largest file Parse accepts.
func WithMaxFileSize(bytes int64) Option {
	return func(p *Parser) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Parser) {
		p.tracer = tp.Tracer("tsequiv/jsparse")
	}
}

// Parser is safe for concurrent use.
type Parser struct {
	maxFileSize int64
	tracer      trace.Tracer
}

func New(opts ...Option) *Parser {
	p := &Parser{
		maxFileSize: DefaultMaxFileSize,
		tracer:      otel.Tracer("tsequiv/jsparse"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads and parses the file at path. It returns nil when the file cannot
// be read or parsed; the failure is logged.
func (p *Parser) Parse(ctx context.Context, path string) estree.RawNode {
	src, err := source.Read(path, p.maxFileSize)
	if err != nil {
		slog.Warn("reading js file", slog.String("file", path), slog.Any("error", err))
		return nil
	}
	return p.ParseSource(ctx, path, src)
}

func (p *Parser) ParseSource(ctx context.Context, name, src string) estree.RawNode {
	_, span := p.tracer.Start(ctx, "jsparse.Parse", trace.WithAttributes(
		attribute.String("file", name),
		attribute.Int("size_bytes", len(src)),
	))
	defer span.End()

	tree, err := p.parse(ctx, name, src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Warn("parsing js file", slog.String("file", name), slog.Any("error", err))
		return nil
	}
	span.SetAttributes(attribute.Int("statements", len(tree["body"].([]any))))
	return tree
}

func (p *Parser) parse(ctx context.Context, name, src string) (estree.EsprimaNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}
	if int64(len(src)) > p.maxFileSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", source.ErrFileTooLarge, len(src), p.maxFileSize)
	}
	if len(src) > WarnFileSize {
		slog.Warn("parsing large file",
			slog.String("file", name),
			slog.Int("size_bytes", len(src)))
	}

	program, err := parser.ParseFile(nil, name, src, 0)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled: %w", err)
	}

	c := converter{src: src}
	return c.convertProgram(program), nil
}
