package usecase

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("matchodds/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan opens a child span only under an existing trace.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// failSpan records err on span. Caller mistakes keep an unset status.
func failSpan(span trace.Span, err error) error {
	if err == nil {
		return nil
	}
	span.RecordError(err)
	if isCallerError(err) {
		return err
	}
	span.SetStatus(codes.Error, scrapeSpanStatus(err))
	return err
}

func isCallerError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPreconditionFailed)
}

func scrapeSpanStatus(err error) string {
	switch {
	case errors.Is(err, ErrScrapeFailed):
		return "scrape failed"
	case errors.Is(err, ErrDependencyUnavailable):
		return "dependency unavailable"
	default:
		return "internal error"
	}
}
