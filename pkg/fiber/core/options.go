package core

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
	TraceOptionKey  OptionKey = "trace_options"
	NameOptionKey   OptionKey = "name_options"
)

const instrumentationName = "github.com/ib-77/fiber/pkg/fiber/core"

type LoggerOptions struct {
	Logger *slog.Logger
}

type TraceOptions struct {
	Provider trace.TracerProvider
}

type NameOptions struct {
	Name string
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithTracerProvider(ctx context.Context, provider trace.TracerProvider) context.Context {
	return context.WithValue(ctx, TraceOptionKey, TraceOptions{Provider: provider})
}

// WithName labels fibers forked from ctx in logs and spans.
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, NameOptionKey, NameOptions{Name: name})
}

func GetLogger(ctx context.Context) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return slog.Default()
}

func GetTracer(ctx context.Context) trace.Tracer {
	options, ok := ctx.Value(TraceOptionKey).(TraceOptions)
	if ok && options.Provider != nil {
		return options.Provider.Tracer(instrumentationName)
	}
	return otel.Tracer(instrumentationName)
}

func GetName(ctx context.Context, defaultName string) string {
	options, ok := ctx.Value(NameOptionKey).(NameOptions)
	if ok && options.Name != "" {
		return options.Name
	}
	return defaultName
}
