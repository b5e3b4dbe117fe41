package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
)

type Config struct {
	JaegerAddress string `envconfig:"JAEGER_ADDRESS"`
}

// NewTracer returns a tracer exporting to jaeger when an address is configured,
// otherwise a noop tracer. The returned func flushes and stops the provider.
func NewTracer(cfg Config, service string) (trace.Tracer, func(context.Context) error, error) {
	if cfg.JaegerAddress == "" {
		return trace.NewNoopTracerProvider().Tracer(service), func(context.Context) error { return nil }, nil
	}
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerAddress)))
	if err != nil {
		return nil, nil, err
	}
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(service),
		),
	)
	if err != nil {
		return nil, nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(tp)
	return tp.Tracer(service), tp.Shutdown, nil
}
