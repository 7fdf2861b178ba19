package trace

import (
	"context"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

type CloseFunc func(ctx context.Context) error

type ProviderBuilder struct {
	name     string
	exporter sdktrace.SpanExporter
}

func NewTraceProviderBuilder(name string) *ProviderBuilder {
	return &ProviderBuilder{name: name}
}

func (b *ProviderBuilder) SetExporter(exp sdktrace.SpanExporter) *ProviderBuilder {
	b.exporter = exp

	return b
}

func (b *ProviderBuilder) Build() (*sdktrace.TracerProvider, CloseFunc, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(b.name)),
	)
	if err != nil {
		return nil, nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(b.exporter),
		sdktrace.WithResource(res),
	)

	closeFn := func(ctx context.Context) error {
		return provider.Shutdown(ctx)
	}

	return provider, closeFn, nil
}
