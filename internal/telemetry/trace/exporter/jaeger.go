package exporter

import (
	"fmt"

	"go.opentelemetry.io/otel/exporters/jaeger"
)

func NewJaeger(endpoint string) (*jaeger.Exporter, error) {
	traceExp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
	if err != nil {
		return nil, fmt.Errorf("create jaeger exporter: %w", err)
	}

	return traceExp, nil
}
