package observability

import (
	"context"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is not set.
const DefaultServiceName = "fincalc-graph"

var serviceName = DefaultServiceName

// SetServiceName overrides the service name used by every provider.
func SetServiceName(name string) {
	if name != "" {
		serviceName = name
	}
}

func ServiceName() string {
	return serviceName
}

// newResource describes this process for traces, metrics and logs alike.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(
		ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(ServiceName()),
		),
	)
}
