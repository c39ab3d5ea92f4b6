package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	requestCounter  metric.Int64Counter
	errorCounter    metric.Int64Counter
	renderHistogram metric.Float64Histogram
	imageBytes      metric.Int64Histogram
)

// InitMetrics registers the OTel instruments for graph generation.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	requestCounter, err = meter.Int64Counter("graph.requests.total",
		metric.WithDescription("Total number of graphs generated"),
		metric.WithUnit("{graph}"),
	)
	if err != nil {
		return fmt.Errorf("creating request counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("graph.errors.total",
		metric.WithDescription("Total number of failed graph requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	renderHistogram, err = meter.Float64Histogram("graph.render.duration",
		metric.WithDescription("Time spent rendering a chart in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(5, 10, 25, 50, 100, 250, 500, 1000),
	)
	if err != nil {
		return fmt.Errorf("creating render histogram: %w", err)
	}

	imageBytes, err = meter.Int64Histogram("graph.image.bytes",
		metric.WithDescription("Size of the encoded PNG"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(10_000, 25_000, 50_000, 100_000, 250_000),
	)
	if err != nil {
		return fmt.Errorf("creating image size histogram: %w", err)
	}

	return nil
}
