package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	TracerName = "aumai.dev/aumai-chaos"
)

// StartExperimentSpan opens a span covering one experiment run. Without a
// tracer provider installed by the host process this is a no-op span.
func StartExperimentSpan(ctx context.Context, experimentID, name string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, "chaos.experiment.run",
		trace.WithAttributes(
			attribute.String("chaos.experiment.id", experimentID),
			attribute.String("chaos.experiment.name", name),
		))
}

// EndExperimentSpan stamps the final status on the span and closes it
func EndExperimentSpan(span trace.Span, status string, totalFaultsFired int) {
	span.SetAttributes(
		attribute.String("chaos.experiment.status", status),
		attribute.Int("chaos.experiment.faults_fired", totalFaultsFired),
	)
	span.End()
}
