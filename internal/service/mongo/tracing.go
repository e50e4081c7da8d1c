package mongodb

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ServiceTracerName is the name used for the mongo service tracer
	ServiceTracerName = "github.com/modelreg/model-registry-api/service/mongo"
)

// Custom attribute keys for business context
const (
	AttrDatabase    = attribute.Key("registry.database")
	AttrCollection  = attribute.Key("registry.collection")
	AttrModelID     = attribute.Key("model.id")
	AttrModelStored = attribute.Key("model.stored")
	AttrResultCount = attribute.Key("result.count")
	AttrUsername    = attribute.Key("user.name")
)

// Database semantic convention attributes
var (
	// DBSystemMongoDB is the database system attribute for MongoDB
	DBSystemMongoDB = semconv.DBSystemMongoDB
)

// startSpan starts a new span for database operations.
// If the tracer is nil, it returns a no-op span from the context.
// All database spans automatically include the db.system attribute per OTEL semantic conventions.
func (s *mongoService) startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if s.tracer == nil {
		// Return a no-op span from context
		return ctx, trace.SpanFromContext(ctx)
	}
	// Prepend db.system attribute to ensure all database spans have it per OTEL semantic conventions
	opts = append([]trace.SpanStartOption{trace.WithAttributes(DBSystemMongoDB)}, opts...)
	return s.tracer.Start(ctx, name, opts...)
}

// recordError records an error on a span and sets the span status to error.
// It safely handles nil spans and nil errors.
// Note: The status description is intentionally generic to prevent sensitive
// information (e.g., connection strings, credentials) from appearing in trace
// status. The full error details are still available via span events for debugging.
func recordError(span trace.Span, err error) {
	if err != nil && span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")
	}
}
