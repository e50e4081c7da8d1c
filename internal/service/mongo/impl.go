// Package mongodb provides a MongoDB-backed implementation of the RegistryService interface
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel/trace"

	"github.com/modelreg/model-registry-api/internal/service"
	"github.com/modelreg/model-registry-api/internal/telemetry"
)

// options holds configuration options for the mongo service
type options struct {
	client  *mongo.Client
	tracer  trace.Tracer
	metrics *telemetry.StorageMetrics
}

// Option is a functional option for configuring the mongo service
type Option func(*options) error

// WithClient creates a new MongoDB-backed registry service with the given
// client. The caller is responsible for disconnecting the client when it is
// done.
func WithClient(client *mongo.Client) Option {
	return func(o *options) error {
		if client == nil {
			return fmt.Errorf("mongo client is required")
		}
		o.client = client
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer for the mongo service.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// WithStorageMetrics sets the storage metrics recorder for the mongo service.
// If not set, metrics recording is skipped.
func WithStorageMetrics(metrics *telemetry.StorageMetrics) Option {
	return func(o *options) error {
		o.metrics = metrics
		return nil
	}
}

// mongoService implements the RegistryService interface using MongoDB GridFS
type mongoService struct {
	client  *mongo.Client
	tracer  trace.Tracer
	metrics *telemetry.StorageMetrics
}

var _ service.RegistryService = (*mongoService)(nil)

// New creates a new MongoDB-backed registry service with the given options
func New(opts ...Option) (service.RegistryService, error) {
	o := &options{}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.client == nil {
		return nil, fmt.Errorf("mongo client is required")
	}

	return &mongoService{
		client:  o.client,
		tracer:  o.tracer,
		metrics: o.metrics,
	}, nil
}

// CheckReadiness checks if the service is ready to serve requests
func (s *mongoService) CheckReadiness(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "mongo.ping")
	defer span.End()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		recordError(span, err)
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}
