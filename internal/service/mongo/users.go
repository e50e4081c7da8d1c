package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.opentelemetry.io/otel/trace"

	"github.com/modelreg/model-registry-api/internal/service"
)

// CreateUser creates a MongoDB user in the named database.
// Users are regular MongoDB users; the service keeps no records of its own.
func (s *mongoService) CreateUser(
	ctx context.Context,
	opts ...service.Option[service.CreateUserOptions],
) error {
	createOpts, err := service.ApplyOptions(opts...)
	if err != nil {
		return err
	}
	if createOpts.Username == "" || createOpts.Database == "" {
		return fmt.Errorf("username and database are required")
	}
	if createOpts.Password == "" {
		return fmt.Errorf("password is required")
	}
	if createOpts.Role == "" {
		return fmt.Errorf("role is required")
	}

	ctx, span := s.startSpan(ctx, "mongo.create_user", trace.WithAttributes(
		AttrDatabase.String(createOpts.Database),
		AttrUsername.String(createOpts.Username),
	))
	defer span.End()

	cmd := bson.D{
		{Key: "createUser", Value: createOpts.Username},
		{Key: "pwd", Value: createOpts.Password},
		{Key: "roles", Value: bson.A{
			bson.D{
				{Key: "role", Value: createOpts.Role},
				{Key: "db", Value: createOpts.Database},
			},
		}},
	}

	if err := s.client.Database(createOpts.Database).RunCommand(ctx, cmd).Err(); err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to create user %q in database %q: %w",
			createOpts.Username, createOpts.Database, err)
	}

	slog.Info("Mongo user created",
		"username", createOpts.Username,
		"database", createOpts.Database,
		"role", createOpts.Role)

	return nil
}

// DeleteUser drops a MongoDB user from the named database
func (s *mongoService) DeleteUser(
	ctx context.Context,
	opts ...service.Option[service.DeleteUserOptions],
) error {
	deleteOpts, err := service.ApplyOptions(opts...)
	if err != nil {
		return err
	}
	if deleteOpts.Username == "" || deleteOpts.Database == "" {
		return fmt.Errorf("username and database are required")
	}

	ctx, span := s.startSpan(ctx, "mongo.delete_user", trace.WithAttributes(
		AttrDatabase.String(deleteOpts.Database),
		AttrUsername.String(deleteOpts.Username),
	))
	defer span.End()

	cmd := bson.D{{Key: "dropUser", Value: deleteOpts.Username}}

	if err := s.client.Database(deleteOpts.Database).RunCommand(ctx, cmd).Err(); err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to delete user %q from database %q: %w",
			deleteOpts.Username, deleteOpts.Database, err)
	}

	slog.Info("Mongo user deleted",
		"username", deleteOpts.Username,
		"database", deleteOpts.Database)

	return nil
}
