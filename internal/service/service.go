// Package service provides the business logic for the model registry API
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

var (
	// ErrModelNotFound is returned when a model is not found
	ErrModelNotFound = errors.New("model not found")
	// ErrInvalidModelID is returned when a model id is not a valid ObjectID hex string
	ErrInvalidModelID = errors.New("invalid model id")
)

const (
	// DefaultDatabase is the database used when a request does not name one
	DefaultDatabase = "model_registry"
	// DefaultCollection is the GridFS bucket used when a request does not name one
	DefaultCollection = "llm"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go RegistryService

// RegistryService defines the interface for model registry operations
type RegistryService interface {
	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error

	// StoreModel uploads the file at a server-local path into GridFS with metadata
	StoreModel(ctx context.Context, opts ...Option[StoreModelOptions]) (*StoreResult, error)

	// UploadModel uploads streamed content into GridFS with metadata
	UploadModel(ctx context.Context, opts ...Option[UploadModelOptions]) (*StoreResult, error)

	// GetModel returns a stored model's descriptor by id
	GetModel(ctx context.Context, opts ...Option[GetModelOptions]) (*Model, error)

	// ListModels returns descriptors for all models in a bucket
	ListModels(ctx context.Context, opts ...Option[ListModelsOptions]) (*ListModelsResult, error)

	// DownloadModel writes a stored model's content to w and returns its descriptor
	DownloadModel(ctx context.Context, w io.Writer, opts ...Option[DownloadModelOptions]) (*Model, error)

	// DeleteModel removes a model file and its chunks by id
	DeleteModel(ctx context.Context, opts ...Option[DeleteModelOptions]) error

	// CreateUser creates a MongoDB user in the named database
	CreateUser(ctx context.Context, opts ...Option[CreateUserOptions]) error

	// DeleteUser drops a MongoDB user from the named database
	DeleteUser(ctx context.Context, opts ...Option[DeleteUserOptions]) error
}

// ModelMetadata is the metadata document stored alongside a model file
type ModelMetadata struct {
	ModelArchitecture string  `bson:"model_architecture" json:"model_architecture"`
	ModelVersion      float64 `bson:"model_version" json:"model_version"`
	ProjectName       string  `bson:"project_name" json:"project_name"`
	Digest            string  `bson:"digest" json:"digest"`
}

// Model describes a stored model file
type Model struct {
	ID         string        `json:"modelId"`
	Filename   string        `json:"filename"`
	Length     int64         `json:"length"`
	UploadDate time.Time     `json:"uploadDate"`
	Metadata   ModelMetadata `json:"metadata"`
}

// StoreResult is the outcome of a store or upload operation
type StoreResult struct {
	// Stored is false when a file with the same content digest already exists
	Stored  bool
	ModelID string
}

// ListModelsResult is the result of the ListModels operation
type ListModelsResult struct {
	Models []*Model
	Total  int
}

// Option is a function that sets an option for one of the operation
// option structs
type Option[
	T StoreModelOptions | UploadModelOptions | GetModelOptions | ListModelsOptions |
		DownloadModelOptions | DeleteModelOptions | CreateUserOptions | DeleteUserOptions,
] func(*T) error

// StoreModelOptions is the options for the StoreModel operation
type StoreModelOptions struct {
	Database   string
	Collection string
	ModelPath  string
	Metadata   ModelMetadata
}

// UploadModelOptions is the options for the UploadModel operation
type UploadModelOptions struct {
	Database   string
	Collection string
	Filename   string
	Content    io.Reader
	Metadata   ModelMetadata
}

// GetModelOptions is the options for the GetModel operation
type GetModelOptions struct {
	Database   string
	Collection string
	ModelID    string
}

// ListModelsOptions is the options for the ListModels operation
type ListModelsOptions struct {
	Database   string
	Collection string
}

// DownloadModelOptions is the options for the DownloadModel operation
type DownloadModelOptions struct {
	Database   string
	Collection string
	ModelID    string
}

// DeleteModelOptions is the options for the DeleteModel operation
type DeleteModelOptions struct {
	Database   string
	Collection string
	ModelID    string
}

// CreateUserOptions is the options for the CreateUser operation
type CreateUserOptions struct {
	Database string
	Username string
	Password string
	Role     string
}

// DeleteUserOptions is the options for the DeleteUser operation
type DeleteUserOptions struct {
	Database string
	Username string
}

// WithDatabase sets the database for any model storage operation
func WithDatabase[
	T StoreModelOptions | UploadModelOptions | GetModelOptions | ListModelsOptions |
		DownloadModelOptions | DeleteModelOptions,
](database string) Option[T] {
	return func(o *T) error {
		if database == "" {
			return fmt.Errorf("invalid database: %s", database)
		}
		switch o := any(o).(type) {
		case *StoreModelOptions:
			o.Database = database
		case *UploadModelOptions:
			o.Database = database
		case *GetModelOptions:
			o.Database = database
		case *ListModelsOptions:
			o.Database = database
		case *DownloadModelOptions:
			o.Database = database
		case *DeleteModelOptions:
			o.Database = database
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
		return nil
	}
}

// WithCollection sets the GridFS bucket name for any model storage operation
func WithCollection[
	T StoreModelOptions | UploadModelOptions | GetModelOptions | ListModelsOptions |
		DownloadModelOptions | DeleteModelOptions,
](collection string) Option[T] {
	return func(o *T) error {
		if collection == "" {
			return fmt.Errorf("invalid collection: %s", collection)
		}
		switch o := any(o).(type) {
		case *StoreModelOptions:
			o.Collection = collection
		case *UploadModelOptions:
			o.Collection = collection
		case *GetModelOptions:
			o.Collection = collection
		case *ListModelsOptions:
			o.Collection = collection
		case *DownloadModelOptions:
			o.Collection = collection
		case *DeleteModelOptions:
			o.Collection = collection
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
		return nil
	}
}

// WithModelID sets the model id for the GetModel, DownloadModel, or DeleteModel operation
func WithModelID[
	T GetModelOptions | DownloadModelOptions | DeleteModelOptions,
](modelID string) Option[T] {
	return func(o *T) error {
		if modelID == "" {
			return fmt.Errorf("invalid model id: %s", modelID)
		}
		switch o := any(o).(type) {
		case *GetModelOptions:
			o.ModelID = modelID
		case *DownloadModelOptions:
			o.ModelID = modelID
		case *DeleteModelOptions:
			o.ModelID = modelID
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
		return nil
	}
}

// WithModelPath sets the server-local file path for the StoreModel operation
func WithModelPath(modelPath string) Option[StoreModelOptions] {
	return func(o *StoreModelOptions) error {
		if modelPath == "" {
			return fmt.Errorf("invalid model path: %s", modelPath)
		}
		o.ModelPath = modelPath
		return nil
	}
}

// WithMetadata sets the model metadata for the StoreModel or UploadModel operation.
// The content digest field is computed during the store and must not be set here.
func WithMetadata[T StoreModelOptions | UploadModelOptions](meta ModelMetadata) Option[T] {
	return func(o *T) error {
		if meta.ModelArchitecture == "" {
			return fmt.Errorf("model architecture is required")
		}
		if meta.ModelVersion <= 0 {
			return fmt.Errorf("model version must be positive: %v", meta.ModelVersion)
		}
		if meta.ProjectName == "" {
			return fmt.Errorf("project name is required")
		}
		if meta.Digest != "" {
			return fmt.Errorf("digest is computed during store and cannot be supplied")
		}
		switch o := any(o).(type) {
		case *StoreModelOptions:
			o.Metadata = meta
		case *UploadModelOptions:
			o.Metadata = meta
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
		return nil
	}
}

// WithContent sets the upload filename and content reader for the UploadModel operation
func WithContent(filename string, content io.Reader) Option[UploadModelOptions] {
	return func(o *UploadModelOptions) error {
		if filename == "" {
			return fmt.Errorf("invalid filename: %s", filename)
		}
		if content == nil {
			return fmt.Errorf("content reader is required")
		}
		o.Filename = filename
		o.Content = content
		return nil
	}
}

// WithUser sets the username and target database for the CreateUser or DeleteUser operation
func WithUser[T CreateUserOptions | DeleteUserOptions](username, database string) Option[T] {
	return func(o *T) error {
		if username == "" {
			return fmt.Errorf("invalid username: %s", username)
		}
		if database == "" {
			return fmt.Errorf("invalid database: %s", database)
		}
		switch o := any(o).(type) {
		case *CreateUserOptions:
			o.Username = username
			o.Database = database
		case *DeleteUserOptions:
			o.Username = username
			o.Database = database
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
		return nil
	}
}

// WithUserPassword sets the new user's password for the CreateUser operation
func WithUserPassword(password string) Option[CreateUserOptions] {
	return func(o *CreateUserOptions) error {
		if password == "" {
			return fmt.Errorf("password is required")
		}
		o.Password = password
		return nil
	}
}

// WithUserRole sets the new user's role for the CreateUser operation
func WithUserRole(role string) Option[CreateUserOptions] {
	return func(o *CreateUserOptions) error {
		if role == "" {
			return fmt.Errorf("role is required")
		}
		o.Role = role
		return nil
	}
}

// ApplyOptions builds an options struct by applying each option in order.
// Database and collection fall back to the registry defaults for the
// model storage option types.
func ApplyOptions[
	T StoreModelOptions | UploadModelOptions | GetModelOptions | ListModelsOptions |
		DownloadModelOptions | DeleteModelOptions | CreateUserOptions | DeleteUserOptions,
](opts ...Option[T]) (*T, error) {
	options := new(T)
	applyStorageDefaults(options)
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func applyStorageDefaults(options any) {
	switch o := options.(type) {
	case *StoreModelOptions:
		o.Database, o.Collection = DefaultDatabase, DefaultCollection
	case *UploadModelOptions:
		o.Database, o.Collection = DefaultDatabase, DefaultCollection
	case *GetModelOptions:
		o.Database, o.Collection = DefaultDatabase, DefaultCollection
	case *ListModelsOptions:
		o.Database, o.Collection = DefaultDatabase, DefaultCollection
	case *DownloadModelOptions:
		o.Database, o.Collection = DefaultDatabase, DefaultCollection
	case *DeleteModelOptions:
		o.Database, o.Collection = DefaultDatabase, DefaultCollection
	}
}
