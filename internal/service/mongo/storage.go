package mongodb

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"

	"github.com/modelreg/model-registry-api/internal/service"
)

// fileDocument mirrors the GridFS files collection schema
type fileDocument struct {
	ID         primitive.ObjectID    `bson:"_id"`
	Length     int64                 `bson:"length"`
	UploadDate time.Time             `bson:"uploadDate"`
	Filename   string                `bson:"filename"`
	Metadata   service.ModelMetadata `bson:"metadata"`
}

func (d *fileDocument) toModel() *service.Model {
	return &service.Model{
		ID:         d.ID.Hex(),
		Filename:   d.Filename,
		Length:     d.Length,
		UploadDate: d.UploadDate,
		Metadata:   d.Metadata,
	}
}

// bucket opens the GridFS bucket backing a database/collection pair.
// Context deadlines are propagated to the bucket's read and write streams.
func (s *mongoService) bucket(ctx context.Context, database, collection string) (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(
		s.client.Database(database),
		mongooptions.GridFSBucket().SetName(collection),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open GridFS bucket %s.%s: %w", database, collection, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetWriteDeadline(deadline); err != nil {
			return nil, fmt.Errorf("failed to set bucket write deadline: %w", err)
		}
		if err := bucket.SetReadDeadline(deadline); err != nil {
			return nil, fmt.Errorf("failed to set bucket read deadline: %w", err)
		}
	}

	return bucket, nil
}

// parseModelID converts an API model id into an ObjectID
func parseModelID(modelID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(modelID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", service.ErrInvalidModelID, modelID)
	}
	return oid, nil
}

// StoreModel reads the file at the request's server-local path and uploads
// it into GridFS. Files whose content digest already exists in the bucket
// are refused without error.
func (s *mongoService) StoreModel(
	ctx context.Context,
	opts ...service.Option[service.StoreModelOptions],
) (*service.StoreResult, error) {
	storeOpts, err := service.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if storeOpts.ModelPath == "" {
		return nil, fmt.Errorf("model path is required")
	}
	if err := validateMetadata(storeOpts.Metadata); err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "gridfs.store_model", trace.WithAttributes(
		AttrDatabase.String(storeOpts.Database),
		AttrCollection.String(storeOpts.Collection),
	))
	defer span.End()

	start := time.Now()

	file, err := os.Open(storeOpts.ModelPath)
	if err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "store", time.Since(start), false)
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	digest, err := digestReader(file)
	if err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "store", time.Since(start), false)
		return nil, fmt.Errorf("failed to hash model file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "store", time.Since(start), false)
		return nil, fmt.Errorf("failed to rewind model file: %w", err)
	}

	meta := storeOpts.Metadata
	meta.Digest = digest

	result, err := s.storeFromReader(ctx, storeOpts.Database, storeOpts.Collection,
		filepath.Base(storeOpts.ModelPath), file, meta)
	if err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "store", time.Since(start), false)
		return nil, err
	}

	span.SetAttributes(AttrModelStored.Bool(result.Stored))
	s.metrics.RecordOperation(ctx, "store", time.Since(start), true)
	s.metrics.RecordModelStored(ctx, storeOpts.Database, storeOpts.Collection, result.Stored)
	return result, nil
}

// UploadModel spools streamed content to a temporary file while hashing it,
// then uploads the spool. The temporary file is always removed.
func (s *mongoService) UploadModel(
	ctx context.Context,
	opts ...service.Option[service.UploadModelOptions],
) (*service.StoreResult, error) {
	uploadOpts, err := service.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if uploadOpts.Content == nil {
		return nil, fmt.Errorf("upload content is required")
	}
	if err := validateMetadata(uploadOpts.Metadata); err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "gridfs.upload_model", trace.WithAttributes(
		AttrDatabase.String(uploadOpts.Database),
		AttrCollection.String(uploadOpts.Collection),
	))
	defer span.End()

	start := time.Now()

	spoolPath := filepath.Join(os.TempDir(), "model-upload-"+uuid.NewString())
	spool, err := os.OpenFile(spoolPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "upload", time.Since(start), false)
		return nil, fmt.Errorf("failed to create spool file: %w", err)
	}
	defer func() {
		if closeErr := spool.Close(); closeErr != nil {
			slog.Debug("Failed to close spool file", "error", closeErr)
		}
		if removeErr := os.Remove(spoolPath); removeErr != nil {
			slog.Warn("Failed to remove spool file", "path", spoolPath, "error", removeErr)
		}
	}()

	hasher := sha256.New()
	if _, err := io.Copy(io.MultiWriter(spool, hasher), uploadOpts.Content); err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "upload", time.Since(start), false)
		return nil, fmt.Errorf("failed to spool upload: %w", err)
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "upload", time.Since(start), false)
		return nil, fmt.Errorf("failed to rewind spool file: %w", err)
	}

	meta := uploadOpts.Metadata
	meta.Digest = hex.EncodeToString(hasher.Sum(nil))

	result, err := s.storeFromReader(ctx, uploadOpts.Database, uploadOpts.Collection,
		uploadOpts.Filename, spool, meta)
	if err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "upload", time.Since(start), false)
		return nil, err
	}

	span.SetAttributes(AttrModelStored.Bool(result.Stored))
	s.metrics.RecordOperation(ctx, "upload", time.Since(start), true)
	s.metrics.RecordModelStored(ctx, uploadOpts.Database, uploadOpts.Collection, result.Stored)
	return result, nil
}

// storeFromReader performs the duplicate check and the GridFS upload shared
// by StoreModel and UploadModel. The metadata digest must already be set.
func (s *mongoService) storeFromReader(
	ctx context.Context,
	database, collection, filename string,
	content io.Reader,
	meta service.ModelMetadata,
) (*service.StoreResult, error) {
	bucket, err := s.bucket(ctx, database, collection)
	if err != nil {
		return nil, err
	}

	count, err := bucket.GetFilesCollection().CountDocuments(ctx,
		bson.D{{Key: "metadata.digest", Value: meta.Digest}})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing model: %w", err)
	}
	if count > 0 {
		slog.Info("Model with identical content already stored",
			"database", database, "collection", collection, "digest", meta.Digest)
		return &service.StoreResult{Stored: false}, nil
	}

	if filename == "" {
		filename = "model"
	}

	oid, err := bucket.UploadFromStream(filename, content,
		mongooptions.GridFSUpload().SetMetadata(meta))
	if err != nil {
		return nil, fmt.Errorf("failed to upload model to GridFS: %w", err)
	}

	slog.Info("Model stored",
		"database", database, "collection", collection,
		"model_id", oid.Hex(), "filename", filename)

	return &service.StoreResult{Stored: true, ModelID: oid.Hex()}, nil
}

// GetModel returns a stored model's descriptor by id
func (s *mongoService) GetModel(
	ctx context.Context,
	opts ...service.Option[service.GetModelOptions],
) (*service.Model, error) {
	getOpts, err := service.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	oid, err := parseModelID(getOpts.ModelID)
	if err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "gridfs.get_model", trace.WithAttributes(
		AttrDatabase.String(getOpts.Database),
		AttrCollection.String(getOpts.Collection),
		AttrModelID.String(getOpts.ModelID),
	))
	defer span.End()

	bucket, err := s.bucket(ctx, getOpts.Database, getOpts.Collection)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	return s.findFile(ctx, span, bucket, oid)
}

// ListModels returns descriptors for all models in a bucket
func (s *mongoService) ListModels(
	ctx context.Context,
	opts ...service.Option[service.ListModelsOptions],
) (*service.ListModelsResult, error) {
	listOpts, err := service.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "gridfs.list_models", trace.WithAttributes(
		AttrDatabase.String(listOpts.Database),
		AttrCollection.String(listOpts.Collection),
	))
	defer span.End()

	bucket, err := s.bucket(ctx, listOpts.Database, listOpts.Collection)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	findOpts := mongooptions.Find().SetSort(bson.D{{Key: "uploadDate", Value: -1}})
	cursor, err := bucket.GetFilesCollection().Find(ctx, bson.D{}, findOpts)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []fileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to decode model documents: %w", err)
	}

	models := make([]*service.Model, 0, len(docs))
	for i := range docs {
		models = append(models, docs[i].toModel())
	}

	span.SetAttributes(AttrResultCount.Int(len(models)))
	return &service.ListModelsResult{Models: models, Total: len(models)}, nil
}

// DownloadModel writes a stored model's content to w and returns its descriptor
func (s *mongoService) DownloadModel(
	ctx context.Context,
	w io.Writer,
	opts ...service.Option[service.DownloadModelOptions],
) (*service.Model, error) {
	downloadOpts, err := service.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("download writer is required")
	}

	oid, err := parseModelID(downloadOpts.ModelID)
	if err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "gridfs.download_model", trace.WithAttributes(
		AttrDatabase.String(downloadOpts.Database),
		AttrCollection.String(downloadOpts.Collection),
		AttrModelID.String(downloadOpts.ModelID),
	))
	defer span.End()

	start := time.Now()

	bucket, err := s.bucket(ctx, downloadOpts.Database, downloadOpts.Collection)
	if err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "download", time.Since(start), false)
		return nil, err
	}

	model, err := s.findFile(ctx, span, bucket, oid)
	if err != nil {
		s.metrics.RecordOperation(ctx, "download", time.Since(start), false)
		return nil, err
	}

	if _, err := bucket.DownloadToStream(oid, w); err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "download", time.Since(start), false)
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, service.ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to download model: %w", err)
	}

	s.metrics.RecordOperation(ctx, "download", time.Since(start), true)
	return model, nil
}

// DeleteModel removes a model file and its chunks by id
func (s *mongoService) DeleteModel(
	ctx context.Context,
	opts ...service.Option[service.DeleteModelOptions],
) error {
	deleteOpts, err := service.ApplyOptions(opts...)
	if err != nil {
		return err
	}

	oid, err := parseModelID(deleteOpts.ModelID)
	if err != nil {
		return err
	}

	ctx, span := s.startSpan(ctx, "gridfs.delete_model", trace.WithAttributes(
		AttrDatabase.String(deleteOpts.Database),
		AttrCollection.String(deleteOpts.Collection),
		AttrModelID.String(deleteOpts.ModelID),
	))
	defer span.End()

	start := time.Now()

	bucket, err := s.bucket(ctx, deleteOpts.Database, deleteOpts.Collection)
	if err != nil {
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "delete", time.Since(start), false)
		return err
	}

	if err := bucket.DeleteContext(ctx, oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			s.metrics.RecordOperation(ctx, "delete", time.Since(start), false)
			return service.ErrModelNotFound
		}
		recordError(span, err)
		s.metrics.RecordOperation(ctx, "delete", time.Since(start), false)
		return fmt.Errorf("failed to delete model: %w", err)
	}

	slog.Info("Model deleted",
		"database", deleteOpts.Database, "collection", deleteOpts.Collection,
		"model_id", deleteOpts.ModelID)

	s.metrics.RecordOperation(ctx, "delete", time.Since(start), true)
	return nil
}

// findFile looks up a file document by id in the bucket's files collection
func (s *mongoService) findFile(
	ctx context.Context,
	span trace.Span,
	bucket *gridfs.Bucket,
	oid primitive.ObjectID,
) (*service.Model, error) {
	var doc fileDocument
	err := bucket.GetFilesCollection().
		FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrModelNotFound
		}
		recordError(span, err)
		return nil, fmt.Errorf("failed to look up model: %w", err)
	}
	return doc.toModel(), nil
}

// validateMetadata checks the required metadata fields are present.
// The options constructors validate too; this guards direct struct use.
func validateMetadata(meta service.ModelMetadata) error {
	if meta.ModelArchitecture == "" {
		return fmt.Errorf("model architecture is required")
	}
	if meta.ModelVersion <= 0 {
		return fmt.Errorf("model version must be positive: %v", meta.ModelVersion)
	}
	if meta.ProjectName == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}

// digestReader hashes the full content of r with SHA-256
func digestReader(r io.Reader) (string, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
