// Package storage keeps uploaded photos in a Go CDK blob bucket.
package storage

import (
	"context"
	"log/slog"

	"bakery/config"
	"bakery/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket *blob.Bucket
}

// Params holds dependencies for PhotoStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStorage opens the bucket named by storage.bucketUrl and closes it on shutdown.
func NewPhotoStorage(params Params) (service.PhotoStorage, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	storage, err := OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Photo storage opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// OpenBucket opens a bucket by URL (file:///dir, mem://, gs://bucket, s3://bucket).
func OpenBucket(ctx context.Context, bucketURL string) (service.PhotoStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStorage{bucket: bucket}, nil
}

// Save writes data under key.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})

	return errors.Wrapf(err, "failed to write object %s", key)
}

// Open returns a reader over the object stored under key.
func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredPhoto, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrPhotoNotFound
		}

		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}

	return &service.StoredPhoto{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// Close releases the bucket.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
