package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/dtroode/storefront-server/internal/model"
)

const defaultContentType = "application/octet-stream"

// objectAPI is the part of *minio.Client the product file store uses.
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

type clientAdapter struct{ c *minio.Client }

func (a clientAdapter) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return a.c.BucketExists(ctx, bucketName)
}

func (a clientAdapter) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return a.c.MakeBucket(ctx, bucketName, opts)
}

func (a clientAdapter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return a.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

// GetObject returns *minio.Object as an io.ReadCloser; the object is fetched lazily on first read.
func (a clientAdapter) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := a.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (a clientAdapter) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return a.c.StatObject(ctx, bucketName, objectName, opts)
}

var _ model.FileStorage = (*ProductFiles)(nil)

// ProductFiles stores product files in a single MinIO bucket keyed by the product's file path.
type ProductFiles struct {
	api    objectAPI
	bucket string
}

// NewProductFiles creates the store on top of a real *minio.Client and makes sure the bucket exists.
func NewProductFiles(ctx context.Context, client *minio.Client, bucket string) (*ProductFiles, error) {
	return newProductFiles(ctx, clientAdapter{c: client}, bucket)
}

func newProductFiles(ctx context.Context, api objectAPI, bucket string) (*ProductFiles, error) {
	s := &ProductFiles{api: api, bucket: bucket}

	exists, err := api.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := api.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", bucket, err)
		}
	}

	return s, nil
}

// Put uploads a product file. size may be -1 when unknown.
func (s *ProductFiles) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = defaultContentType
	}

	_, err := s.api.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload product file: %w", err)
	}
	return nil
}

// Open stats and opens a product file. A missing object yields model.ErrNotFound.
func (s *ProductFiles) Open(ctx context.Context, key string) (model.File, error) {
	info, err := s.api.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to stat product file: %w", err)
	}

	body, err := s.api.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return model.File{}, fmt.Errorf("failed to open product file: %w", err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	return model.File{Body: body, Size: info.Size, ContentType: contentType}, nil
}

// Exists reports whether a product file is stored under key.
func (s *ProductFiles) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.api.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat product file: %w", err)
	}
	return true, nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
