package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Scheme prefixes object storage locations.
const Scheme = "s3://"

// IsURI reports whether s names an object rather than a local path.
func IsURI(s string) bool {
	return strings.HasPrefix(s, Scheme)
}

// ParseURI splits s3://bucket/key into bucket and key.
func ParseURI(uri string) (bucket, key string, err error) {
	if !IsURI(uri) {
		return "", "", fmt.Errorf("not an object storage uri: %q", uri)
	}
	bucket, key, _ = strings.Cut(strings.TrimPrefix(uri, Scheme), "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("object storage uri must look like s3://bucket/key: %q", uri)
	}
	return bucket, key, nil
}

type statter interface {
	Stat() (minio.ObjectInfo, error)
}

// Open checks the bucket and returns the object at uri for reading.
// Objects that can report their metadata are stat'ed so a missing key fails
// here rather than on the first read.
func Open(ctx context.Context, client Client, uri string) (io.ReadSeekCloser, error) {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", uri, err)
	}
	if s, ok := obj.(statter); ok {
		if _, err := s.Stat(); err != nil {
			obj.Close()
			return nil, fmt.Errorf("failed to stat object %s: %w", uri, err)
		}
	}
	return obj, nil
}

// Put uploads data to uri.
func Put(ctx context.Context, client Client, uri string, data []byte, contentType string) error {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return err
	}
	_, err = client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", uri, err)
	}
	return nil
}
