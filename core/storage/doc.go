// Package storage opens diff inputs that live in S3 compatible object storage.
//
// It wraps the MinIO Go client behind a small Client interface so tests can
// use the mock in core/storage/mocks. Objects are returned as seekable
// readers, which lets a remote file take part in the two pass diff exactly
// like a local one.
//
// # Locations
//
// Objects are addressed as s3://bucket/key. ParseURI splits such a location,
// Open checks the bucket and opens the object, and Put uploads a report.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := storage.Open(ctx, client, "s3://exports/2024-05/left.csv")
//	defer obj.Close()
package storage
